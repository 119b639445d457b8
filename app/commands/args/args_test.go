package args

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Guerrilla-Interactive/zxui/app"
	"github.com/Guerrilla-Interactive/zxui/app/catalog"
	"github.com/Guerrilla-Interactive/zxui/app/cli"
	"github.com/Guerrilla-Interactive/zxui/app/filter"
	"github.com/Guerrilla-Interactive/zxui/app/selection"
	"github.com/Guerrilla-Interactive/zxui/app/template"
	"github.com/Guerrilla-Interactive/zxui/internal/config"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func fixtureCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Tool{
		{ID: 1, Name: "nmap", Description: "Network mapper", Commands: []catalog.Command{
			{ID: 1, Name: "Quick scan", Template: "nmap -T4 -F {target}", Category: "Recon", Tags: catalog.Tags{"scan", "fast"}},
			{ID: 2, Name: "Service scan", Template: "nmap -sV -p {port} {target}", Category: "Recon"},
		}},
		{ID: 2, Name: "netcat", Commands: []catalog.Command{
			{ID: 3, Name: "Listener", Template: "nc -lvnp {lport}", Category: "Shells", Tags: catalog.Tags{"listener"}},
			{ID: 4, Name: "Banner", Template: "nc -v example.org 80", Description: "Grab a banner"},
		}},
		{ID: 3, Name: "whois"},
	})
	require.NoError(t, err)
	return c
}

func newEnv(c *catalog.Catalog, clip app.Clipboard) (*Env, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &Env{Catalog: c, Logger: zap.NewNop(), Out: &out, Err: &errOut, Clipboard: clip}, &out, &errOut
}

func run(t *testing.T, env *Env, name string, args cli.CommandArgs) error {
	t.Helper()
	for _, cmd := range GetAllCommands() {
		if cmd.Name() == name {
			args.CommandName = name
			return cmd.Execute(env, args)
		}
	}
	t.Fatalf("command %q not registered", name)
	return nil
}

func TestRegistryListsAllCommandsSorted(t *testing.T) {
	var names []string
	for _, c := range GetAllCommands() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"categories", "commands", "config get", "config set", "export", "fields", "library", "render", "tools"}, names)
}

func TestRegisterCommandPanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() { RegisterCommand(&RenderCommand{}) })
}

func TestRender(t *testing.T) {
	testCases := []struct {
		name      string
		variables []string
		extra     []string
		want      string
	}{
		{"By Name With Extra", []string{"Quick scan", "target=10.0.0.1"}, []string{"-Pn"}, "nmap -T4 -F 10.0.0.1 -Pn\n"},
		{"Blank Value Keeps Placeholder", []string{"quick scan", "target=  "}, nil, "nmap -T4 -F {target}\n"},
		{"By ID", []string{"3", "lport=4444"}, nil, "nc -lvnp 4444\n"},
		{"Qualified Name", []string{"netcat/Listener", "lport=9001"}, nil, "nc -lvnp 9001\n"},
		{"Repeated Placeholder", []string{"Service scan", "port=443", "target=host"}, nil, "nmap -sV -p 443 host\n"},
		{"No Placeholders", []string{"Banner"}, []string{"-w", "3"}, "nc -v example.org 80 -w 3\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env, out, _ := newEnv(fixtureCatalog(t), &fakeClipboard{})
			err := run(t, env, "render", cli.CommandArgs{Variables: tc.variables, Extra: tc.extra})
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestRenderErrors(t *testing.T) {
	testCases := []struct {
		name      string
		variables []string
		contains  string
	}{
		{"Missing Command", []string{"target=x"}, "missing required argument"},
		{"Unknown Command Suggests", []string{"Quik scan"}, "did you mean: nmap/Quick scan"},
		{"Unknown ID", []string{"99"}, "no command with id 99"},
		{"Stray Positional", []string{"Quick scan", "10.0.0.1"}, "unexpected argument"},
		{"Bad Assignment", []string{"Quick scan", "bad-name=x"}, "invalid parameter"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env, _, _ := newEnv(fixtureCatalog(t), &fakeClipboard{})
			err := run(t, env, "render", cli.CommandArgs{Variables: tc.variables})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestRenderWarnsOnUnknownPlaceholder(t *testing.T) {
	env, out, errOut := newEnv(fixtureCatalog(t), &fakeClipboard{})
	err := run(t, env, "render", cli.CommandArgs{Variables: []string{"Listener", "lport=1", "rhost=x"}})
	require.NoError(t, err)
	assert.Equal(t, "nc -lvnp 1\n", out.String())
	assert.Contains(t, errOut.String(), "{rhost}")
}

func TestRenderCopy(t *testing.T) {
	clip := &fakeClipboard{}
	env, out, errOut := newEnv(fixtureCatalog(t), clip)
	err := run(t, env, "render", cli.CommandArgs{
		Variables: []string{"Listener", "lport=4444"},
		BoolFlags: map[string]bool{"copy": true},
	})
	require.NoError(t, err)
	assert.Equal(t, "nc -lvnp 4444\n", out.String())
	assert.Equal(t, "nc -lvnp 4444", clip.text)
	assert.Contains(t, errOut.String(), app.CopiedMessage)
}

func TestRenderCopyFailureFallsBack(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no xclip")}
	env, out, errOut := newEnv(fixtureCatalog(t), clip)
	err := run(t, env, "render", cli.CommandArgs{
		Variables: []string{"Listener"},
		BoolFlags: map[string]bool{"copy": true},
	})
	require.NoError(t, err)
	assert.Equal(t, "nc -lvnp {lport}\n", out.String())
	assert.Contains(t, errOut.String(), app.ClipboardFallback)
}

func TestFields(t *testing.T) {
	env, out, _ := newEnv(fixtureCatalog(t), nil)
	require.NoError(t, run(t, env, "fields", cli.CommandArgs{Variables: []string{"Service scan"}}))
	s := out.String()
	assert.Contains(t, s, "nmap/Service scan")
	assert.Contains(t, s, "Category: Recon")
	assert.Contains(t, s, "Enter Port")
	assert.Contains(t, s, "Enter Target")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("Enter Port")), bytes.Index(out.Bytes(), []byte("Enter Target")))
}

func TestFieldsNoVariables(t *testing.T) {
	env, out, _ := newEnv(fixtureCatalog(t), nil)
	require.NoError(t, run(t, env, "fields", cli.CommandArgs{Variables: []string{"banner"}}))
	assert.Contains(t, out.String(), template.NoVariablesNotice)
	assert.Contains(t, out.String(), "Grab a banner")
}

func TestCommands(t *testing.T) {
	testCases := []struct {
		name     string
		flags    map[string]string
		contains []string
		excludes []string
	}{
		{"Defaults To First Tool", map[string]string{}, []string{"nmap", "(2 of 2 commands)", "Quick scan", "Service scan"}, []string{"Listener"}},
		{"Tool By Name And Search", map[string]string{"tool": "NetCat", "search": "LISTEN"}, []string{"(1 of 2 commands)", "Listener"}, []string{"Banner"}},
		{"Search Matches Category", map[string]string{"tool": "2", "search": "shells"}, []string{"Listener"}, []string{"Banner"}},
		{"No Matches", map[string]string{"search": "zzz"}, []string{selection.NoCommandsMessage}, []string{"Quick scan"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env, out, _ := newEnv(fixtureCatalog(t), nil)
			require.NoError(t, run(t, env, "commands", cli.CommandArgs{Flags: tc.flags}))
			for _, s := range tc.contains {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range tc.excludes {
				assert.NotContains(t, out.String(), s)
			}
		})
	}
}

func TestCommandsUnknownTool(t *testing.T) {
	env, _, _ := newEnv(fixtureCatalog(t), nil)
	err := run(t, env, "commands", cli.CommandArgs{Flags: map[string]string{"tool": "nmp"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean: nmap")
}

func TestCommandsEmptyCatalog(t *testing.T) {
	env, out, _ := newEnv(nil, nil)
	require.NoError(t, run(t, env, "commands", cli.CommandArgs{}))
	assert.Equal(t, selection.NoToolsMessage+"\n", out.String())
}

func TestLibrary(t *testing.T) {
	testCases := []struct {
		name     string
		flags    map[string]string
		contains []string
		excludes []string
	}{
		{"Category Filter", map[string]string{"category": "shells"}, []string{"netcat", "Listener"}, []string{"nmap", "Banner", "whois"}},
		{"Empty Tool Shown By Name", map[string]string{"search": "WHO"}, []string{"whois", filter.EmptyToolMessage}, []string{"nmap"}},
		{"Tool Name Admits All Commands", map[string]string{"search": "netcat"}, []string{"Listener", "Banner"}, []string{"nmap"}},
		{"No Matches", map[string]string{"search": "zzz"}, []string{filter.NoMatchesMessage}, []string{"nmap"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env, out, _ := newEnv(fixtureCatalog(t), nil)
			require.NoError(t, run(t, env, "library", cli.CommandArgs{Flags: tc.flags}))
			for _, s := range tc.contains {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range tc.excludes {
				assert.NotContains(t, out.String(), s)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	env, out, _ := newEnv(fixtureCatalog(t), nil)
	require.NoError(t, run(t, env, "categories", cli.CommandArgs{}))
	assert.Equal(t, "All categories\nRecon\nShells\n", out.String())
}

func TestTools(t *testing.T) {
	env, out, _ := newEnv(fixtureCatalog(t), nil)
	require.NoError(t, run(t, env, "tools", cli.CommandArgs{}))
	assert.Contains(t, out.String(), "Tools: 3  Commands: 4  Categories: 2")
	assert.Contains(t, out.String(), "Network mapper")
	assert.Contains(t, out.String(), "0 commands")
}

func TestExport(t *testing.T) {
	env, out, _ := newEnv(fixtureCatalog(t), nil)
	require.NoError(t, run(t, env, "export", cli.CommandArgs{}))

	var doc struct {
		Tools []struct {
			Name     string `json:"name"`
			Commands []struct {
				Name string   `json:"name"`
				Tags []string `json:"tags"`
			} `json:"commands"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Tools, 3)
	assert.Equal(t, "nmap", doc.Tools[0].Name)
	assert.Equal(t, []string{"scan", "fast"}, doc.Tools[0].Commands[0].Tags)
	assert.NotContains(t, out.String(), `"id"`)
}

func TestConfigSetThenGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zxui", "config.toml")
	t.Setenv("ZXUI_CONFIG", path)

	env, out, _ := newEnv(nil, nil)
	require.NoError(t, run(t, env, "config set", cli.CommandArgs{Variables: []string{"ui.page_size", "12"}}))
	assert.Equal(t, "ui.page_size = 12\n", out.String())

	out.Reset()
	require.NoError(t, run(t, env, "config set", cli.CommandArgs{Variables: []string{"catalog.path", "/srv/tools.yaml"}}))
	require.FileExists(t, path)

	testCases := []struct {
		key  string
		want string
	}{
		{"ui.page_size", "12"},
		{"catalog.path", "/srv/tools.yaml"},
		{"ui.copy_to_clipboard", "true"},
		{"log.file", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			env, out, _ := newEnv(nil, nil)
			require.NoError(t, run(t, env, "config get", cli.CommandArgs{Variables: []string{tc.key}}))
			assert.Equal(t, tc.want+"\n", out.String())
		})
	}
}

func TestConfigSetClampsPageSize(t *testing.T) {
	t.Setenv("ZXUI_CONFIG", filepath.Join(t.TempDir(), "config.toml"))

	env, out, _ := newEnv(nil, nil)
	require.NoError(t, run(t, env, "config set", cli.CommandArgs{Variables: []string{"ui.page_size", "500"}}))
	assert.Equal(t, "ui.page_size = 30\n", out.String())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.MaxPageSize, cfg.UI.PageSize)
}

func TestConfigErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("ZXUI_CONFIG", path)

	testCases := []struct {
		name    string
		command string
		args    []string
		wantErr error
	}{
		{"unknown key", "config get", []string{"ui.theme"}, config.ErrUnknownKey},
		{"unknown set key", "config set", []string{"ui.theme", "dark"}, config.ErrUnknownKey},
		{"bad int", "config set", []string{"ui.page_size", "lots"}, nil},
		{"bad bool", "config set", []string{"ui.copy_to_clipboard", "maybe"}, nil},
		{"missing value", "config set", []string{"ui.page_size"}, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env, _, _ := newEnv(nil, nil)
			err := run(t, env, tc.command, cli.CommandArgs{Variables: tc.args})
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			}
		})
	}
	assert.NoFileExists(t, path)
}

func TestNeedsCatalog(t *testing.T) {
	for _, c := range GetAllCommands() {
		want := c.Name() != "config get" && c.Name() != "config set"
		assert.Equal(t, want, NeedsCatalog(c), c.Name())
	}
}
