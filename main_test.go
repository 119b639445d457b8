package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guerrilla-Interactive/zxui/app"
	"github.com/Guerrilla-Interactive/zxui/app/catalog"
	"github.com/Guerrilla-Interactive/zxui/app/screens"
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

const fixtureJSON = `{"tools": [
  {"name": "nmap", "commands": [
    {"name": "Quick scan", "template": "nmap -T4 -F {target}", "category": "Recon", "tags": "scan, fast"}
  ]},
  {"name": "netcat", "commands": [
    {"name": "Listener", "template": "nc -lvnp {lport}", "category": "Shells"}
  ]}
]}`

// execute runs the root command with an isolated config file.
func execute(t *testing.T, clip app.Clipboard, argv ...string) (string, string, error) {
	t.Helper()
	return executeWithConfig(t, filepath.Join(t.TempDir(), "config.toml"), clip, argv...)
}

func executeWithConfig(t *testing.T, cfgPath string, clip app.Clipboard, argv ...string) (string, string, error) {
	t.Helper()
	t.Setenv("ZXUI_CONFIG", cfgPath)

	var out, errOut bytes.Buffer
	root := newRootCmd(&rootState{clipboard: clip})
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(argv)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeCatalog(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRenderEndToEnd(t *testing.T) {
	path := writeCatalog(t, "tools.json", fixtureJSON)
	out, _, err := execute(t, nil, "--catalog", path, "render", "nmap/Quick scan", "target=10.0.0.1", "--", "-Pn", "-v")
	require.NoError(t, err)
	assert.Equal(t, "nmap -T4 -F 10.0.0.1 -Pn -v\n", out)
}

func TestRenderCopyFlag(t *testing.T) {
	path := writeCatalog(t, "tools.json", fixtureJSON)
	clip := &fakeClipboard{}
	out, errOut, err := execute(t, clip, "--catalog", path, "render", "--copy", "Listener", "lport=4444")
	require.NoError(t, err)
	assert.Equal(t, "nc -lvnp 4444\n", out)
	assert.Equal(t, "nc -lvnp 4444", clip.text)
	assert.Contains(t, errOut, app.CopiedMessage)
}

func TestRenderCopyFallback(t *testing.T) {
	path := writeCatalog(t, "tools.json", fixtureJSON)
	clip := &fakeClipboard{err: errors.New("no clipboard")}
	_, errOut, err := execute(t, clip, "--catalog", path, "--log-file", filepath.Join(t.TempDir(), "zx.log"), "render", "-c", "Listener")
	require.NoError(t, err)
	assert.Contains(t, errOut, app.ClipboardFallback)
}

func TestRenderUnknownCommand(t *testing.T) {
	path := writeCatalog(t, "tools.json", fixtureJSON)
	_, errOut, err := execute(t, nil, "--catalog", path, "render", "Listner")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean: netcat/Listener")
	assert.Contains(t, errOut, "Error:")
}

func TestRenderRequiresCommandArg(t *testing.T) {
	_, _, err := execute(t, nil, "render")
	require.Error(t, err)
}

func TestYAMLCatalog(t *testing.T) {
	path := writeCatalog(t, "tools.yaml", `
tools:
  - name: dig
    commands:
      - name: A record
        template: dig A {domain} +short
        tags: [dns]
`)
	out, _, err := execute(t, nil, "--catalog", path, "fields", "A record")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter Domain")
}

func TestCatalogFromConfigFile(t *testing.T) {
	catalogPath := writeCatalog(t, "tools.json", fixtureJSON)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[catalog]\npath = \""+filepath.ToSlash(catalogPath)+"\"\n"), 0o600))

	var out bytes.Buffer
	root := newRootCmd(&rootState{})
	root.SetOut(&out)
	root.SetArgs([]string{"categories"})
	t.Setenv("ZXUI_CONFIG", cfgPath)
	require.NoError(t, root.Execute())
	assert.Equal(t, "All categories\nRecon\nShells\n", out.String())
}

func TestMissingCatalogFails(t *testing.T) {
	_, _, err := execute(t, nil, "--catalog", filepath.Join(t.TempDir(), "missing.json"), "tools")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load catalog")
}

func TestUnsupportedCatalogFormat(t *testing.T) {
	path := writeCatalog(t, "tools.csv", "name,template\n")
	_, _, err := execute(t, nil, "--catalog", path, "tools")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrUnsupportedFormat)
}

func TestEmbeddedCatalogExport(t *testing.T) {
	out, _, err := execute(t, nil, "export")
	require.NoError(t, err)

	var doc struct {
		Tools []struct {
			Name     string            `json:"name"`
			Commands []json.RawMessage `json:"commands"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Tools, catalog.Default().Len())
	assert.Equal(t, "arp", doc.Tools[0].Name)
}

func TestLibraryFlags(t *testing.T) {
	path := writeCatalog(t, "tools.json", fixtureJSON)
	out, _, err := execute(t, nil, "--catalog", path, "library", "--category", "recon")
	require.NoError(t, err)
	assert.Contains(t, out, "Quick scan")
	assert.NotContains(t, out, "Listener")
}

func TestCommandsFlags(t *testing.T) {
	path := writeCatalog(t, "tools.json", fixtureJSON)
	out, _, err := execute(t, nil, "--catalog", path, "commands", "-t", "netcat", "-s", "lvnp")
	require.NoError(t, err)
	assert.Contains(t, out, "Listener")
}

func TestUnknownSubcommand(t *testing.T) {
	_, _, err := execute(t, nil, "login")
	require.Error(t, err)
}

func TestProgramModelUpdate(t *testing.T) {
	c, err := catalog.DecodeJSON([]byte(fixtureJSON))
	require.NoError(t, err)
	clip := &fakeClipboard{}
	pm := ProgramModel{M: app.NewModel(c, app.Options{CopyToClipboard: true, Clipboard: clip})}

	next, _ := pm.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	pm = next.(ProgramModel)
	assert.Equal(t, 120, pm.M.TerminalWidth)
	assert.Equal(t, 40, pm.M.TerminalHeight)

	next, cmd := pm.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	pm = next.(ProgramModel)
	require.NotNil(t, cmd)
	next, tick := pm.Update(cmd())
	pm = next.(ProgramModel)
	assert.Equal(t, app.CopiedMessage, pm.M.Status)
	assert.Equal(t, "nmap -T4 -F {target}", clip.text)
	require.NotNil(t, tick)

	next, _ = pm.Update(screens.StatusResetMsg{Seq: pm.M.StatusSeq})
	pm = next.(ProgramModel)
	assert.Empty(t, pm.M.Status)

	next, _ = pm.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	pm = next.(ProgramModel)
	assert.Equal(t, app.ScreenLibrary, pm.M.CurrentScreen)
	assert.Contains(t, pm.View(), "netcat")
}

func TestConfigCommands(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "zxui", "config.toml")
	missing := filepath.Join(t.TempDir(), "missing.json")

	out, _, err := executeWithConfig(t, cfgPath, nil, "config", "set", "catalog.path", missing)
	require.NoError(t, err)
	assert.Equal(t, "catalog.path = "+missing+"\n", out)

	// The catalog is now broken, but config commands still run.
	_, _, err = executeWithConfig(t, cfgPath, nil, "tools")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load catalog")

	out, _, err = executeWithConfig(t, cfgPath, nil, "config", "get", "catalog.path")
	require.NoError(t, err)
	assert.Equal(t, missing+"\n", out)

	_, _, err = executeWithConfig(t, cfgPath, nil, "config", "set", "catalog.path", "")
	require.NoError(t, err)
	out, _, err = executeWithConfig(t, cfgPath, nil, "tools")
	require.NoError(t, err)
	assert.Contains(t, out, "arp")
}

func TestConfigGroup(t *testing.T) {
	out, _, err := execute(t, nil, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "get")
	assert.Contains(t, out, "set")

	_, _, err = execute(t, nil, "config", "get")
	require.Error(t, err)

	_, _, err = execute(t, nil, "config", "get", "ui.theme")
	require.Error(t, err)
}
