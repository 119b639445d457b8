package args

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Guerrilla-Interactive/zxui/app"
	"github.com/Guerrilla-Interactive/zxui/app/catalog"
	"github.com/Guerrilla-Interactive/zxui/app/cli"
)

// ArgDef is an alias for cli.ArgDef.
type ArgDef = cli.ArgDef

// FlagDef is an alias for cli.FlagDef.
type FlagDef = cli.FlagDef

// Env is what a command runs against. Out receives the command's result; Err
// receives notices that must not mix with it.
type Env struct {
	Catalog   *catalog.Catalog
	Logger    *zap.Logger
	Out       io.Writer
	Err       io.Writer
	Clipboard app.Clipboard
}

// Command represents a CLI command that can be executed directly.
type Command interface {
	// Name returns the command's name (e.g., "render").
	Name() string
	// Description returns a brief help description for the command.
	Description() string
	// Execute runs the command logic with the parsed arguments.
	Execute(env *Env, args cli.CommandArgs) error
	// Usage returns a brief usage string (e.g., "<command> [key=value ...]").
	Usage() string
	// ExpectedArgs returns definitions for expected positional arguments.
	ExpectedArgs() []ArgDef
	// ExpectedFlags returns definitions for expected flags.
	ExpectedFlags() []FlagDef
}

// CatalogUser is implemented by commands that can report they run without a
// catalog. Commands that do not implement it get the loaded catalog.
type CatalogUser interface {
	NeedsCatalog() bool
}

// NeedsCatalog reports whether cmd must run with the catalog loaded.
func NeedsCatalog(cmd Command) bool {
	if cu, ok := cmd.(CatalogUser); ok {
		return cu.NeedsCatalog()
	}
	return true
}

// commandRegistry holds all registered CLI commands, keyed by name.
var commandRegistry = make(map[string]Command)

// RegisterCommand adds a command to the registry. It is called from init()
// in each command's file.
func RegisterCommand(cmd Command) {
	if _, exists := commandRegistry[cmd.Name()]; exists {
		panic(fmt.Sprintf("Command already registered: %s", cmd.Name()))
	}
	commandRegistry[cmd.Name()] = cmd
}

// GetAllCommands returns all registered commands sorted by name.
func GetAllCommands() []Command {
	cmds := make([]Command, 0, len(commandRegistry))
	for _, cmd := range commandRegistry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// resolveTool finds a tool by numeric id or case-insensitive name.
func resolveTool(c *catalog.Catalog, ref string) (catalog.Tool, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if t, ok := c.ToolByID(id); ok {
			return t, nil
		}
		return catalog.Tool{}, fmt.Errorf("no tool with id %d", id)
	}
	if t, ok := c.ToolByName(ref); ok {
		return t, nil
	}
	return catalog.Tool{}, notFound("tool", ref, c.SuggestTools(ref))
}

// resolveCommand finds a command by numeric id, name, or tool/name.
func resolveCommand(c *catalog.Catalog, ref string) (catalog.CommandRef, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if cmd, ok := c.CommandByID(id); ok {
			return cmd, nil
		}
		return catalog.CommandRef{}, fmt.Errorf("no command with id %d", id)
	}
	if cmd, ok := c.CommandByName(ref); ok {
		return cmd, nil
	}
	return catalog.CommandRef{}, notFound("command", ref, c.SuggestCommands(ref))
}

func notFound(kind, ref string, suggestions []string) error {
	if len(suggestions) == 0 {
		return fmt.Errorf("unknown %s %q", kind, ref)
	}
	return fmt.Errorf("unknown %s %q (did you mean: %s?)", kind, ref, strings.Join(suggestions, ", "))
}
