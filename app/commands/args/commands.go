package args

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Guerrilla-Interactive/zxui/app/catalog"
	"github.com/Guerrilla-Interactive/zxui/app/cli"
	"github.com/Guerrilla-Interactive/zxui/app/filter"
	"github.com/Guerrilla-Interactive/zxui/app/selection"
)

// CommandsCommand lists one tool's commands filtered by a search term.
type CommandsCommand struct{}

func init() {
	RegisterCommand(&CommandsCommand{})
}

func (c *CommandsCommand) Name() string {
	return "commands"
}

func (c *CommandsCommand) Description() string {
	return "Lists the commands of a tool, optionally filtered by a search term."
}

func (c *CommandsCommand) Usage() string {
	return "[--tool T] [--search S]"
}

func (c *CommandsCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *CommandsCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "tool", ShortName: "t", Description: "Tool id or name (defaults to the first tool).", HasValue: true},
		{Name: "search", ShortName: "s", Description: "Search name, description, template, category and tags.", HasValue: true},
	}
}

func (c *CommandsCommand) Execute(env *Env, args cli.CommandArgs) error {
	var tool catalog.Tool
	if ref := args.Flags["tool"]; ref != "" {
		t, err := resolveTool(env.Catalog, ref)
		if err != nil {
			return err
		}
		tool = t
	} else {
		t, ok := env.Catalog.First()
		if !ok {
			fmt.Fprintln(env.Out, selection.NoToolsMessage)
			return nil
		}
		tool = t
	}

	search := args.Flags["search"]
	cmds := filter.Commands(tool.Commands, search)
	env.Logger.Debug("filtered commands",
		zap.String("tool", tool.Name), zap.String("search", search), zap.Int("matches", len(cmds)))

	fmt.Fprintf(env.Out, "%s %s\n", headingColor.Sprint(tool.Name),
		dimColor.Sprintf("(%d of %d commands)", len(cmds), len(tool.Commands)))
	if len(cmds) == 0 {
		fmt.Fprintln(env.Out, selection.NoCommandsMessage)
		return nil
	}
	for _, cmd := range cmds {
		fmt.Fprintf(env.Out, "  %4d  %s\n", cmd.ID, nameColor.Sprint(cmd.Name))
		fmt.Fprintf(env.Out, "        %s\n", dimColor.Sprint(cmd.Template))
	}
	return nil
}
