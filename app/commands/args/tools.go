package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/zxui/app/cli"
	"github.com/Guerrilla-Interactive/zxui/app/selection"
)

// ToolsCommand prints the catalog overview and the tool list.
type ToolsCommand struct{}

func init() {
	RegisterCommand(&ToolsCommand{})
}

func (c *ToolsCommand) Name() string {
	return "tools"
}

func (c *ToolsCommand) Description() string {
	return "Shows catalog totals and lists every tool."
}

func (c *ToolsCommand) Usage() string {
	return ""
}

func (c *ToolsCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *ToolsCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *ToolsCommand) Execute(env *Env, args cli.CommandArgs) error {
	tools := env.Catalog.Tools()

	fmt.Fprintf(env.Out, "%s %s  %s %s  %s %s\n",
		headingColor.Sprint("Tools:"), countColor.Sprint(len(tools)),
		headingColor.Sprint("Commands:"), countColor.Sprint(env.Catalog.CommandCount()),
		headingColor.Sprint("Categories:"), countColor.Sprint(len(env.Catalog.Categories())),
	)
	if len(tools) == 0 {
		fmt.Fprintln(env.Out, selection.NoToolsMessage)
		return nil
	}

	fmt.Fprintln(env.Out)
	for _, t := range tools {
		line := fmt.Sprintf("  %4d  %-16s %s", t.ID, nameColor.Sprint(t.Name), dimColor.Sprintf("%d commands", len(t.Commands)))
		if t.Description != "" {
			line += "  " + t.Description
		}
		fmt.Fprintln(env.Out, line)
	}
	return nil
}
