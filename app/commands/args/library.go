package args

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Guerrilla-Interactive/zxui/app/cli"
	"github.com/Guerrilla-Interactive/zxui/app/filter"
)

// LibraryCommand prints the library view across all tools.
type LibraryCommand struct{}

func init() {
	RegisterCommand(&LibraryCommand{})
}

func (c *LibraryCommand) Name() string {
	return "library"
}

func (c *LibraryCommand) Description() string {
	return "Shows every tool with the commands matching a search term and category."
}

func (c *LibraryCommand) Usage() string {
	return "[--search S] [--category C]"
}

func (c *LibraryCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *LibraryCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "search", ShortName: "s", Description: "Match tool names and command name, template, description and tags.", HasValue: true},
		{Name: "category", ShortName: "c", Description: "Only show commands in this category.", HasValue: true},
	}
}

func (c *LibraryCommand) Execute(env *Env, args cli.CommandArgs) error {
	view := filter.Library(env.Catalog, args.Flags["search"], args.Flags["category"])
	env.Logger.Debug("library view",
		zap.String("search", args.Flags["search"]),
		zap.String("category", args.Flags["category"]),
		zap.Int("visible_tools", view.VisibleTools))

	if view.VisibleTools == 0 {
		fmt.Fprintln(env.Out, filter.NoMatchesMessage)
		return nil
	}

	first := true
	for _, t := range view.Tools {
		if !t.Visible {
			continue
		}
		if !first {
			fmt.Fprintln(env.Out)
		}
		first = false

		fmt.Fprintln(env.Out, headingColor.Sprint(t.Name))
		if t.Description != "" {
			fmt.Fprintln(env.Out, dimColor.Sprint(t.Description))
		}
		if t.ShowEmpty {
			fmt.Fprintln(env.Out, "  "+filter.EmptyToolMessage)
			continue
		}
		for _, cmd := range t.VisibleCommands() {
			fmt.Fprintf(env.Out, "  %s  %s\n", nameColor.Sprint(cmd.Name), dimColor.Sprint(cmd.Template))
		}
	}
	return nil
}
