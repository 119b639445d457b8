package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/zxui/app/cli"
	"github.com/Guerrilla-Interactive/zxui/app/selection"
	"github.com/Guerrilla-Interactive/zxui/app/template"
)

// FieldsCommand shows the parameter fields a command template asks for.
type FieldsCommand struct{}

func init() {
	RegisterCommand(&FieldsCommand{})
}

func (c *FieldsCommand) Name() string {
	return "fields"
}

func (c *FieldsCommand) Description() string {
	return "Shows a command's template and the parameters it expects."
}

func (c *FieldsCommand) Usage() string {
	return "<command>"
}

func (c *FieldsCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "command", Description: "Command id, name, or tool/name.", Required: true},
	}
}

func (c *FieldsCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *FieldsCommand) Execute(env *Env, args cli.CommandArgs) error {
	if len(args.Variables) < 1 {
		return fmt.Errorf("missing required argument: command")
	}
	ref, err := resolveCommand(env.Catalog, args.Variables[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "%s %s\n", headingColor.Sprint(ref.ToolName+"/"+ref.Name), dimColor.Sprintf("#%d", ref.ID))
	if meta := selection.Meta(ref.Command); meta != "" {
		fmt.Fprintln(env.Out, dimColor.Sprint(meta))
	}
	if ref.Description != "" {
		fmt.Fprintln(env.Out, ref.Description)
	}
	fmt.Fprintln(env.Out, ref.Template)
	fmt.Fprintln(env.Out)

	fields := template.FieldsFor(ref.Template)
	if len(fields) == 0 {
		fmt.Fprintln(env.Out, template.NoVariablesNotice)
		return nil
	}
	for _, f := range fields {
		fmt.Fprintf(env.Out, "  %-12s %-12s %s\n", nameColor.Sprint(f.Name), f.Label, dimColor.Sprint(f.Hint))
	}
	return nil
}
