package args

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Guerrilla-Interactive/zxui/app"
	"github.com/Guerrilla-Interactive/zxui/app/cli"
	"github.com/Guerrilla-Interactive/zxui/app/template"
)

// RenderCommand renders a command template with parameter values.
type RenderCommand struct{}

func init() {
	RegisterCommand(&RenderCommand{})
}

func (c *RenderCommand) Name() string {
	return "render"
}

func (c *RenderCommand) Description() string {
	return "Renders a command with name=value parameters and extra arguments after --."
}

func (c *RenderCommand) Usage() string {
	return "<command> [name=value ...] [-- extra args]"
}

func (c *RenderCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "command", Description: "Command id, name, or tool/name.", Required: true},
		{Name: "name=value", Description: "Value for a {name} placeholder. Blank values keep the placeholder."},
	}
}

func (c *RenderCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "copy", ShortName: "c", Description: "Also copy the rendered command to the clipboard."},
	}
}

func (c *RenderCommand) Execute(env *Env, args cli.CommandArgs) error {
	parsed := cli.ParseAssignments(args.Variables)
	if len(parsed.Errors) > 0 {
		return errors.Join(parsed.Errors...)
	}
	if len(parsed.Positional) < 1 {
		return fmt.Errorf("missing required argument: command")
	}
	if len(parsed.Positional) > 1 {
		return fmt.Errorf("unexpected argument %q: parameters are name=value, extra arguments go after --", parsed.Positional[1])
	}

	ref, err := resolveCommand(env.Catalog, parsed.Positional[0])
	if err != nil {
		return err
	}

	known := make(map[string]bool)
	for _, name := range template.Tokenize(ref.Template) {
		known[name] = true
	}
	for name := range parsed.Values {
		if !known[name] {
			warnColor.Fprintf(env.Err, "warning: %s has no {%s} placeholder\n", ref.Name, name)
		}
	}

	extra := strings.Join(args.Extra, " ")
	out := template.Render(ref.Template, parsed.Values, extra)
	env.Logger.Debug("render",
		zap.Int64("command_id", ref.ID),
		zap.String("command", ref.Name),
		zap.Int("values", len(parsed.Values)),
		zap.String("extra", extra))
	fmt.Fprintln(env.Out, out)

	if args.BoolFlags["copy"] {
		if err := env.Clipboard.WriteAll(out); err != nil {
			env.Logger.Warn("clipboard write failed", zap.Error(err))
			fmt.Fprintln(env.Err, app.ClipboardFallback)
			return nil
		}
		fmt.Fprintln(env.Err, dimColor.Sprint(app.CopiedMessage))
	}
	return nil
}
