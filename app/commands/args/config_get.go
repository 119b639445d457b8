package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/zxui/app/cli"
	"github.com/Guerrilla-Interactive/zxui/internal/config"
)

// ConfigGetCommand prints one configuration value.
type ConfigGetCommand struct{}

func init() {
	RegisterCommand(&ConfigGetCommand{})
}

func (c *ConfigGetCommand) Name() string {
	return "config get"
}

func (c *ConfigGetCommand) Description() string {
	return "Gets the value of a configuration key."
}

func (c *ConfigGetCommand) Usage() string {
	return "<key>"
}

func (c *ConfigGetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "key", Description: "One of catalog.path, ui.page_size, ui.copy_to_clipboard, log.file.", Required: true},
	}
}

func (c *ConfigGetCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

// NeedsCatalog implements CatalogUser.
func (c *ConfigGetCommand) NeedsCatalog() bool {
	return false
}

func (c *ConfigGetCommand) Execute(env *Env, args cli.CommandArgs) error {
	if len(args.Variables) != 1 {
		return fmt.Errorf("expected exactly one argument: key")
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	value, err := cfg.Get(args.Variables[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Out, value)
	return nil
}
