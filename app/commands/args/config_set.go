package args

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Guerrilla-Interactive/zxui/app/cli"
	"github.com/Guerrilla-Interactive/zxui/internal/config"
)

// ConfigSetCommand stores one configuration value in the config file.
type ConfigSetCommand struct{}

func init() {
	RegisterCommand(&ConfigSetCommand{})
}

func (c *ConfigSetCommand) Name() string {
	return "config set"
}

func (c *ConfigSetCommand) Description() string {
	return "Sets a configuration key and writes the config file."
}

func (c *ConfigSetCommand) Usage() string {
	return "<key> <value>"
}

func (c *ConfigSetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "key", Description: "One of catalog.path, ui.page_size, ui.copy_to_clipboard, log.file.", Required: true},
		{Name: "value", Description: "The value to assign; an empty string clears a path.", Required: true},
	}
}

func (c *ConfigSetCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

// NeedsCatalog implements CatalogUser. A broken catalog.path must stay
// fixable through this command.
func (c *ConfigSetCommand) NeedsCatalog() bool {
	return false
}

func (c *ConfigSetCommand) Execute(env *Env, args cli.CommandArgs) error {
	if len(args.Variables) != 2 {
		return fmt.Errorf("expected exactly two arguments: key and value")
	}
	key, value := args.Variables[0], args.Variables[1]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	saved, _ := cfg.Normalize().Get(key)
	env.Logger.Debug("config updated", zap.String("key", key), zap.String("value", saved))
	fmt.Fprintf(env.Out, "%s = %s\n", key, saved)
	return nil
}
