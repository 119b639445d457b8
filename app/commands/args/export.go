package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/zxui/app/catalog"
	"github.com/Guerrilla-Interactive/zxui/app/cli"
)

// ExportCommand writes the catalog as an import/export JSON document.
type ExportCommand struct{}

func init() {
	RegisterCommand(&ExportCommand{})
}

func (c *ExportCommand) Name() string {
	return "export"
}

func (c *ExportCommand) Description() string {
	return "Writes the catalog as JSON, without ids."
}

func (c *ExportCommand) Usage() string {
	return ""
}

func (c *ExportCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *ExportCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *ExportCommand) Execute(env *Env, args cli.CommandArgs) error {
	if err := catalog.Export(env.Out, env.Catalog); err != nil {
		return fmt.Errorf("export catalog: %w", err)
	}
	return nil
}
