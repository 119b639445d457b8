package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/zxui/app/cli"
	"github.com/Guerrilla-Interactive/zxui/app/filter"
)

// CategoriesCommand prints the category selector options.
type CategoriesCommand struct{}

func init() {
	RegisterCommand(&CategoriesCommand{})
}

func (c *CategoriesCommand) Name() string {
	return "categories"
}

func (c *CategoriesCommand) Description() string {
	return "Lists the distinct command categories."
}

func (c *CategoriesCommand) Usage() string {
	return ""
}

func (c *CategoriesCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *CategoriesCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *CategoriesCommand) Execute(env *Env, args cli.CommandArgs) error {
	for _, opt := range filter.CategoryOptions(env.Catalog) {
		if opt.Value == "" {
			fmt.Fprintln(env.Out, dimColor.Sprint(opt.Label))
			continue
		}
		fmt.Fprintln(env.Out, opt.Label)
	}
	return nil
}
