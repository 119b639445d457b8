// Package filter narrows catalog views by search term and category.
package filter

import (
	"strings"

	"github.com/Guerrilla-Interactive/zxui/app/catalog"
)

// Normalize case-folds and trims a search term or category.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Commands keeps the commands whose name, description, template, category
// or tags contain term, in their original order. A blank term returns cmds
// unchanged.
func Commands(cmds []catalog.Command, term string) []catalog.Command {
	term = Normalize(term)
	if term == "" {
		return cmds
	}
	out := make([]catalog.Command, 0, len(cmds))
	for _, c := range cmds {
		if strings.Contains(commandHaystack(c), term) {
			out = append(out, c)
		}
	}
	return out
}

func commandHaystack(c catalog.Command) string {
	return strings.ToLower(strings.Join([]string{
		c.Name,
		c.Description,
		c.Template,
		c.Category,
		c.Tags.Join(" "),
	}, " "))
}
