package filter

import (
	"strings"

	"github.com/Guerrilla-Interactive/zxui/app/catalog"
)

// Library labels and messages.
const (
	// AllCategoriesLabel is the label of the leading match-all category option.
	AllCategoriesLabel = "All categories"
	// EmptyToolMessage stands in for the command list of a tool that has none.
	EmptyToolMessage = "No commands yet."
	// NoMatchesMessage is shown when no tool card is visible.
	NoMatchesMessage = "No commands match the current filters."
)

// Option is one entry of the category selector. An empty Value matches all.
type Option struct {
	Value string
	Label string
}

// CategoryOptions returns the match-all option followed by every distinct
// non-empty category, sorted.
func CategoryOptions(c *catalog.Catalog) []Option {
	opts := []Option{{Value: "", Label: AllCategoriesLabel}}
	for _, cat := range c.Categories() {
		opts = append(opts, Option{Value: cat, Label: cat})
	}
	return opts
}

// CommandView is a command with its visibility in the library.
type CommandView struct {
	catalog.Command
	Visible bool
}

// ToolView is a tool card in the library.
type ToolView struct {
	ID          int64
	Name        string
	Description string
	Commands    []CommandView
	// Visible reports whether the card is shown at all.
	Visible bool
	// ShowEmpty reports whether the "no commands" placeholder line is shown.
	ShowEmpty bool
	// VisibleCount is the number of visible commands.
	VisibleCount int
}

// LibraryView is the library-wide filter result.
type LibraryView struct {
	Tools []ToolView
	// VisibleTools is the number of visible cards.
	VisibleTools int
}

// VisibleCommands returns the visible commands of the card, in order.
func (t ToolView) VisibleCommands() []catalog.Command {
	var out []catalog.Command
	for _, c := range t.Commands {
		if c.Visible {
			out = append(out, c.Command)
		}
	}
	return out
}

// Library applies the library-wide search and category filter.
//
// A command is visible when its category matches and either the term is
// blank, the owning tool's name contains the term, or the command's own text
// does. A tool name match therefore admits every command of that tool, but
// the category filter still applies per command. A card is visible when it
// has a visible command, or when the tool has no commands at all, its name
// matches and no category is selected.
func Library(c *catalog.Catalog, term, category string) LibraryView {
	term = Normalize(term)
	category = Normalize(category)

	var view LibraryView
	for _, t := range c.Tools() {
		toolMatches := term == "" || strings.Contains(Normalize(t.Name), term)
		tv := ToolView{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Commands:    make([]CommandView, 0, len(t.Commands)),
		}
		for _, cmd := range t.Commands {
			matchesSearch := toolMatches || strings.Contains(libraryHaystack(cmd), term)
			matchesCategory := category == "" || Normalize(cmd.Category) == category
			visible := matchesSearch && matchesCategory
			if visible {
				tv.VisibleCount++
			}
			tv.Commands = append(tv.Commands, CommandView{Command: cmd, Visible: visible})
		}
		tv.ShowEmpty = toolMatches && category == "" && len(t.Commands) == 0
		tv.Visible = tv.VisibleCount > 0 || tv.ShowEmpty
		if tv.Visible {
			view.VisibleTools++
		}
		view.Tools = append(view.Tools, tv)
	}
	return view
}

// libraryHaystack differs from the composer haystack: category is not part
// of the searchable text here.
func libraryHaystack(c catalog.Command) string {
	return strings.ToLower(strings.Join([]string{
		c.Name,
		c.Template,
		c.Description,
		c.Tags.Join(" "),
	}, " "))
}
