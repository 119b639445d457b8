package shared

import (
	"strings"

	"github.com/Guerrilla-Interactive/zxui/app"
)

// Footer joins key hints with a consistent separator and applies the global
// help style for footers.
func Footer(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	return app.HelpStyle.Render(strings.Join(parts, "  •  "))
}

// ComposerHints are the footer hints of the composer for the given focus.
func ComposerHints(m app.Model) []string {
	hints := []string{"tab/shift+tab focus"}
	switch {
	case m.Focus == app.FocusTools:
		hints = append(hints, "↑/↓ tool")
	case m.Focus == app.FocusCommands:
		hints = append(hints, "↑/↓ command", "←/→ page")
	}
	hints = append(hints, "ctrl+y copy", "ctrl+l library")
	if m.InTextInput() {
		return append(hints, "esc leave input", "ctrl+c quit")
	}
	return append(hints, "esc quit")
}

// LibraryHints are the footer hints of the library for the given focus.
func LibraryHints(m app.Model) []string {
	hints := []string{"tab search/category"}
	if m.LibraryFocus == app.LibraryFocusCategory {
		hints = append(hints, "←/→ category")
	}
	hints = append(hints, "↑/↓ scroll", "ctrl+l composer")
	if m.InTextInput() {
		return append(hints, "ctrl+c quit")
	}
	return append(hints, "esc quit")
}
