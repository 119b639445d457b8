package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/zxui/app"
	"github.com/Guerrilla-Interactive/zxui/app/filter"
	"github.com/Guerrilla-Interactive/zxui/app/screens/shared"
)

// UpdateScreenLibrary handles keypresses on the library screen.
func UpdateScreenLibrary(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+l":
		m.CurrentScreen = app.ScreenComposer
		return m, nil
	case "tab", "shift+tab":
		return toggleLibraryFocus(m), nil
	case "esc":
		if m.InTextInput() {
			return toggleLibraryFocus(m), nil
		}
		return m, tea.Quit
	case "up":
		return scrollLibrary(m, -1), nil
	case "down":
		return scrollLibrary(m, 1), nil
	case "pgup":
		return scrollLibrary(m, -10), nil
	case "pgdown":
		return scrollLibrary(m, 10), nil
	}

	if m.LibraryFocus == app.LibraryFocusCategory {
		return updateCategory(m, msg)
	}

	before := m.LibrarySearch.Value()
	var cmd tea.Cmd
	m.LibrarySearch, cmd = m.LibrarySearch.Update(msg)
	if m.LibrarySearch.Value() != before {
		m.LibraryOffset = 0
	}
	return m, cmd
}

func toggleLibraryFocus(m app.Model) app.Model {
	if m.LibraryFocus == app.LibraryFocusSearch {
		m.LibraryFocus = app.LibraryFocusCategory
		m.LibrarySearch.Blur()
	} else {
		m.LibraryFocus = app.LibraryFocusSearch
		m.LibrarySearch.Focus()
	}
	return m
}

func updateCategory(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	n := len(filter.CategoryOptions(m.Controller.Catalog()))
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		m.LibraryCategory = (m.LibraryCategory - 1 + n) % n
		m.LibraryOffset = 0
	case "right", "l":
		m.LibraryCategory = (m.LibraryCategory + 1) % n
		m.LibraryOffset = 0
	case "k":
		return scrollLibrary(m, -1), nil
	case "j":
		return scrollLibrary(m, 1), nil
	}
	return m, nil
}

// scrollLibrary moves the library window by delta lines, clamped to the
// current content.
func scrollLibrary(m app.Model, delta int) app.Model {
	view := filter.Library(m.Controller.Catalog(), m.LibrarySearch.Value(), SelectedCategory(m).Value)
	_, m.LibraryOffset = shared.Window(libraryLines(view), m.LibraryOffset+delta, libraryHeight(m))
	return m
}

// libraryHeight is the number of card lines that fit below the header. Zero
// means the terminal size is not known yet.
func libraryHeight(m app.Model) int {
	if m.TerminalHeight <= 0 {
		return 0
	}
	// header (4), footer (2) and the doc padding (2)
	return max(m.TerminalHeight-8, 1)
}

// SelectedCategory returns the active category option.
func SelectedCategory(m app.Model) filter.Option {
	opts := filter.CategoryOptions(m.Controller.Catalog())
	if m.LibraryCategory < 0 || m.LibraryCategory >= len(opts) {
		return opts[0]
	}
	return opts[m.LibraryCategory]
}

// ViewScreenLibrary renders every tool card with its visible commands.
func ViewScreenLibrary(m app.Model) string {
	opt := SelectedCategory(m)
	view := filter.Library(m.Controller.Catalog(), m.LibrarySearch.Value(), opt.Value)

	category := app.ChoiceStyle.Render("◀ ") + opt.Label + app.ChoiceStyle.Render(" ▶")
	if m.LibraryFocus == app.LibraryFocusCategory {
		category = app.HighlightStyle.Render("◀ " + opt.Label + " ▶")
	}
	header := lipgloss.JoinVertical(lipgloss.Left,
		app.TitleStyle.Render("zx")+" "+app.MetaStyle.Render("library"),
		m.LibrarySearch.View(),
		category,
		"",
	)

	body, _ := shared.Window(libraryLines(view), m.LibraryOffset, libraryHeight(m))

	footer := shared.Footer(shared.LibraryHints(m)...)
	return lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(body, "\n"), "", footer)
}

func libraryLines(view filter.LibraryView) []string {
	if view.VisibleTools == 0 {
		return []string{app.ChoiceStyle.Render(filter.NoMatchesMessage)}
	}
	var lines []string
	for _, t := range view.Tools {
		if !t.Visible {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, app.HighlightStyle.Render(t.Name))
		if t.Description != "" {
			lines = append(lines, app.MetaStyle.Render(t.Description))
		}
		if t.ShowEmpty {
			lines = append(lines, "  "+app.ChoiceStyle.Render(filter.EmptyToolMessage))
			continue
		}
		for _, c := range t.VisibleCommands() {
			lines = append(lines, "  "+app.SubtitleStyle.Render(c.Name)+"  "+app.ChoiceStyle.Render(c.Template))
		}
	}
	return lines
}
