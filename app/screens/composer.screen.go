package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/zxui/app"
	"github.com/Guerrilla-Interactive/zxui/app/screens/shared"
	"github.com/Guerrilla-Interactive/zxui/app/selection"
	"github.com/Guerrilla-Interactive/zxui/app/template"
)

// UpdateScreenComposer handles keypresses on the composer. Global keys come
// first; everything else goes to the focused zone.
func UpdateScreenComposer(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+l":
		m.CurrentScreen = app.ScreenLibrary
		return m, nil
	case "ctrl+y":
		return CopyOutput(m)
	case "tab":
		return m.SetFocus((m.Focus + 1) % m.FocusCount()), nil
	case "shift+tab":
		return m.SetFocus((m.Focus - 1 + m.FocusCount()) % m.FocusCount()), nil
	case "esc":
		if m.InTextInput() {
			return m.SetFocus(app.FocusCommands), nil
		}
		return m, tea.Quit
	case "q":
		if !m.InTextInput() {
			return m, tea.Quit
		}
	}

	switch {
	case m.Focus == app.FocusTools:
		return updateTools(m, msg), nil
	case m.Focus == app.FocusCommands:
		return updateCommands(m, msg), nil
	case m.Focus == app.FocusSearch:
		return updateSearch(m, msg)
	case m.Focus == m.ExtraFocus():
		return updateExtra(m, msg)
	default:
		return updateField(m, msg, m.Focus-app.FocusFields)
	}
}

func updateTools(m app.Model, msg tea.KeyMsg) app.Model {
	switch msg.String() {
	case "up", "k":
		return m.WithState(m.Controller.MoveTool(m.State, -1))
	case "down", "j":
		return m.WithState(m.Controller.MoveTool(m.State, 1))
	case "enter", "right", "l":
		return m.SetFocus(app.FocusCommands)
	}
	return m
}

func updateCommands(m app.Model, msg tea.KeyMsg) app.Model {
	p := m.CommandPaginator
	switch msg.String() {
	case "up", "k":
		return m.WithState(m.Controller.MoveCommand(m.State, -1))
	case "down", "j":
		return m.WithState(m.Controller.MoveCommand(m.State, 1))
	case "left", "h":
		if p.OnFirstPage() {
			return m
		}
		return selectPageStart(m, p.Page-1)
	case "right", "l":
		if p.OnLastPage() {
			return m
		}
		return selectPageStart(m, p.Page+1)
	case "enter":
		return m.SetFocus(app.FocusFields)
	}
	return m
}

// selectPageStart activates the first command on page.
func selectPageStart(m app.Model, page int) app.Model {
	cmds := m.Controller.Commands(m.State)
	i := page * m.CommandPaginator.PerPage
	if i < 0 || i >= len(cmds) {
		return m
	}
	return m.WithState(m.Controller.SelectCommand(m.State, cmds[i].ID))
}

func updateSearch(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	if msg.String() == "enter" {
		return m.SetFocus(app.FocusCommands), nil
	}
	before := m.SearchInput.Value()
	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	if v := m.SearchInput.Value(); v != before {
		m = m.WithState(m.Controller.SetSearch(m.State, v))
	}
	return m, cmd
}

func updateField(m app.Model, msg tea.KeyMsg, i int) (app.Model, tea.Cmd) {
	fields := m.Controller.View(m.State).Fields
	if i < 0 || i >= len(fields) || i >= len(m.FieldInputs) {
		return m, nil
	}
	if msg.String() == "enter" {
		return m.SetFocus(m.Focus + 1), nil
	}
	var cmd tea.Cmd
	m.FieldInputs[i], cmd = m.FieldInputs[i].Update(msg)
	m = m.WithState(m.Controller.SetValue(m.State, fields[i].Name, m.FieldInputs[i].Value()))
	return m, cmd
}

func updateExtra(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	if msg.String() == "enter" {
		return CopyOutput(m)
	}
	var cmd tea.Cmd
	m.ExtraInput, cmd = m.ExtraInput.Update(msg)
	m = m.WithState(m.Controller.SetExtra(m.State, m.ExtraInput.Value()))
	return m, cmd
}

// ViewScreenComposer renders the tool and command lists on the left and the
// selected command's preview, parameters and output on the right.
func ViewScreenComposer(m app.Model) string {
	v := m.Controller.View(m.State)

	leftW := shared.ComputeLeftPanelWidth(m.TerminalWidth)
	rightW := shared.ComputeRightPanelWidth(m.TerminalWidth, leftW, 1)

	left := lipgloss.JoinVertical(lipgloss.Left,
		shared.Pane(viewTools(m, v), leftW, m.Focus == app.FocusTools),
		shared.Pane(m.SearchInput.View(), leftW, m.Focus == app.FocusSearch),
		shared.Pane(viewCommandList(m, v), leftW, m.Focus == app.FocusCommands),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		shared.Pane(viewPreview(v, rightW-4), rightW, false),
		shared.Pane(viewFields(m, v), rightW, m.Focus >= app.FocusFields),
		shared.Pane(viewOutput(m, v, rightW-4), rightW, false),
	)

	header := app.TitleStyle.Render("zx") + " " + app.MetaStyle.Render("command composer")
	footer := shared.Footer(shared.ComposerHints(m)...)
	return lipgloss.JoinVertical(lipgloss.Left, header, shared.Columns(left, right), footer)
}

func viewTools(m app.Model, v selection.Composer) string {
	var b strings.Builder
	b.WriteString(app.SubtitleStyle.Render("Tools"))
	b.WriteString("\n")
	if len(v.Tools) == 0 {
		b.WriteString(app.ChoiceStyle.Render(selection.NoToolsMessage))
		return b.String()
	}
	for i, t := range v.Tools {
		if i > 0 {
			b.WriteString("\n")
		}
		if t.ID == m.State.ToolID {
			b.WriteString(app.HighlightStyle.Render("> " + t.Name))
		} else {
			b.WriteString(app.ChoiceStyle.Render("  " + t.Name))
		}
	}
	return b.String()
}

func viewCommandList(m app.Model, v selection.Composer) string {
	var b strings.Builder
	b.WriteString(app.SubtitleStyle.Render("Commands"))
	b.WriteString("\n")
	switch {
	case !v.HasTool:
		b.WriteString(app.ChoiceStyle.Render(selection.NoToolsMessage))
		return b.String()
	case len(v.Commands) == 0:
		b.WriteString(app.ChoiceStyle.Render(selection.NoCommandsMessage))
		return b.String()
	}

	start, end := m.CommandPaginator.GetSliceBounds(len(v.Commands))
	for i, c := range v.Commands[start:end] {
		if i > 0 {
			b.WriteString("\n")
		}
		if c.ID == m.State.CommandID {
			b.WriteString(app.HighlightStyle.Render("> " + c.Name))
		} else {
			b.WriteString(app.ChoiceStyle.Render("  " + c.Name))
		}
	}
	if m.CommandPaginator.TotalPages > 1 {
		b.WriteString("\n\n")
		b.WriteString(m.CommandPaginator.View())
	}
	return b.String()
}

func viewPreview(v selection.Composer, width int) string {
	if v.NoCommand {
		return app.ChoiceStyle.Render(selection.NoCommandPreview)
	}
	lines := []string{app.TitleStyle.Render(fmt.Sprintf("%s / %s", v.Command.ToolName, v.Command.Name))}
	if v.Meta != "" {
		lines = append(lines, app.MetaStyle.Render(v.Meta))
	}
	if v.Description != "" {
		lines = append(lines, shared.WrapText(v.Description, width))
	}
	lines = append(lines, "", app.ChoiceStyle.Render(shared.WrapText(v.Preview, width)))
	return strings.Join(lines, "\n")
}

func viewFields(m app.Model, v selection.Composer) string {
	var b strings.Builder
	b.WriteString(app.SubtitleStyle.Render("Parameters"))
	b.WriteString("\n")
	switch {
	case v.NoCommand:
		b.WriteString(app.ChoiceStyle.Render(selection.NoCommandPreview))
	case v.NoVariables:
		b.WriteString(app.ChoiceStyle.Render(template.NoVariablesNotice))
	default:
		for i, f := range v.Fields {
			if i >= len(m.FieldInputs) {
				break
			}
			label := app.ChoiceStyle.Render(f.Label)
			if m.Focus == app.FocusFields+i {
				label = app.HighlightStyle.Render(f.Label)
			}
			b.WriteString(fmt.Sprintf("%s\n%s\n", label, m.FieldInputs[i].View()))
		}
	}
	b.WriteString("\n")
	b.WriteString(m.ExtraInput.View())
	return b.String()
}

func viewOutput(m app.Model, v selection.Composer, width int) string {
	out := app.SubtitleStyle.Render("Output") + "\n"
	if v.NoCommand {
		out += app.ChoiceStyle.Render("-")
	} else {
		out += app.OutputStyle.Render(shared.WrapText(v.Output, width))
	}
	if m.Status != "" {
		out += "\n" + app.StatusStyle.Render(m.Status)
	}
	return out
}
