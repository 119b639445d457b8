package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Guerrilla-Interactive/zxui/app"
	"github.com/Guerrilla-Interactive/zxui/app/screens"
)

// ProgramModel wraps app.Model so we can hold Update logic in one place.
type ProgramModel struct {
	M app.Model
}

// Init implements tea.Model.
func (pm ProgramModel) Init() tea.Cmd {
	return nil
}

// Update routes key presses to the current screen and handles the
// program-wide messages.
func (pm ProgramModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch typedMsg := msg.(type) {
	case tea.WindowSizeMsg:
		// Record terminal dimensions for layout purposes.
		pm.M.TerminalWidth = typedMsg.Width
		pm.M.TerminalHeight = typedMsg.Height

	case screens.CopyResultMsg:
		pm.M, cmd = screens.HandleCopyResult(pm.M, typedMsg)

	case screens.StatusResetMsg:
		pm.M = screens.HandleStatusReset(pm.M, typedMsg)

	case tea.KeyMsg:
		switch pm.M.CurrentScreen {
		case app.ScreenComposer:
			pm.M, cmd = screens.UpdateScreenComposer(pm.M, typedMsg)
		case app.ScreenLibrary:
			pm.M, cmd = screens.UpdateScreenLibrary(pm.M, typedMsg)
		}
	}
	return pm, cmd
}

// View selects which screen's View function to call based on pm.M.CurrentScreen.
func (pm ProgramModel) View() string {
	switch pm.M.CurrentScreen {
	case app.ScreenLibrary:
		return app.DocStyle.Render(screens.ViewScreenLibrary(pm.M))
	default:
		return app.DocStyle.Render(screens.ViewScreenComposer(pm.M))
	}
}

func runTUI(ctx context.Context, st *rootState) error {
	m := app.NewModel(st.catalog, app.Options{
		PageSize:        st.cfg.UI.PageSize,
		CopyToClipboard: st.cfg.UI.CopyToClipboard,
		Clipboard:       st.clipboard,
		Logger:          st.logger,
	})
	p := tea.NewProgram(ProgramModel{M: m}, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
