package screens

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Guerrilla-Interactive/zxui/app"
)

// StatusTimeout is how long the "Copied" confirmation stays visible.
const StatusTimeout = 1500 * time.Millisecond

// NothingToCopy is shown when ctrl+y is pressed without an active command.
const NothingToCopy = "Nothing to copy yet."

// CopyResultMsg reports the outcome of a clipboard write.
type CopyResultMsg struct {
	Err error
}

// StatusResetMsg clears the status line if it still shows message Seq.
type StatusResetMsg struct {
	Seq int
}

// CopyOutput copies the rendered command. The clipboard write runs as a
// tea.Cmd; its result arrives as a CopyResultMsg.
func CopyOutput(m app.Model) (app.Model, tea.Cmd) {
	v := m.Controller.View(m.State)
	if !v.HasCommand {
		return setStatus(m, NothingToCopy), nil
	}
	if !m.CopyToClipboard {
		return setStatus(m, app.ClipboardFallback), nil
	}
	clip, out := m.Clipboard, v.Output
	return m, func() tea.Msg {
		return CopyResultMsg{Err: clip.WriteAll(out)}
	}
}

// HandleCopyResult shows the copy outcome. Success reverts after
// StatusTimeout; the fallback notice stays until replaced.
func HandleCopyResult(m app.Model, msg CopyResultMsg) (app.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Logger.Warn("clipboard write failed", zap.Error(msg.Err))
		return setStatus(m, app.ClipboardFallback), nil
	}
	m = setStatus(m, app.CopiedMessage)
	seq := m.StatusSeq
	return m, tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return StatusResetMsg{Seq: seq}
	})
}

// HandleStatusReset clears the status line unless a newer message replaced it.
func HandleStatusReset(m app.Model, msg StatusResetMsg) app.Model {
	if msg.Seq == m.StatusSeq {
		m.Status = ""
	}
	return m
}

func setStatus(m app.Model, text string) app.Model {
	m.StatusSeq++
	m.Status = text
	return m
}
