package shared

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/zxui/app"
)

// ComputeLeftPanelWidth returns a stable left column width based on the
// terminal width with clamping and room for the right side.
//
// Rules:
// - Target ~40% of terminal width
// - Clamp to [minLeft, maxLeft]
// - Reserve a single-space gap and at least rightMin for the right panel
func ComputeLeftPanelWidth(termWidth int) int {
	const (
		defaultLeft = 40
		minLeft     = 28
		maxLeft     = 56
		gap         = 1
		rightMin    = 36
	)
	if termWidth <= 0 {
		return defaultLeft
	}
	left := (termWidth * 2) / 5
	if left < minLeft {
		left = minLeft
	}
	if left > maxLeft {
		left = maxLeft
	}
	if left+gap+rightMin > termWidth {
		left = termWidth - gap - rightMin
	}
	if left < 20 { // last-ditch lower bound for very small terminals
		left = 20
	}
	return left
}

// ComputeRightPanelWidth returns the remaining width after the left panel and a gap.
func ComputeRightPanelWidth(termWidth, left, gap int) int {
	if termWidth <= 0 {
		return 60
	}
	w := termWidth - left - gap
	if w < 0 {
		w = 0
	}
	return w
}

// Pane renders content in a bordered box of the given outer width. Active
// panes get the highlighted border.
func Pane(content string, width int, active bool) string {
	style := app.PaneStyle
	if active {
		style = app.ActivePaneStyle
	}
	// Width excludes the border.
	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(content)
}

// Columns joins two panes side by side with a one-space gap.
func Columns(left, right string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}
