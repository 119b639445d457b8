package app

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Guerrilla-Interactive/zxui/app/catalog"
	"github.com/Guerrilla-Interactive/zxui/app/selection"
)

// Screen indicates which screen is currently shown.
type Screen int

const (
	ScreenComposer Screen = iota
	ScreenLibrary
)

// Composer focus zones. Parameter fields occupy FocusFields..FocusFields+n-1
// and the extra-args input follows them.
const (
	FocusTools = iota
	FocusSearch
	FocusCommands
	FocusFields
)

// Library focus zones.
const (
	LibraryFocusSearch = iota
	LibraryFocusCategory
)

// Status messages for the copy action.
const (
	CopiedMessage     = "Copied"
	ClipboardFallback = "Clipboard unavailable, select the output manually."
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is the Clipboard backed by the OS clipboard utilities.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Options configures NewModel.
type Options struct {
	PageSize        int
	CopyToClipboard bool
	Clipboard       Clipboard
	Logger          *zap.Logger
}

// Model is the primary application state shared by all screens.
type Model struct {
	CurrentScreen Screen

	Controller selection.Controller
	State      selection.State

	// Composer
	Focus            int
	SearchInput      textinput.Model
	FieldInputs      []textinput.Model
	ExtraInput       textinput.Model
	CommandPaginator paginator.Model

	// Library
	LibraryFocus    int
	LibrarySearch   textinput.Model
	LibraryCategory int
	LibraryOffset   int

	// Status is the transient line under the output; StatusSeq identifies the
	// message so a stale reset does not clear a newer one.
	Status    string
	StatusSeq int

	CopyToClipboard bool
	Clipboard       Clipboard
	Logger          *zap.Logger

	TerminalWidth  int
	TerminalHeight int
}

// NewModel builds the initial model over c with the first tool and command
// active.
func NewModel(c *catalog.Catalog, opts Options) Model {
	if opts.Clipboard == nil {
		opts.Clipboard = SystemClipboard{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 8
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search commands"

	extra := textinput.New()
	extra.Prompt = "+ "
	extra.Placeholder = "Extra arguments"

	libSearch := textinput.New()
	libSearch.Prompt = "/ "
	libSearch.Placeholder = "Search the library"
	libSearch.Focus()

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = opts.PageSize
	pager.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render("•")
	pager.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("•")

	ctrl := selection.New(c)
	m := Model{
		CurrentScreen:    ScreenComposer,
		Controller:       ctrl,
		Focus:            FocusTools,
		SearchInput:      search,
		ExtraInput:       extra,
		CommandPaginator: pager,
		LibraryFocus:     LibraryFocusSearch,
		LibrarySearch:    libSearch,
		CopyToClipboard:  opts.CopyToClipboard,
		Clipboard:        opts.Clipboard,
		Logger:           opts.Logger,
	}
	return m.WithState(ctrl.Init(""))
}

// WithState installs s as the composer state. Parameter inputs are rebuilt
// when the active command changes and otherwise synced to the stored
// (trimmed) values; the command paginator is moved to the page holding the
// active command.
func (m Model) WithState(s selection.State) Model {
	fields := m.Controller.View(s).Fields
	if s.CommandID != m.State.CommandID || len(fields) != len(m.FieldInputs) {
		inputs := make([]textinput.Model, len(fields))
		for i, f := range fields {
			in := textinput.New()
			in.Prompt = ""
			in.Placeholder = f.Hint
			in.SetValue(s.Value(f.Name))
			inputs[i] = in
		}
		m.FieldInputs = inputs
	} else {
		for i, f := range fields {
			if strings.TrimSpace(m.FieldInputs[i].Value()) != s.Value(f.Name) {
				m.FieldInputs[i].SetValue(s.Value(f.Name))
			}
		}
	}
	m.State = s

	cmds := m.Controller.Commands(s)
	m.CommandPaginator.SetTotalPages(len(cmds))
	for i, c := range cmds {
		if c.ID == s.CommandID {
			m.CommandPaginator.Page = i / m.CommandPaginator.PerPage
			break
		}
	}
	return m.SetFocus(m.Focus)
}

// SetFocus moves composer focus to zone i, clamped to the available zones,
// and focuses the matching text input.
func (m Model) SetFocus(i int) Model {
	if i < 0 {
		i = 0
	}
	if i >= m.FocusCount() {
		i = m.FocusCount() - 1
	}
	m.Focus = i

	m.SearchInput.Blur()
	m.ExtraInput.Blur()
	for j := range m.FieldInputs {
		m.FieldInputs[j].Blur()
	}
	switch {
	case i == FocusSearch:
		m.SearchInput.Focus()
	case i == m.ExtraFocus():
		m.ExtraInput.Focus()
	case i >= FocusFields:
		m.FieldInputs[i-FocusFields].Focus()
	}
	return m
}

// InTextInput reports whether keystrokes currently go to a text input.
func (m Model) InTextInput() bool {
	if m.CurrentScreen == ScreenLibrary {
		return m.LibraryFocus == LibraryFocusSearch
	}
	return m.Focus >= FocusSearch && m.Focus != FocusCommands
}

// ExtraFocus returns the focus index of the extra-args input.
func (m Model) ExtraFocus() int {
	return FocusFields + len(m.FieldInputs)
}

// FocusCount returns the number of composer focus zones.
func (m Model) FocusCount() int {
	return m.ExtraFocus() + 1
}

// Styles shared by the screens.
var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	SubtitleStyle  = lipgloss.NewStyle().Bold(true)
	HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	ChoiceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	DocStyle       = lipgloss.NewStyle().Padding(1, 2)
	HelpStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
	MetaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	OutputStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00D787"))
	StatusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	ActivePaneStyle = PaneStyle.BorderForeground(lipgloss.Color("205"))
)
