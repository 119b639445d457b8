// Package selection holds the composer state machine: which tool and command
// are active, the search term, and the parameter values being filled in.
//
// Every transition is a pure function of the previous State and the
// catalog the Controller was built with.
package selection

import (
	"strings"

	"github.com/Guerrilla-Interactive/zxui/app/catalog"
	"github.com/Guerrilla-Interactive/zxui/app/filter"
	"github.com/Guerrilla-Interactive/zxui/app/template"
)

// Messages shown when nothing is available or selected.
const (
	NoToolsMessage    = "No tools available"
	NoCommandsMessage = "No commands available"
	NoCommandPreview  = "Select a command to preview."
)

// State is the composer state. A zero id means nothing is selected.
type State struct {
	ToolID    int64
	CommandID int64
	Search    string
	Values    map[string]string
	Extra     string
}

// Value returns the stored value for a placeholder.
func (s State) Value(name string) string {
	return s.Values[name]
}

// Controller applies transitions against a read-only catalog.
type Controller struct {
	catalog *catalog.Catalog
}

// New returns a Controller for c. A nil catalog behaves as empty.
func New(c *catalog.Catalog) Controller {
	return Controller{catalog: c}
}

// Catalog returns the catalog the controller reads from.
func (c Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Init activates the first tool and the first command matching search.
func (c Controller) Init(search string) State {
	s := State{Search: search}
	if t, ok := c.catalog.First(); ok {
		return c.SelectTool(s, t.ID)
	}
	return c.resetCommand(s, 0)
}

// SelectTool activates tool id and the first command of its list filtered by
// the current search term. An unknown id clears both selections.
func (c Controller) SelectTool(s State, id int64) State {
	t, ok := c.catalog.ToolByID(id)
	if !ok {
		s.ToolID = 0
		return c.resetCommand(s, 0)
	}
	s.ToolID = t.ID
	return c.resetCommand(s, firstID(filter.Commands(t.Commands, s.Search)))
}

// SetSearch refilters the active tool's commands and activates the first
// match.
func (c Controller) SetSearch(s State, term string) State {
	s.Search = term
	return c.resetCommand(s, firstID(c.Commands(s)))
}

// SelectCommand activates command id when it is in the active tool's
// filtered list, otherwise clears the command selection. Parameter values
// are reset either way.
func (c Controller) SelectCommand(s State, id int64) State {
	for _, cmd := range c.Commands(s) {
		if cmd.ID == id {
			return c.resetCommand(s, id)
		}
	}
	return c.resetCommand(s, 0)
}

// MoveCommand activates the command delta positions away from the active one
// in the filtered list, clamped to the list bounds. With no active command in
// the list it activates the first one.
func (c Controller) MoveCommand(s State, delta int) State {
	cmds := c.Commands(s)
	if len(cmds) == 0 {
		return c.resetCommand(s, 0)
	}
	i := indexOf(cmds, s.CommandID)
	if i < 0 {
		return c.resetCommand(s, cmds[0].ID)
	}
	i += delta
	if i < 0 {
		i = 0
	}
	if i >= len(cmds) {
		i = len(cmds) - 1
	}
	if cmds[i].ID == s.CommandID {
		return s
	}
	return c.resetCommand(s, cmds[i].ID)
}

// MoveTool activates the tool delta positions away from the active one,
// wrapping around the catalog.
func (c Controller) MoveTool(s State, delta int) State {
	tools := c.catalog.Tools()
	if len(tools) == 0 {
		return c.SelectTool(s, 0)
	}
	i := 0
	for j, t := range tools {
		if t.ID == s.ToolID {
			i = j
			break
		}
	}
	i = ((i+delta)%len(tools) + len(tools)) % len(tools)
	return c.SelectTool(s, tools[i].ID)
}

// SetValue stores the trimmed value for a placeholder of the active command.
func (c Controller) SetValue(s State, name, value string) State {
	values := make(map[string]string, len(s.Values)+1)
	for k, v := range s.Values {
		values[k] = v
	}
	values[name] = strings.TrimSpace(value)
	s.Values = values
	return s
}

// SetExtra stores the extra arguments appended to the rendered command.
func (c Controller) SetExtra(s State, extra string) State {
	s.Extra = extra
	return s
}

// Commands returns the active tool's commands filtered by the search term.
func (c Controller) Commands(s State) []catalog.Command {
	t, ok := c.catalog.ToolByID(s.ToolID)
	if !ok {
		return nil
	}
	return filter.Commands(t.Commands, s.Search)
}

// resetCommand activates id and clears the parameter values.
func (c Controller) resetCommand(s State, id int64) State {
	s.CommandID = id
	s.Values = map[string]string{}
	return s
}

func firstID(cmds []catalog.Command) int64 {
	if len(cmds) == 0 {
		return 0
	}
	return cmds[0].ID
}

func indexOf(cmds []catalog.Command, id int64) int {
	for i, c := range cmds {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Composer is everything the presentation layer needs to draw the composer.
type Composer struct {
	Tools      []catalog.Tool
	Tool       catalog.Tool
	HasTool    bool
	Commands   []catalog.Command
	Command    catalog.CommandRef
	HasCommand bool

	// Preview is the raw template, or NoCommandPreview.
	Preview     string
	Meta        string
	Description string

	Fields []template.Field
	// NoCommand is set when no command is active; NoVariables when the
	// active command's template has no placeholders.
	NoCommand   bool
	NoVariables bool

	Output string
}

// View derives the composer presentation from s.
func (c Controller) View(s State) Composer {
	v := Composer{
		Tools:     c.catalog.Tools(),
		Preview:   NoCommandPreview,
		NoCommand: true,
		Fields:    []template.Field{},
	}
	if t, ok := c.catalog.ToolByID(s.ToolID); ok {
		v.Tool, v.HasTool = t, true
		v.Commands = filter.Commands(t.Commands, s.Search)
	}

	ref, ok := c.catalog.CommandByID(s.CommandID)
	if !ok || ref.ToolID != s.ToolID {
		return v
	}
	v.Command, v.HasCommand, v.NoCommand = ref, true, false
	v.Preview = ref.Template
	v.Meta = Meta(ref.Command)
	v.Description = ref.Description
	v.Fields = template.FieldsFor(ref.Template)
	v.NoVariables = len(v.Fields) == 0
	v.Output = template.Render(ref.Template, s.Values, s.Extra)
	return v
}

// Meta formats the category and tags line of a command.
func Meta(cmd catalog.Command) string {
	var parts []string
	if cmd.Category != "" {
		parts = append(parts, "Category: "+cmd.Category)
	}
	if len(cmd.Tags) > 0 {
		parts = append(parts, "Tags: "+cmd.Tags.Join(", "))
	}
	return strings.Join(parts, " · ")
}
