package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrDuplicateID is returned when two tools, or two commands anywhere in the
// catalog, carry the same explicit id.
var ErrDuplicateID = errors.New("duplicate id")

// Tool is a named group of command templates.
type Tool struct {
	ID          int64     `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Commands    []Command `json:"commands" yaml:"commands"`
}

// Command is a single parameterised command line owned by one Tool.
type Command struct {
	ID          int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	Tags        Tags   `json:"tags,omitempty" yaml:"tags,omitempty"`
	Template    string `json:"template" yaml:"template"`
}

// CommandRef is a Command together with the tool that owns it.
type CommandRef struct {
	Command
	ToolID   int64
	ToolName string
}

// Catalog is the read-only set of tools loaded at startup. The zero value and
// a nil *Catalog both behave as an empty catalog.
type Catalog struct {
	tools []Tool
}

// New validates tools and returns a Catalog owning a private copy of them.
// Entries without a tool name, or commands without a name or template, are
// dropped. Zero ids are assigned in document order after every explicit id
// has been reserved.
func New(tools []Tool) (*Catalog, error) {
	kept := make([]Tool, 0, len(tools))
	toolIDs := make(map[int64]bool)
	cmdIDs := make(map[int64]bool)

	for _, t := range tools {
		t.Name = strings.TrimSpace(t.Name)
		if t.Name == "" {
			continue
		}
		t.Description = strings.TrimSpace(t.Description)
		if t.ID != 0 {
			if toolIDs[t.ID] {
				return nil, fmt.Errorf("tool %q: %w %d", t.Name, ErrDuplicateID, t.ID)
			}
			toolIDs[t.ID] = true
		}

		cmds := make([]Command, 0, len(t.Commands))
		for _, c := range t.Commands {
			c.Name = strings.TrimSpace(c.Name)
			c.Template = strings.TrimSpace(c.Template)
			if c.Name == "" || c.Template == "" {
				continue
			}
			c.Description = strings.TrimSpace(c.Description)
			c.Category = strings.TrimSpace(c.Category)
			c.Tags = c.Tags.normalized()
			if c.ID != 0 {
				if cmdIDs[c.ID] {
					return nil, fmt.Errorf("command %q in tool %q: %w %d", c.Name, t.Name, ErrDuplicateID, c.ID)
				}
				cmdIDs[c.ID] = true
			}
			cmds = append(cmds, c)
		}
		t.Commands = cmds
		kept = append(kept, t)
	}

	nextTool := nextFree(toolIDs)
	nextCmd := nextFree(cmdIDs)
	for i := range kept {
		if kept[i].ID == 0 {
			kept[i].ID = nextTool()
		}
		for j := range kept[i].Commands {
			if kept[i].Commands[j].ID == 0 {
				kept[i].Commands[j].ID = nextCmd()
			}
		}
	}

	return &Catalog{tools: kept}, nil
}

// nextFree returns a generator of ascending ids that skips the taken ones.
func nextFree(taken map[int64]bool) func() int64 {
	var n int64
	return func() int64 {
		for {
			n++
			if !taken[n] {
				taken[n] = true
				return n
			}
		}
	}
}

// Tools returns the tools in catalog order. The slice is a copy; commands are
// shared and must be treated as read-only.
func (c *Catalog) Tools() []Tool {
	if c == nil {
		return nil
	}
	out := make([]Tool, len(c.tools))
	copy(out, c.tools)
	return out
}

// Len reports the number of tools.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.tools)
}

// CommandCount reports the number of commands across all tools.
func (c *Catalog) CommandCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, t := range c.tools {
		n += len(t.Commands)
	}
	return n
}

// First returns the first tool in catalog order.
func (c *Catalog) First() (Tool, bool) {
	if c.Len() == 0 {
		return Tool{}, false
	}
	return c.tools[0], true
}

// ToolByID looks up a tool.
func (c *Catalog) ToolByID(id int64) (Tool, bool) {
	if c == nil || id == 0 {
		return Tool{}, false
	}
	for _, t := range c.tools {
		if t.ID == id {
			return t, true
		}
	}
	return Tool{}, false
}

// CommandByID scans every tool for the command. Ids are unique across the
// whole catalog, not per tool.
func (c *Catalog) CommandByID(id int64) (CommandRef, bool) {
	if c == nil || id == 0 {
		return CommandRef{}, false
	}
	for _, t := range c.tools {
		for _, cmd := range t.Commands {
			if cmd.ID == id {
				return CommandRef{Command: cmd, ToolID: t.ID, ToolName: t.Name}, true
			}
		}
	}
	return CommandRef{}, false
}

// ToolByName finds a tool by case-insensitive exact name.
func (c *Catalog) ToolByName(name string) (Tool, bool) {
	name = strings.TrimSpace(name)
	if c == nil || name == "" {
		return Tool{}, false
	}
	for _, t := range c.tools {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Tool{}, false
}

// CommandByName finds a command by case-insensitive exact name. A name of the
// form "tool/command" restricts the search to that tool. Without a tool
// qualifier the first match in catalog order wins.
func (c *Catalog) CommandByName(name string) (CommandRef, bool) {
	name = strings.TrimSpace(name)
	if c == nil || name == "" {
		return CommandRef{}, false
	}
	toolName := ""
	if i := strings.Index(name, "/"); i > 0 {
		if t, ok := c.ToolByName(name[:i]); ok {
			toolName, name = t.Name, strings.TrimSpace(name[i+1:])
		}
	}
	for _, t := range c.tools {
		if toolName != "" && !strings.EqualFold(t.Name, toolName) {
			continue
		}
		for _, cmd := range t.Commands {
			if strings.EqualFold(cmd.Name, name) {
				return CommandRef{Command: cmd, ToolID: t.ID, ToolName: t.Name}, true
			}
		}
	}
	return CommandRef{}, false
}

// Categories returns the distinct non-empty command categories, sorted.
func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, t := range c.tools {
		for _, cmd := range t.Commands {
			if cmd.Category == "" || seen[cmd.Category] {
				continue
			}
			seen[cmd.Category] = true
			out = append(out, cmd.Category)
		}
	}
	sort.Strings(out)
	return out
}
