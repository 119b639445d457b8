package catalog

import (
	"encoding/json"
	"fmt"
	"io"
)

type exportCommand struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Template    string   `json:"template"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

type exportTool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Commands    []exportCommand `json:"commands"`
}

type exportDocument struct {
	Tools []exportTool `json:"tools"`
}

// Export writes the catalog in the import/export document shape. Ids are
// omitted so the output can be imported into another catalog.
func Export(w io.Writer, c *Catalog) error {
	doc := exportDocument{Tools: []exportTool{}}
	for _, t := range c.Tools() {
		et := exportTool{Name: t.Name, Description: t.Description, Commands: []exportCommand{}}
		for _, cmd := range t.Commands {
			tags := []string(cmd.Tags)
			if tags == nil {
				tags = []string{}
			}
			et.Commands = append(et.Commands, exportCommand{
				Name:        cmd.Name,
				Description: cmd.Description,
				Template:    cmd.Template,
				Category:    cmd.Category,
				Tags:        tags,
			})
		}
		doc.Tools = append(doc.Tools, et)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}
