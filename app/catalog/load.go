package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Load for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

//go:embed seed.json
var seedJSON []byte

// document accepts both {"tools": [...]} and a bare list of tools.
type document struct {
	Tools []Tool `json:"tools" yaml:"tools"`
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := DecodeJSON(seedJSON)
	if err != nil {
		// seed.json is part of the build; a decode failure is a programming error.
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// DecodeJSON parses a catalog document. Empty input yields an empty catalog.
func DecodeJSON(data []byte) (*Catalog, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return New(nil)
	}
	var tools []Tool
	if data[0] == '[' {
		if err := json.Unmarshal(data, &tools); err != nil {
			return nil, fmt.Errorf("parse catalog json: %w", err)
		}
		return New(tools)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog json: %w", err)
	}
	return New(doc.Tools)
}

// DecodeYAML parses a catalog document written in YAML.
func DecodeYAML(data []byte) (*Catalog, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	if len(root.Content) == 0 {
		return New(nil)
	}
	node := root.Content[0]
	var tools []Tool
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&tools); err != nil {
			return nil, fmt.Errorf("parse catalog yaml: %w", err)
		}
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse catalog yaml: %w", err)
		}
		tools = doc.Tools
	case yaml.ScalarNode:
		if node.Tag != "!!null" {
			return nil, fmt.Errorf("parse catalog yaml: unexpected scalar at line %d", node.Line)
		}
	}
	return New(tools)
}

// Load reads a catalog from path, choosing the decoder from the extension:
// .json, .yaml/.yml, or .db/.sqlite/.sqlite3 for the web app's database.
func Load(ctx context.Context, path string) (*Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(ctx, path)
	case ".json", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".json" {
		return DecodeJSON(data)
	}
	return DecodeYAML(data)
}
