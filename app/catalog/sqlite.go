package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	_ "modernc.org/sqlite"
)

const (
	toolsQuery = `SELECT id, name, description FROM zxui_tool ORDER BY name`

	commandsQuery = `SELECT id, tool_id, name, description, template, category, tags
FROM zxui_commandtemplate
ORDER BY tool_id, name`
)

// LoadSQLite reads the catalog from the web app's SQLite database. The
// database is opened read-only; tools come back ordered by name and each
// tool's commands by name.
func LoadSQLite(ctx context.Context, path string) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	dsn := "file:" + (&url.URL{Path: path}).EscapedPath() + "?mode=ro"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	tools, index, err := queryTools(ctx, db)
	if err != nil {
		return nil, err
	}
	if err := queryCommands(ctx, db, tools, index); err != nil {
		return nil, err
	}
	return New(tools)
}

func queryTools(ctx context.Context, db *sql.DB) ([]Tool, map[int64]int, error) {
	rows, err := db.QueryContext(ctx, toolsQuery)
	if err != nil {
		return nil, nil, fmt.Errorf("query tools: %w", err)
	}
	defer rows.Close()

	var tools []Tool
	index := make(map[int64]int)
	for rows.Next() {
		var t Tool
		var desc sql.NullString
		if err := rows.Scan(&t.ID, &t.Name, &desc); err != nil {
			return nil, nil, fmt.Errorf("scan tool: %w", err)
		}
		t.Description = desc.String
		index[t.ID] = len(tools)
		tools = append(tools, t)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate tools: %w", err)
	}
	return tools, index, nil
}

func queryCommands(ctx context.Context, db *sql.DB, tools []Tool, index map[int64]int) error {
	rows, err := db.QueryContext(ctx, commandsQuery)
	if err != nil {
		return fmt.Errorf("query commands: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c                    Command
			toolID               int64
			desc, category, tags sql.NullString
		)
		if err := rows.Scan(&c.ID, &toolID, &c.Name, &desc, &c.Template, &category, &tags); err != nil {
			return fmt.Errorf("scan command: %w", err)
		}
		i, ok := index[toolID]
		if !ok {
			continue
		}
		c.Description = desc.String
		c.Category = category.String
		if tags.Valid && tags.String != "" {
			if err := json.Unmarshal([]byte(tags.String), &c.Tags); err != nil {
				return fmt.Errorf("command %d tags: %w", c.ID, err)
			}
		}
		tools[i].Commands = append(tools[i].Commands, c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate commands: %w", err)
	}
	return nil
}
