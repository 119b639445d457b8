package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Page size bounds for the composer command list.
const (
	DefaultPageSize = 8
	MinPageSize     = 3
	MaxPageSize     = 30
)

// Config represents user settings stored on disk.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
}

// CatalogConfig selects the catalog source. An empty Path means the
// embedded catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds TUI preferences.
type UIConfig struct {
	PageSize        int  `mapstructure:"page_size"`
	CopyToClipboard bool `mapstructure:"copy_to_clipboard"`
}

// LogConfig holds logging settings. An empty File keeps the TUI silent.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		UI: UIConfig{
			PageSize:        DefaultPageSize,
			CopyToClipboard: true,
		},
	}
}

// Normalize clamps out-of-range values.
func (c Config) Normalize() Config {
	if c.UI.PageSize < MinPageSize {
		c.UI.PageSize = MinPageSize
	}
	if c.UI.PageSize > MaxPageSize {
		c.UI.PageSize = MaxPageSize
	}
	return c
}

// ErrUnknownKey is returned by Get and Set for keys outside Keys.
var ErrUnknownKey = errors.New("unknown config key")

// Keys lists the settable keys in file order.
func Keys() []string {
	return []string{"catalog.path", "ui.page_size", "ui.copy_to_clipboard", "log.file"}
}

// Get returns the value of key formatted as it would be typed on the
// command line.
func (c Config) Get(key string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "catalog.path":
		return c.Catalog.Path, nil
	case "ui.page_size":
		return strconv.Itoa(c.UI.PageSize), nil
	case "ui.copy_to_clipboard":
		return strconv.FormatBool(c.UI.CopyToClipboard), nil
	case "log.file":
		return c.Log.File, nil
	}
	return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
}

// Set parses value for key and stores it. Page sizes are clamped by
// Normalize when the config is saved.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "catalog.path":
		c.Catalog.Path = value
	case "ui.page_size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for ui.page_size: %w", value, err)
		}
		c.UI.PageSize = n
	case "ui.copy_to_clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for ui.copy_to_clipboard: %w", value, err)
		}
		c.UI.CopyToClipboard = b
	case "log.file":
		c.Log.File = value
	default:
		return fmt.Errorf("%w %q (valid: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
	return nil
}
