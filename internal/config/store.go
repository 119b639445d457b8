package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. ZXUI_CATALOG_PATH.
const EnvPrefix = "ZXUI"

// Path returns the config file location: $ZXUI_CONFIG if set, otherwise
// config.toml under the user config directory.
func Path() (string, error) {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not find config directory: %w", err)
	}
	return filepath.Join(dir, "zxui", "config.toml"), nil
}

// Load reads config from Path and the environment. A missing file yields the
// defaults.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFile(path)
}

// LoadFile reads config from path and the environment.
func LoadFile(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg.Normalize(), nil
}

// Save writes cfg to Path.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes cfg as TOML to path, creating the directory if needed.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg = cfg.Normalize()
	v := viper.New()
	v.SetConfigType("toml")
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("ui.page_size", cfg.UI.PageSize)
	v.Set("ui.copy_to_clipboard", cfg.UI.CopyToClipboard)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func newViper() *viper.Viper {
	d := Default()
	v := viper.New()
	v.SetDefault("catalog.path", d.Catalog.Path)
	v.SetDefault("ui.page_size", d.UI.PageSize)
	v.SetDefault("ui.copy_to_clipboard", d.UI.CopyToClipboard)
	v.SetDefault("log.file", d.Log.File)

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}
