// Package config handles the Taskly configuration file, including the
// persisted theme preference.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Theme is the color scheme preference
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Valid reports whether the theme is a known value.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Config represents the full Taskly configuration
type Config struct {
	DataDir string `json:"dataDir"`
	Theme   Theme  `json:"theme"`
	LogFile string `json:"logFile"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".taskly")

	return &Config{
		DataDir: dataDir,
		Theme:   ThemeDark,
		LogFile: filepath.Join(dataDir, "taskly.log"),
	}
}

// path returns the config file location inside dataDir's parent layout.
func path(dataDir string) string {
	return filepath.Join(dataDir, "config.json")
}

// Load reads the configuration from the default data directory,
// falling back to defaults when no file exists.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfig().DataDir)
}

// LoadFrom reads the configuration stored under dataDir. A missing
// file yields defaults; a malformed file is an error.
func LoadFrom(dataDir string) (*Config, error) {
	data, err := os.ReadFile(path(dataDir))
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			cfg.DataDir = dataDir
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.DataDir = dataDir
	return MergeWithDefaults(&cfg), nil
}

// Save writes the configuration to its data directory.
func Save(cfg *Config) error {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path(cfg.DataDir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.DataDir == "" {
		cfg.DataDir = defaults.DataDir
	}
	if !cfg.Theme.Valid() {
		cfg.Theme = defaults.Theme
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, "taskly.log")
	}

	return cfg
}
