// Package config loads the CLI configuration file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the scrawl CLI configuration.
type Config struct {
	NotesDir string `yaml:"notes_dir"`
	Editor   string `yaml:"editor,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		NotesDir: filepath.Join(home, ".local", "share", "scrawl"),
		Editor:   "",
		LogLevel: "info",
	}
}

// Path returns the path of the config file.
// Can be overridden for testing.
var Path = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "scrawl", "config.yaml")
	}
	return filepath.Join(home, ".config", "scrawl", "config.yaml")
}

// Load reads the configuration file, returning defaults when it is missing.
func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration file, creating the directory when needed.
func (c *Config) Save() error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.NotesDir == "" {
		return fmt.Errorf("notes_dir cannot be empty")
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be one of: debug, info, warn, error", c.LogLevel)
	}
	return nil
}

// SlogLevel maps the configured log_level onto a slog level.
// Validate has already rejected anything outside the known set; the empty
// string means the default, info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ExpandPaths expands ~ and relative paths to absolute paths.
func (c *Config) ExpandPaths() error {
	expanded, err := expandPath(c.NotesDir)
	if err != nil {
		return fmt.Errorf("failed to expand notes_dir: %w", err)
	}
	c.NotesDir = expanded
	return nil
}

// expandPath expands ~ to the home directory and converts to absolute.
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return home, nil
		}
		path = filepath.Join(home, path[1:])
	}

	return filepath.Abs(path)
}
