package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Backend constants
const (
	BackendMemory = "memory" // Slice-backed store
	BackendSQLite = "sqlite" // In-memory SQLite store
)

// CurrentVersion is written into new config files.
const CurrentVersion = "1"

// Config represents the flat carline configuration
type Config struct {
	Version   string   `json:"version"`
	Lines     []string `json:"lines"`                // Line ids, one LineComponent each
	Listen    string   `json:"listen,omitempty"`     // HTTP address for serve
	Backend   string   `json:"backend,omitempty"`    // "memory" or "sqlite"
	LogLevel  string   `json:"log_level,omitempty"`  // zerolog level name
	LogFormat string   `json:"log_format,omitempty"` // "auto", "console" or "json"
	Markup    string   `json:"markup,omitempty"`     // Page file replacing the embedded one
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:   CurrentVersion,
		Lines:     []string{"line1", "line2"},
		Listen:    "localhost:8080",
		Backend:   BackendMemory,
		LogLevel:  "info",
		LogFormat: "auto",
	}
}

// Path returns the config file location inside dir.
func Path(dir string) string {
	return filepath.Join(dir, ".carline", "config.json")
}

// LoadConfig reads .carline/config.json from the specified directory.
// Unset fields take their default values.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	cfg.Lines = nil
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Lines) == 0 {
		cfg.Lines = Default().Lines
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config in dir, falling back to Default when the
// file does not exist.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	carlineDir := filepath.Join(dir, ".carline")
	if err := os.MkdirAll(carlineDir, 0755); err != nil {
		return fmt.Errorf("failed to create .carline dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, BackendMemory, BackendSQLite)
	}

	seen := make(map[string]bool, len(c.Lines))
	for _, line := range c.Lines {
		if line == "" {
			return fmt.Errorf("line ids must not be empty")
		}
		if seen[line] {
			return fmt.Errorf("duplicate line id %q", line)
		}
		seen[line] = true
	}
	return nil
}
