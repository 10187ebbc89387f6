// Package config loads the optional YAML config file. Every setting has a
// default; a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultDrillSize is the number of questions in a quiz drill when the
// config file doesn't say otherwise.
const DefaultDrillSize = 10

// Config holds user settings.
type Config struct {
	// DBPath overrides the progress database location. Lower priority
	// than the --db flag and the LIVEWIRE_DB env var.
	DBPath string `yaml:"dbPath"`

	Filters struct {
		Category   string `yaml:"category"`
		Difficulty string `yaml:"difficulty"`
	} `yaml:"filters"`

	Quiz struct {
		DrillSize int `yaml:"drillSize"`
	} `yaml:"quiz"`
}

// Default returns the zero config with defaults applied.
func Default() Config {
	var cfg Config
	cfg.Quiz.DrillSize = DefaultDrillSize
	return cfg
}

// Load reads YAML config from path. A missing file yields the default
// config and no error; a malformed file yields the default config and the
// parse error so the caller can warn without aborting.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if cfg.Quiz.DrillSize <= 0 {
		cfg.Quiz.DrillSize = DefaultDrillSize
	}
	return cfg, nil
}

// DefaultPath resolves the config file path:
// $XDG_CONFIG_HOME/livewire/config.yaml, falling back to
// ~/.config/livewire/config.yaml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "livewire", "config.yaml"), nil
}
