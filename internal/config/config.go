// Package config loads display-option defaults from the user config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the settings a user may persist instead of passing flags.
// Explicit flags always win over these.
type Config struct {
	ShowHidden bool   `yaml:"show_hidden"` // List dotfiles
	ShowIcons  bool   `yaml:"icons"`       // Prefix entries with type icons
	Accent     string `yaml:"color"`       // Accent color name
	Debug      bool   `yaml:"debug"`       // Enable the debug log file
}

// Load reads configuration from the default location
// (~/.config/seldir/config.yaml).
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return LoadFile(filepath.Join(home, ".config", "seldir", "config.yaml"))
}

// LoadFile loads configuration from a specific file path. A missing file
// yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if cfg.Accent == "" {
		cfg.Accent = defaultConfig().Accent
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Accent: "red",
	}
}
