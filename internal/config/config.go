// Package config loads contactbook configuration from an optional YAML file
// with environment-variable overrides.
//
// Precedence, lowest to highest: built-in defaults, config file, environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by Load.
const (
	EnvDBPath   = "CONTACTBOOK_DB"
	EnvRegion   = "CONTACTBOOK_REGION"
	EnvBirthday = "CONTACTBOOK_BIRTHDAY_DAYS"
)

// Config holds the runtime settings of the CLI.
type Config struct {
	// StoragePath is the address-book database file.
	StoragePath string `yaml:"storage_path"`

	// DefaultRegion is the phone region applied to numbers entered without
	// a country code (e.g. "UA", "US").
	DefaultRegion string `yaml:"default_region"`

	// BirthdayWindowDays is the default lookahead for the birthdays command.
	BirthdayWindowDays int `yaml:"birthday_window_days"`
}

// Default returns the built-in configuration: the database and user data
// live under ~/.contactbook.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		StoragePath:        filepath.Join(home, ".contactbook", "contacts.db"),
		DefaultRegion:      "UA",
		BirthdayWindowDays: 7,
	}
}

// DefaultPath is the config file location Load consults when none is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".contactbook", "config.yaml")
}

// Load builds the configuration from path (a missing file is fine) and then
// applies environment overrides. An unreadable or malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No config file: defaults plus env are enough.
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.StoragePath = v
	}
	if v := os.Getenv(EnvRegion); v != "" {
		cfg.DefaultRegion = v
	}
	if v := os.Getenv(EnvBirthday); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days >= 0 {
			cfg.BirthdayWindowDays = days
		}
	}
}
