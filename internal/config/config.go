// Package config loads the optional pkgswitch config file. Every field has
// a default, so a missing file is simply the default configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/blackwell-systems/pkgswitch/internal/paths"
)

// Config holds the user-tunable locations and installer choice.
type Config struct {
	// RegistryPath is where the package registry document lives.
	RegistryPath string `yaml:"registry_path"`
	// HistoryPath is the history database location.
	HistoryPath string `yaml:"history_path"`
	// UserRoot and SystemRoot are the scope roots versions install under.
	UserRoot   string `yaml:"user_root"`
	SystemRoot string `yaml:"system_root"`
	// Installer forces a specific backend instead of host probing.
	Installer string `yaml:"installer"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		RegistryPath: paths.DefaultRegistryPath(),
		HistoryPath:  paths.DefaultHistoryPath(),
		UserRoot:     paths.DefaultUserRoot(),
		SystemRoot:   paths.DefaultSystemRoot(),
	}
}

// Load reads the config file at path, filling unset fields with defaults.
// A missing file yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if file.RegistryPath != "" {
		cfg.RegistryPath = file.RegistryPath
	}
	if file.HistoryPath != "" {
		cfg.HistoryPath = file.HistoryPath
	}
	if file.UserRoot != "" {
		cfg.UserRoot = file.UserRoot
	}
	if file.SystemRoot != "" {
		cfg.SystemRoot = file.SystemRoot
	}
	if file.Installer != "" {
		cfg.Installer = file.Installer
	}
	return cfg, nil
}
