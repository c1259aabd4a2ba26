// Package paths centralizes the default on-disk locations pkgswitch uses:
// the registry document, the history database, the optional config file,
// and the per-scope roots new versions are installed under.
package paths

import (
	"os"
	"path/filepath"
)

// DefaultDataDir returns the per-user data directory, honoring
// XDG_DATA_HOME when set.
func DefaultDataDir() string {
	if x := os.Getenv("XDG_DATA_HOME"); x != "" {
		return filepath.Join(x, "pkgswitch")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "pkgswitch")
}

// DefaultConfigDir returns the per-user config directory, honoring
// XDG_CONFIG_HOME when set.
func DefaultConfigDir() string {
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		return filepath.Join(x, "pkgswitch")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pkgswitch")
}

func DefaultRegistryPath() string { return filepath.Join(DefaultDataDir(), "packages.json") }
func DefaultHistoryPath() string  { return filepath.Join(DefaultDataDir(), "history.db") }
func DefaultConfigPath() string   { return filepath.Join(DefaultConfigDir(), "config.yaml") }

// DefaultUserRoot is where user-scope package versions are installed,
// one directory per name/version pair.
func DefaultUserRoot() string { return filepath.Join(DefaultDataDir(), "packages") }

// DefaultSystemRoot is the machine-wide counterpart of DefaultUserRoot.
func DefaultSystemRoot() string { return filepath.Join("/opt", "pkgswitch", "packages") }
