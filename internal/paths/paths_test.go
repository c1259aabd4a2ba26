package paths

import (
	"path/filepath"
	"testing"
)

// TestXDGOverrides verifies the XDG env vars take precedence over the
// home-relative defaults.
func TestXDGOverrides(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")

	if got, want := DefaultRegistryPath(), filepath.Join("/tmp/xdg-data", "pkgswitch", "packages.json"); got != want {
		t.Errorf("DefaultRegistryPath() = %q; want %q", got, want)
	}
	if got, want := DefaultConfigPath(), filepath.Join("/tmp/xdg-config", "pkgswitch", "config.yaml"); got != want {
		t.Errorf("DefaultConfigPath() = %q; want %q", got, want)
	}
	if got, want := DefaultUserRoot(), filepath.Join("/tmp/xdg-data", "pkgswitch", "packages"); got != want {
		t.Errorf("DefaultUserRoot() = %q; want %q", got, want)
	}
}

// TestHomeFallback verifies the defaults land under the home directory
// when the XDG vars are unset.
func TestHomeFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/tmp/fakehome")

	want := filepath.Join("/tmp/fakehome", ".local", "share", "pkgswitch", "history.db")
	if got := DefaultHistoryPath(); got != want {
		t.Errorf("DefaultHistoryPath() = %q; want %q", got, want)
	}
}
