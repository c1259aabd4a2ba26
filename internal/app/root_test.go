package app

import "testing"

// TestCommandsRegistered verifies every lifecycle command is attached to
// the root.
func TestCommandsRegistered(t *testing.T) {
	want := []string{"install", "remove", "update", "list", "search", "switch", "history", "watch"}

	have := map[string]bool{}
	for _, cmd := range RootCmd.Commands() {
		have[cmd.Name()] = true
	}

	for _, name := range want {
		if !have[name] {
			t.Errorf("command %q not registered on root", name)
		}
	}
}

// TestGlobalFlags verifies the persistent overrides exist.
func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"config", "registry"} {
		if RootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q not defined", name)
		}
	}
}

// TestInstallFlags verifies install exposes version and scope flags.
func TestInstallFlags(t *testing.T) {
	cmd, _, err := RootCmd.Find([]string{"install"})
	if err != nil {
		t.Fatalf("Find(install) failed: %v", err)
	}
	for _, name := range []string{"version", "user"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("install flag %q not defined", name)
		}
	}
}
