package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "packages.json"))
}

func sampleRegistry() Registry {
	return Registry{
		"node": {
			Name: "node",
			Versions: map[string]*PackageVersion{
				"20.11.1": {
					InstallPath:    "/opt/pkgswitch/packages/node/20.11.1",
					InstallDate:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
					BinPaths:       []string{"/opt/pkgswitch/packages/node/20.11.1/bin/node"},
					PackageManager: "apt",
				},
				"latest": {
					InstallPath:    "/opt/pkgswitch/packages/node/latest",
					InstallDate:    time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
					BinPaths:       []string{"/opt/pkgswitch/packages/node/latest/bin/node"},
					PackageManager: "apt",
				},
			},
			ActiveVersion: "latest",
			System:        true,
		},
	}
}

// TestLoad_MissingFile_ReturnsEmpty verifies a registry that has never been
// saved loads as empty rather than failing.
func TestLoad_MissingFile_ReturnsEmpty(t *testing.T) {
	s := tempStore(t)

	reg, err := s.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(reg) != 0 {
		t.Errorf("Load() on missing file = %d packages; want 0", len(reg))
	}
}

// TestSaveLoad_RoundTrip verifies a saved registry loads back equal.
func TestSaveLoad_RoundTrip(t *testing.T) {
	s := tempStore(t)
	want := sampleRegistry()

	if err := s.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("Load() = %d packages; want %d", len(got), len(want))
	}
	pkg := got["node"]
	if pkg == nil {
		t.Fatal("Load() lost package node")
	}
	if pkg.ActiveVersion != "latest" || !pkg.System || pkg.Name != "node" {
		t.Errorf("Load() package = %+v; fields do not match saved values", pkg)
	}
	if len(pkg.Versions) != 2 {
		t.Fatalf("Load() = %d versions; want 2", len(pkg.Versions))
	}
	pv := pkg.Versions["20.11.1"]
	if pv == nil {
		t.Fatal("Load() lost version 20.11.1")
	}
	if pv.PackageManager != "apt" || pv.InstallPath != "/opt/pkgswitch/packages/node/20.11.1" {
		t.Errorf("Load() version = %+v; fields do not match saved values", pv)
	}
	if !pv.InstallDate.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("Load() InstallDate = %v; want 2026-03-01T12:00:00Z", pv.InstallDate)
	}
	if len(pv.BinPaths) != 1 || pv.BinPaths[0] != "/opt/pkgswitch/packages/node/20.11.1/bin/node" {
		t.Errorf("Load() BinPaths = %v; want the saved path", pv.BinPaths)
	}
}

// TestLoad_Corrupt_ReturnsErrCorrupt verifies an unparseable document is
// surfaced as ErrCorrupt instead of being silently replaced.
func TestLoad_Corrupt_ReturnsErrCorrupt(t *testing.T) {
	s := tempStore(t)
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := s.Load()
	if err == nil {
		t.Fatal("Load() on corrupt file should fail")
	}
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("Load() error = %v; want errors.Is(err, ErrCorrupt)", err)
	}
}

// TestSave_CreatesDirectory verifies Save works when the data directory
// does not exist yet.
func TestSave_CreatesDirectory(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "deep", "nested", "packages.json"))

	if err := s.Save(sampleRegistry()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if _, err := os.Stat(s.Path()); err != nil {
		t.Errorf("Save() did not create the document: %v", err)
	}
}

// TestSave_ReplacesWholeDocument verifies Save is whole-file replace, not
// a merge.
func TestSave_ReplacesWholeDocument(t *testing.T) {
	s := tempStore(t)

	reg := sampleRegistry()
	reg["jq"] = &Package{
		Name:          "jq",
		Versions:      map[string]*PackageVersion{"latest": {InstallPath: "/x", InstallDate: time.Now().UTC()}},
		ActiveVersion: "latest",
	}
	if err := s.Save(reg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	delete(reg, "jq")
	if err := s.Save(reg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if _, ok := got["jq"]; ok {
		t.Error("Save() kept a package deleted from the saved registry")
	}
}

// TestLock_ReleaseAllowsRelock verifies the lock can be retaken after its
// release func runs.
func TestLock_ReleaseAllowsRelock(t *testing.T) {
	s := tempStore(t)

	release, err := s.Lock()
	if err != nil {
		t.Fatalf("Lock() failed: %v", err)
	}
	release()

	release, err = s.Lock()
	if err != nil {
		t.Fatalf("Lock() after release failed: %v", err)
	}
	release()
}
