package registry

import (
	"reflect"
	"testing"
)

// TestSortedVersions verifies version-labels come back in lexicographic
// order regardless of insertion order.
func TestSortedVersions(t *testing.T) {
	pkg := &Package{
		Name: "node",
		Versions: map[string]*PackageVersion{
			"latest":  {},
			"18.19.0": {},
			"20.11.1": {},
		},
	}

	got := pkg.SortedVersions()
	want := []string{"18.19.0", "20.11.1", "latest"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedVersions() = %v; want %v", got, want)
	}
}

// TestSortedNames verifies package names come back sorted.
func TestSortedNames(t *testing.T) {
	reg := Registry{
		"zsh":  &Package{Name: "zsh"},
		"bat":  &Package{Name: "bat"},
		"node": &Package{Name: "node"},
	}

	got := reg.SortedNames()
	want := []string{"bat", "node", "zsh"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedNames() = %v; want %v", got, want)
	}
}

// TestHasVersion covers both the present and absent cases.
func TestHasVersion(t *testing.T) {
	pkg := &Package{
		Name:     "jq",
		Versions: map[string]*PackageVersion{"1.7": {}},
	}

	if !pkg.HasVersion("1.7") {
		t.Error("HasVersion(1.7) = false; want true")
	}
	if pkg.HasVersion("9.9") {
		t.Error("HasVersion(9.9) = true; want false")
	}
}
