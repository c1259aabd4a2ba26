package registry

import (
	"sort"
	"time"
)

// LatestLabel is the version-label recorded when an install does not name a
// concrete version. It is stored as a literal map key, so a backend that
// ever publishes a real version called "latest" would collide with it.
const LatestLabel = "latest"

// Package is one named piece of software and every version of it that
// pkgswitch has installed.
type Package struct {
	Name          string                     `json:"name"`
	Versions      map[string]*PackageVersion `json:"versions"`
	ActiveVersion string                     `json:"active_version,omitempty"`
	// System records the scope chosen at first install. Later installs of
	// other versions never rewrite it.
	System bool `json:"system"`
}

// PackageVersion describes one installed build of a Package.
type PackageVersion struct {
	InstallPath string    `json:"install_path"`
	InstallDate time.Time `json:"install_date"`
	BinPaths    []string  `json:"bin_paths"`
	// PackageManager names the installer backend that produced this
	// version; updates are routed back through it.
	PackageManager string `json:"package_manager,omitempty"`
}

// Registry maps package name to Package. It is the whole durable state of
// the tool: one document per user data scope.
type Registry map[string]*Package

// HasVersion reports whether label is an installed version of p.
func (p *Package) HasVersion(label string) bool {
	_, ok := p.Versions[label]
	return ok
}

// SortedVersions returns p's version-labels in lexicographic order. Removal
// promotion and list rendering both rely on this order being stable.
func (p *Package) SortedVersions() []string {
	labels := make([]string, 0, len(p.Versions))
	for label := range p.Versions {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// SortedNames returns every package name in lexicographic order.
func (r Registry) SortedNames() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
