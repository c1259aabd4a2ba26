package engine

import (
	"fmt"
	"os"
	"strings"

	"github.com/blackwell-systems/pkgswitch/internal/history"
)

// RemoveResult reports what a removal deleted and how the active version
// was reassigned.
type RemoveResult struct {
	Package         string
	RemovedVersions []string
	// Promoted holds the version-label made active after the active version
	// was removed; empty when no reassignment happened.
	Promoted       string
	PackageDeleted bool
}

// Remove deletes one version of a package, or the whole package when
// version is empty. The on-disk install tree and the registry entry go
// together. Removing the active version promotes the lexicographically
// smallest remaining version; removing the last version deletes the
// package entry.
func (e *Engine) Remove(name, version string) (*RemoveResult, error) {
	release, err := e.reg.Lock()
	if err != nil {
		return nil, err
	}
	defer release()

	reg, err := e.reg.Load()
	if err != nil {
		return nil, err
	}

	pkg, ok := reg[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, name)
	}

	res := &RemoveResult{Package: name}

	if version != "" {
		pv, ok := pkg.Versions[version]
		if !ok {
			return nil, fmt.Errorf("%w: %s %s", ErrVersionNotFound, name, version)
		}

		if err := os.RemoveAll(pv.InstallPath); err != nil {
			return nil, fmt.Errorf("failed to remove %s: %w", pv.InstallPath, err)
		}
		delete(pkg.Versions, version)
		res.RemovedVersions = []string{version}

		if pkg.ActiveVersion == version {
			pkg.ActiveVersion = ""
			if remaining := pkg.SortedVersions(); len(remaining) > 0 {
				pkg.ActiveVersion = remaining[0]
				res.Promoted = remaining[0]
			}
		}

		if len(pkg.Versions) == 0 {
			delete(reg, name)
			res.PackageDeleted = true
		}
	} else {
		for _, label := range pkg.SortedVersions() {
			// RemoveAll tolerates an already-missing tree.
			if err := os.RemoveAll(pkg.Versions[label].InstallPath); err != nil {
				return nil, fmt.Errorf("failed to remove %s: %w", pkg.Versions[label].InstallPath, err)
			}
			res.RemovedVersions = append(res.RemovedVersions, label)
		}
		delete(reg, name)
		res.PackageDeleted = true
	}

	if err := e.reg.Save(reg); err != nil {
		return nil, err
	}

	e.record(history.OpRemove, name, strings.Join(res.RemovedVersions, ","), "")

	return res, nil
}
