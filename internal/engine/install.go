package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blackwell-systems/pkgswitch/internal/history"
	"github.com/blackwell-systems/pkgswitch/internal/registry"
)

// InstallResult reports what an install registered.
type InstallResult struct {
	Package    string
	Version    string // the version-label recorded, "latest" when unversioned
	Installer  string
	InstallDir string
	BinPaths   []string
	MadeActive bool
}

// Install delegates the real installation to the host backend and records
// the produced version in the registry. A backend failure leaves the
// registry untouched. The new version becomes active only when the package
// had no active version before the call.
func (e *Engine) Install(name, version string, user bool) (*InstallResult, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	release, err := e.reg.Lock()
	if err != nil {
		return nil, err
	}
	defer release()

	reg, err := e.reg.Load()
	if err != nil {
		return nil, err
	}

	ins, err := e.detect()
	if err != nil {
		return nil, err
	}

	label := version
	if label == "" {
		label = registry.LatestLabel
	}

	root := e.systemRoot
	if user {
		root = e.userRoot
	}
	installDir := filepath.Join(root, name, label)
	if err := os.MkdirAll(installDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create install directory %s: %w", installDir, err)
	}

	binPaths, err := ins.Install(name, version, installDir, user)
	if err != nil {
		return nil, fmt.Errorf("installer %s: %w", ins.Name(), err)
	}

	pkg, ok := reg[name]
	if !ok {
		// Scope is fixed here; later installs with a different flag do not
		// rewrite it.
		pkg = &registry.Package{
			Name:     name,
			Versions: make(map[string]*registry.PackageVersion),
			System:   !user,
		}
		reg[name] = pkg
	}

	pkg.Versions[label] = &registry.PackageVersion{
		InstallPath:    installDir,
		InstallDate:    e.now(),
		BinPaths:       binPaths,
		PackageManager: ins.Name(),
	}

	madeActive := false
	if pkg.ActiveVersion == "" {
		pkg.ActiveVersion = label
		madeActive = true
	}

	if err := e.reg.Save(reg); err != nil {
		return nil, err
	}

	e.record(history.OpInstall, name, label, "via "+ins.Name())

	return &InstallResult{
		Package:    name,
		Version:    label,
		Installer:  ins.Name(),
		InstallDir: installDir,
		BinPaths:   binPaths,
		MadeActive: madeActive,
	}, nil
}
