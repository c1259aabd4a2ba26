package engine

import (
	"fmt"

	"github.com/blackwell-systems/pkgswitch/internal/history"
	"github.com/blackwell-systems/pkgswitch/internal/registry"
)

// UpdateOutcome is the result of updating one package.
type UpdateOutcome struct {
	Package string
	Version string
	// Skipped means the package had no active version or no recorded
	// backend, so there was nothing to route the update through.
	Skipped bool
	Err     error
}

// UpdateOne updates the named package through the backend recorded for its
// active version. A package with no active version or no recorded backend
// is a no-op, not an error. Backend failure is fatal here, unlike the
// batch mode.
func (e *Engine) UpdateOne(name string) (*UpdateOutcome, error) {
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

	out := e.updatePackage(pkg)
	if out.Err != nil {
		return nil, out.Err
	}

	if err := e.reg.Save(reg); err != nil {
		return nil, err
	}
	if !out.Skipped {
		e.record(history.OpUpdate, name, out.Version, "")
	}
	return out, nil
}

// UpdateAll updates every package that has an active version and a
// recorded backend. Failures are isolated per package: one backend error
// is reported in its outcome while the rest of the batch proceeds. The
// registry is persisted once after the whole batch.
func (e *Engine) UpdateAll() ([]UpdateOutcome, error) {
	release, err := e.reg.Lock()
	if err != nil {
		return nil, err
	}
	defer release()

	reg, err := e.reg.Load()
	if err != nil {
		return nil, err
	}

	var outcomes []UpdateOutcome
	for _, name := range reg.SortedNames() {
		out := e.updatePackage(reg[name])
		if out.Skipped {
			continue
		}
		outcomes = append(outcomes, *out)
		if out.Err == nil {
			e.record(history.OpUpdate, name, out.Version, "")
		}
	}

	if err := e.reg.Save(reg); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// updatePackage routes one package's update through its recorded backend.
func (e *Engine) updatePackage(pkg *registry.Package) *UpdateOutcome {
	out := &UpdateOutcome{Package: pkg.Name}

	if pkg.ActiveVersion == "" {
		out.Skipped = true
		return out
	}
	pv, ok := pkg.Versions[pkg.ActiveVersion]
	if !ok || pv.PackageManager == "" {
		out.Skipped = true
		return out
	}
	out.Version = pkg.ActiveVersion

	ins, err := e.byName(pv.PackageManager)
	if err != nil {
		out.Err = err
		return out
	}

	if err := ins.Update(pkg.Name, pkg.ActiveVersion, pv.InstallPath, !pkg.System); err != nil {
		out.Err = fmt.Errorf("installer %s: %w", ins.Name(), err)
	}
	return out
}
