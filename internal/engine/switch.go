package engine

import (
	"fmt"

	"github.com/blackwell-systems/pkgswitch/internal/history"
)

// SwitchResult reports an active-version change.
type SwitchResult struct {
	Package  string
	Previous string
	Version  string
}

// Switch makes version the active one for name. The target must already be
// an installed version; on any failure the previous active version stays
// in place. This is the only operation that changes ActiveVersion without
// touching the version set.
func (e *Engine) Switch(name, version string) (*SwitchResult, error) {
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
	if !pkg.HasVersion(version) {
		return nil, fmt.Errorf("%w: %s %s", ErrVersionNotFound, name, version)
	}

	previous := pkg.ActiveVersion
	pkg.ActiveVersion = version

	if err := e.reg.Save(reg); err != nil {
		return nil, err
	}

	e.record(history.OpSwitch, name, version, "from "+previous)

	return &SwitchResult{Package: name, Previous: previous, Version: version}, nil
}
