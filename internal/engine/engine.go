// Package engine implements the version-lifecycle operations over the
// registry: install registration, removal with active reassignment,
// updates, switching, listing, and search aggregation. It owns all
// registry mutation; rendering stays in the app layer.
package engine

import (
	"errors"
	"time"

	"github.com/blackwell-systems/pkgswitch/internal/history"
	"github.com/blackwell-systems/pkgswitch/internal/installer"
	"github.com/blackwell-systems/pkgswitch/internal/paths"
	"github.com/blackwell-systems/pkgswitch/internal/registry"
)

var (
	// ErrPackageNotFound indicates the named package is not in the registry.
	ErrPackageNotFound = errors.New("package not found")
	// ErrVersionNotFound indicates the package exists but the version-label
	// does not.
	ErrVersionNotFound = errors.New("version not found")
	// ErrEmptyName indicates a package name was required but empty.
	ErrEmptyName = errors.New("package name must not be empty")
)

// Engine runs lifecycle operations against one registry store. Every
// mutating operation is a single load-mutate-save under the store's lock.
type Engine struct {
	reg  *registry.Store
	hist *history.Store

	detect    func() (installer.Installer, error)
	byName    func(string) (installer.Installer, error)
	available func() []installer.Installer

	userRoot   string
	systemRoot string
	now        func() time.Time
}

// Options adjusts an Engine's collaborators. Zero values fall back to the
// host backends and default scope roots; History may stay nil to disable
// the operation log.
type Options struct {
	History    *history.Store
	Detect     func() (installer.Installer, error)
	ByName     func(string) (installer.Installer, error)
	Available  func() []installer.Installer
	UserRoot   string
	SystemRoot string
	Now        func() time.Time
}

// New creates an Engine over the given registry store.
func New(reg *registry.Store, opts Options) *Engine {
	e := &Engine{
		reg:        reg,
		hist:       opts.History,
		detect:     opts.Detect,
		byName:     opts.ByName,
		available:  opts.Available,
		userRoot:   opts.UserRoot,
		systemRoot: opts.SystemRoot,
		now:        opts.Now,
	}
	if e.detect == nil {
		e.detect = installer.Detect
	}
	if e.byName == nil {
		e.byName = installer.ByName
	}
	if e.available == nil {
		e.available = installer.Available
	}
	if e.userRoot == "" {
		e.userRoot = paths.DefaultUserRoot()
	}
	if e.systemRoot == "" {
		e.systemRoot = paths.DefaultSystemRoot()
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// record appends to the history log when one is configured. The log is
// informational; failures never fail the operation that triggered them.
func (e *Engine) record(op, pkg, version, detail string) {
	if e.hist == nil {
		return
	}
	_ = e.hist.Record(op, pkg, version, detail)
}
