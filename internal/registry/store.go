package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrCorrupt indicates the registry file exists but cannot be parsed.
// Callers must not save over a corrupt registry: doing so would silently
// destroy the user's install history.
var ErrCorrupt = errors.New("registry file is corrupt")

// Store persists a Registry as a single JSON document. Every mutation is a
// whole-file read-modify-write; Lock serializes those spans across
// processes.
type Store struct {
	path string
	lock *flock.Flock
}

// NewStore creates a Store for the registry document at path.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Path returns the registry document's location.
func (s *Store) Path() string {
	return s.path
}

// Lock takes an exclusive advisory lock covering a load-mutate-save span.
// The returned release func must be called on every exit path.
func (s *Store) Lock() (release func(), err error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create registry directory: %w", err)
	}
	if err := s.lock.Lock(); err != nil {
		return nil, fmt.Errorf("failed to lock registry: %w", err)
	}
	return func() { _ = s.lock.Unlock() }, nil
}

// Load reads the registry document. A missing file is an empty registry,
// not an error.
func (s *Store) Load() (Registry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(Registry), nil
		}
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	if reg == nil {
		reg = make(Registry)
	}
	for name, pkg := range reg {
		if pkg.Versions == nil {
			pkg.Versions = make(map[string]*PackageVersion)
		}
		if pkg.Name == "" {
			pkg.Name = name
		}
	}
	return reg, nil
}

// Save replaces the registry document with the serialized form of reg.
// The write goes to a temp file in the same directory and lands via rename
// so readers never observe a partial document.
func (s *Store) Save(reg Registry) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize registry: %w", err)
	}
	data = append(data, '\n')

	f, err := os.CreateTemp(dir, ".packages-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp registry file: %w", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write registry: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to fsync registry: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close registry file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace registry: %w", err)
	}
	return nil
}
