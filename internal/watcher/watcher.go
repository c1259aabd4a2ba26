// Package watcher observes the registry document for changes made by other
// pkgswitch processes. Saves land via rename, so the watch covers the
// registry's directory and filters for the document itself.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/blackwell-systems/pkgswitch/internal/registry"
)

// Change summarizes one observed registry mutation.
type Change struct {
	// Added and Removed are package names that appeared or disappeared.
	Added   []string
	Removed []string
	// Switched are "name version" pairs whose active version changed.
	Switched []string
	// Packages is the package count after the change.
	Packages int
}

// Watcher reloads the registry whenever its document is replaced and emits
// a Change describing the difference from the previous load.
type Watcher struct {
	store   *registry.Store
	fs      *fsnotify.Watcher
	last    registry.Registry
	changes chan Change
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// New creates a Watcher over the given registry store.
func New(store *registry.Store) (*Watcher, error) {
	if store == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	return &Watcher{
		store:   store,
		changes: make(chan Change, 16),
		stopCh:  make(chan struct{}),
	}, nil
}

// Changes delivers observed registry mutations after Start.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start begins watching. The registry is loaded once up front so the first
// emitted Change is relative to the state at startup.
func (w *Watcher) Start() error {
	reg, err := w.store.Load()
	if err != nil {
		return err
	}
	w.last = reg

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(w.store.Path())); err != nil {
		fs.Close()
		return fmt.Errorf("failed to watch registry directory: %w", err)
	}
	w.fs = fs

	w.wg.Add(1)
	go w.run()
	return nil
}

// Stop halts the watcher and closes the change channel.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	w.wg.Wait()
	return w.fs.Close()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer close(w.changes)

	target := filepath.Base(w.store.Path())
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()
		case <-w.fs.Errors:
			// Watch errors are transient on most platforms; keep going.
		case <-w.stopCh:
			return
		}
	}
}

// reload diffs the document against the previous load and emits a Change
// when anything moved.
func (w *Watcher) reload() {
	reg, err := w.store.Load()
	if err != nil {
		// A half-landed or corrupt document; wait for the next event.
		return
	}

	change := diff(w.last, reg)
	w.last = reg

	if len(change.Added) == 0 && len(change.Removed) == 0 && len(change.Switched) == 0 {
		return
	}
	select {
	case w.changes <- change:
	case <-w.stopCh:
	}
}

func diff(old, cur registry.Registry) Change {
	change := Change{Packages: len(cur)}

	for _, name := range cur.SortedNames() {
		prev, ok := old[name]
		if !ok {
			change.Added = append(change.Added, name)
			continue
		}
		if prev.ActiveVersion != cur[name].ActiveVersion {
			change.Switched = append(change.Switched, name+" "+cur[name].ActiveVersion)
		}
	}
	for _, name := range old.SortedNames() {
		if _, ok := cur[name]; !ok {
			change.Removed = append(change.Removed, name)
		}
	}
	return change
}
