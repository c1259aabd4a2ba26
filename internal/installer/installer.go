// Package installer abstracts the host package managers pkgswitch delegates
// real install/update/search work to. The lifecycle engine only ever sees
// the Installer interface; which backend serves it is decided by probing
// the host at startup.
package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"sort"
)

// ErrNoInstaller indicates no supported package manager was found on the
// host.
var ErrNoInstaller = errors.New("no supported package manager available")

// SearchResult is one catalog hit reported by a backend.
type SearchResult struct {
	Name        string
	Description string
}

// Installer is one host package manager backend.
type Installer interface {
	// Name identifies the backend; it is recorded per installed version so
	// updates route back to the same backend.
	Name() string

	// Install fetches pkg (optionally a specific version) into targetDir
	// and returns the executable paths it produced. userScope selects a
	// per-user install over a machine-wide one where the backend
	// distinguishes the two.
	Install(pkg, version, targetDir string, userScope bool) ([]string, error)

	// Update brings the version rooted at installDir up to date.
	Update(pkg, version, installDir string, userScope bool) error

	// Search queries the backend's catalog.
	Search(query string) ([]SearchResult, error)
}

// backends is the probe order: brew first since on hosts that have it the
// user chose it deliberately, then the distro managers.
var backends = []Installer{
	&Brew{},
	&Apt{},
	&Dnf{},
	&Pacman{},
}

// executable maps backend name to the binary whose presence marks the
// backend usable.
var executable = map[string]string{
	"brew":   "brew",
	"apt":    "apt-get",
	"dnf":    "dnf",
	"pacman": "pacman",
}

func available(ins Installer) bool {
	_, err := exec.LookPath(executable[ins.Name()])
	return err == nil
}

// Detect returns the preferred backend for this host.
func Detect() (Installer, error) {
	for _, ins := range backends {
		if available(ins) {
			return ins, nil
		}
	}
	return nil, ErrNoInstaller
}

// ByName returns the named backend if it exists and is usable on this
// host. It is how updates reach the backend recorded at install time.
func ByName(name string) (Installer, error) {
	for _, ins := range backends {
		if ins.Name() != name {
			continue
		}
		if !available(ins) {
			return nil, fmt.Errorf("%w: %s is not installed on this host", ErrNoInstaller, name)
		}
		return ins, nil
	}
	return nil, fmt.Errorf("%w: unknown backend %q", ErrNoInstaller, name)
}

// Available returns every usable backend, in probe order.
func Available() []Installer {
	var out []Installer
	for _, ins := range backends {
		if available(ins) {
			out = append(out, ins)
		}
	}
	return out
}

// run executes a backend command and folds its combined output into the
// error on failure.
func run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%s %v failed: %w (output: %s)", name, args, err, string(output))
	}
	return output, nil
}

// runIn is run with a working directory.
func runIn(dir, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%s %v failed: %w (output: %s)", name, args, err, string(output))
	}
	return output, nil
}

// listExecutables walks root for regular files with an exec bit that live
// in a directory named "bin" or "sbin", sorted for deterministic BinPaths.
func listExecutables(root string) ([]string, error) {
	var bins []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		parent := filepath.Base(filepath.Dir(path))
		if parent != "bin" && parent != "sbin" {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Mode()&0o111 != 0 {
			bins = append(bins, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s for executables: %w", root, err)
	}
	sort.Strings(bins)
	return bins, nil
}

// findArtifacts returns downloaded archive files in dir matching pattern.
func findArtifacts(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no %s artifact found in %s", pattern, dir)
	}
	sort.Strings(matches)
	return matches, nil
}
