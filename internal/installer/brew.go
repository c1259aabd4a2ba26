package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Brew drives Homebrew hosts. Homebrew keeps installed files in its own
// cellar, so the target directory only receives symlinks to the keg's
// executables; the recorded bin paths point at those links.
type Brew struct{}

func (b *Brew) Name() string { return "brew" }

// fullName applies Homebrew's name@version convention for versioned
// formulae, leaving names that already carry an @ alone.
func fullName(pkg, version string) string {
	if version == "" || strings.Contains(pkg, "@") {
		return pkg
	}
	return fmt.Sprintf("%s@%s", pkg, version)
}

func (b *Brew) Install(pkg, version, targetDir string, userScope bool) ([]string, error) {
	formula := fullName(pkg, version)

	if _, err := run("brew", "install", formula); err != nil {
		return nil, err
	}

	output, err := run("brew", "--prefix", formula)
	if err != nil {
		return nil, err
	}
	prefix := strings.TrimSpace(string(output))

	entries, err := os.ReadDir(filepath.Join(prefix, "bin"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // formula ships no executables
		}
		return nil, fmt.Errorf("failed to read %s/bin: %w", prefix, err)
	}

	binDir := filepath.Join(targetDir, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", binDir, err)
	}

	var bins []string
	for _, entry := range entries {
		src := filepath.Join(prefix, "bin", entry.Name())
		dst := filepath.Join(binDir, entry.Name())
		_ = os.Remove(dst)
		if err := os.Symlink(src, dst); err != nil {
			return nil, fmt.Errorf("failed to link %s: %w", dst, err)
		}
		bins = append(bins, dst)
	}
	sort.Strings(bins)
	return bins, nil
}

func (b *Brew) Update(pkg, version, installDir string, userScope bool) error {
	_, err := run("brew", "upgrade", fullName(pkg, version))
	return err
}

func (b *Brew) Search(query string) ([]SearchResult, error) {
	output, err := run("brew", "search", "--desc", query)
	if err != nil {
		return nil, err
	}
	return parseBrewSearch(output), nil
}

// parseBrewSearch parses brew search --desc output: "name: description"
// per formula, with "==>" section headers skipped.
func parseBrewSearch(output []byte) []SearchResult {
	var results []SearchResult
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line == "" || strings.HasPrefix(line, "==>") {
			continue
		}
		name, desc, found := strings.Cut(line, ": ")
		if !found {
			results = append(results, SearchResult{Name: strings.TrimSpace(line)})
			continue
		}
		results = append(results, SearchResult{
			Name:        strings.TrimSpace(name),
			Description: strings.TrimSpace(desc),
		})
	}
	return results
}
