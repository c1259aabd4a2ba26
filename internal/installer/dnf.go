package installer

import (
	"fmt"
	"os"
	"strings"
)

// Dnf drives Fedora/RHEL hosts. Downloads go through dnf download and the
// rpm is unpacked into the target directory via rpm2cpio.
type Dnf struct{}

func (d *Dnf) Name() string { return "dnf" }

func (d *Dnf) Install(pkg, version, targetDir string, userScope bool) ([]string, error) {
	spec := pkg
	if version != "" {
		spec = fmt.Sprintf("%s-%s", pkg, version)
	}

	if _, err := run("dnf", "download", "--destdir", targetDir, spec); err != nil {
		return nil, err
	}

	rpms, err := findArtifacts(targetDir, "*.rpm")
	if err != nil {
		return nil, err
	}
	for _, rpm := range rpms {
		if _, err := runIn(targetDir, "sh", "-c", fmt.Sprintf("rpm2cpio %q | cpio -idmu --quiet", rpm)); err != nil {
			return nil, err
		}
		_ = os.Remove(rpm)
	}

	return listExecutables(targetDir)
}

func (d *Dnf) Update(pkg, version, installDir string, userScope bool) error {
	if !userScope {
		_, err := run("dnf", "upgrade", "-y", pkg)
		return err
	}
	_, err := d.Install(pkg, version, installDir, userScope)
	return err
}

func (d *Dnf) Search(query string) ([]SearchResult, error) {
	output, err := run("dnf", "search", "-q", query)
	if err != nil {
		return nil, err
	}
	return parseDnfSearch(output), nil
}

// parseDnfSearch parses dnf's "name.arch : description" lines, skipping the
// "=== Name Matched ===" section headers.
func parseDnfSearch(output []byte) []SearchResult {
	var results []SearchResult
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if strings.HasPrefix(line, "=") {
			continue
		}
		name, desc, found := strings.Cut(line, " : ")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		if i := strings.LastIndex(name, "."); i > 0 {
			name = name[:i] // strip .arch suffix
		}
		results = append(results, SearchResult{
			Name:        name,
			Description: strings.TrimSpace(desc),
		})
	}
	return results
}
