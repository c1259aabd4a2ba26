package installer

import (
	"fmt"
	"os"
	"strings"
)

// Apt drives Debian/Ubuntu hosts. Packages are downloaded with apt-get and
// unpacked into the target directory with dpkg-deb, so versions of the
// same package can coexist outside dpkg's own database.
type Apt struct{}

func (a *Apt) Name() string { return "apt" }

func (a *Apt) Install(pkg, version, targetDir string, userScope bool) ([]string, error) {
	spec := pkg
	if version != "" {
		spec = fmt.Sprintf("%s=%s", pkg, version)
	}

	if _, err := runIn(targetDir, "apt-get", "download", spec); err != nil {
		return nil, err
	}

	debs, err := findArtifacts(targetDir, "*.deb")
	if err != nil {
		return nil, err
	}
	for _, deb := range debs {
		if _, err := run("dpkg-deb", "-x", deb, targetDir); err != nil {
			return nil, err
		}
		_ = os.Remove(deb)
	}

	return listExecutables(targetDir)
}

func (a *Apt) Update(pkg, version, installDir string, userScope bool) error {
	if !userScope {
		_, err := run("apt-get", "install", "--only-upgrade", "-y", pkg)
		return err
	}
	// User scope: refresh the unpacked tree in place.
	_, err := a.Install(pkg, version, installDir, userScope)
	return err
}

func (a *Apt) Search(query string) ([]SearchResult, error) {
	output, err := run("apt-cache", "search", query)
	if err != nil {
		return nil, err
	}
	return parseAptSearch(output), nil
}

// parseAptSearch parses apt-cache's "name - description" lines.
func parseAptSearch(output []byte) []SearchResult {
	var results []SearchResult
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		name, desc, found := strings.Cut(line, " - ")
		if !found {
			continue
		}
		results = append(results, SearchResult{
			Name:        strings.TrimSpace(name),
			Description: strings.TrimSpace(desc),
		})
	}
	return results
}
