package installer

import (
	"strings"
)

// Pacman drives Arch hosts. Package archives are fetched into the target
// directory with pacman's download-only mode and unpacked with tar.
type Pacman struct{}

func (p *Pacman) Name() string { return "pacman" }

func (p *Pacman) Install(pkg, version, targetDir string, userScope bool) ([]string, error) {
	// Arch repos carry a single version per package; a requested version
	// can only be honored if it is the one in the repo, so the spec is
	// always the bare name.
	if _, err := run("pacman", "-Sw", "--noconfirm", "--cachedir", targetDir, pkg); err != nil {
		return nil, err
	}

	archives, err := findArtifacts(targetDir, "*.pkg.tar.*")
	if err != nil {
		return nil, err
	}
	for _, archive := range archives {
		if strings.HasSuffix(archive, ".sig") {
			continue
		}
		if _, err := run("tar", "-xf", archive, "-C", targetDir); err != nil {
			return nil, err
		}
	}

	return listExecutables(targetDir)
}

func (p *Pacman) Update(pkg, version, installDir string, userScope bool) error {
	if !userScope {
		_, err := run("pacman", "-S", "--noconfirm", pkg)
		return err
	}
	_, err := p.Install(pkg, version, installDir, userScope)
	return err
}

func (p *Pacman) Search(query string) ([]SearchResult, error) {
	output, err := run("pacman", "-Ss", query)
	if err != nil {
		return nil, err
	}
	return parsePacmanSearch(output), nil
}

// parsePacmanSearch parses pacman -Ss output: "repo/name version" lines,
// each followed by an indented description line.
func parsePacmanSearch(output []byte) []SearchResult {
	var results []SearchResult
	lines := strings.Split(strings.TrimRight(string(output), "\n"), "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if line == "" || strings.HasPrefix(line, " ") {
			continue
		}
		fields := strings.Fields(line)
		name := fields[0]
		if j := strings.Index(name, "/"); j >= 0 {
			name = name[j+1:]
		}
		var desc string
		if i+1 < len(lines) && strings.HasPrefix(lines[i+1], " ") {
			desc = strings.TrimSpace(lines[i+1])
			i++
		}
		results = append(results, SearchResult{Name: name, Description: desc})
	}
	return results
}
