package engine

import (
	"github.com/sahilm/fuzzy"

	"github.com/blackwell-systems/pkgswitch/internal/installer"
)

// BackendResults holds one backend's search hits, or the error it failed
// with. Hits are not deduplicated across backends; the same name found by
// two backends is reported under each.
type BackendResults struct {
	Backend string
	Results []installer.SearchResult
	Err     error
}

// Search queries every usable backend for the term. Backend failures are
// isolated the same way update-all isolates them: a failing backend is
// reported in its slot and the remaining backends are still consulted.
func (e *Engine) Search(query string) ([]BackendResults, error) {
	backends := e.available()
	if len(backends) == 0 {
		return nil, installer.ErrNoInstaller
	}

	out := make([]BackendResults, 0, len(backends))
	for _, ins := range backends {
		br := BackendResults{Backend: ins.Name()}
		br.Results, br.Err = ins.Search(query)
		out = append(out, br)
	}
	return out, nil
}

// SearchInstalled fuzzy-matches the term against registered package names,
// best matches first.
func (e *Engine) SearchInstalled(query string) ([]PackageInfo, error) {
	res, err := e.List(false, false)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(res.Packages))
	for i, pkg := range res.Packages {
		names[i] = pkg.Name
	}

	var matched []PackageInfo
	for _, m := range fuzzy.Find(query, names) {
		matched = append(matched, res.Packages[m.Index])
	}
	return matched, nil
}
