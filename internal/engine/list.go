package engine

import "time"

// VersionInfo is one installed version as shown by List.
type VersionInfo struct {
	Label       string
	Active      bool
	InstallDate time.Time
	InstallPath string
	Installer   string
}

// PackageInfo is one package as shown by List, versions in label order.
type PackageInfo struct {
	Name     string
	System   bool
	Versions []VersionInfo
}

// ListResult separates "registry is empty" from "filter matched nothing":
// Total counts every registered package before filtering.
type ListResult struct {
	Total    int
	Packages []PackageInfo
}

// List returns the registered packages passing the scope filter, packages
// and versions both in lexicographic order so repeated calls against an
// unchanged registry render identically. Asking for system-only and
// user-only at once is contradictory and matches nothing.
func (e *Engine) List(systemOnly, userOnly bool) (*ListResult, error) {
	reg, err := e.reg.Load()
	if err != nil {
		return nil, err
	}

	res := &ListResult{Total: len(reg)}
	for _, name := range reg.SortedNames() {
		pkg := reg[name]
		if (systemOnly && !pkg.System) || (userOnly && pkg.System) {
			continue
		}

		info := PackageInfo{Name: name, System: pkg.System}
		for _, label := range pkg.SortedVersions() {
			pv := pkg.Versions[label]
			info.Versions = append(info.Versions, VersionInfo{
				Label:       label,
				Active:      label == pkg.ActiveVersion,
				InstallDate: pv.InstallDate,
				InstallPath: pv.InstallPath,
				Installer:   pv.PackageManager,
			})
		}
		res.Packages = append(res.Packages, info)
	}
	return res, nil
}
