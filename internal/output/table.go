// Package output renders pkgswitch results for the terminal: package and
// version tables, search hits, and the history log. Color is applied only
// on a TTY and only when NO_COLOR is unset.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/pkgswitch/internal/engine"
	"github.com/blackwell-systems/pkgswitch/internal/history"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// Colorize wraps s in the given ANSI code when color is enabled.
func Colorize(s, color string) string {
	if !IsColorEnabled() {
		return s
	}
	return color + s + colorReset
}

func Green(s string) string  { return Colorize(s, colorGreen) }
func Yellow(s string) string { return Colorize(s, colorYellow) }
func Red(s string) string    { return Colorize(s, colorRed) }
func Cyan(s string) string   { return Colorize(s, colorCyan) }
func Gray(s string) string   { return Colorize(s, colorGray) }

// RenderPackageList renders List output: one header line per package, then
// its versions with the active one starred.
func RenderPackageList(packages []engine.PackageInfo) string {
	var sb strings.Builder

	for _, pkg := range packages {
		scope := "user"
		if pkg.System {
			scope = "system"
		}
		sb.WriteString(fmt.Sprintf("%s %s (%d %s)\n",
			Green(pkg.Name),
			Cyan(scope),
			len(pkg.Versions),
			plural(len(pkg.Versions), "version", "versions")))

		for _, v := range pkg.Versions {
			marker := "  "
			if v.Active {
				marker = Green("* ")
			}
			sb.WriteString(fmt.Sprintf("%s%s - installed %s",
				marker,
				Cyan(v.Label),
				humanize.Time(v.InstallDate)))
			if v.Installer != "" {
				sb.WriteString(fmt.Sprintf(" %s", Gray("["+v.Installer+"]")))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderSearchResults renders one backend's hits, tagged with the backend
// name since hits are not deduplicated across backends.
func RenderSearchResults(results []engine.BackendResults) string {
	var sb strings.Builder

	for _, br := range results {
		if br.Err != nil {
			sb.WriteString(fmt.Sprintf("%s %s: %v\n", Red("search failed with"), Cyan(br.Backend), br.Err))
			continue
		}
		for _, hit := range br.Results {
			sb.WriteString(fmt.Sprintf("%s - %s %s\n",
				Green(hit.Name),
				hit.Description,
				Gray("["+br.Backend+"]")))
		}
	}

	return sb.String()
}

// RenderHistory renders the operation log, newest first.
func RenderHistory(events []history.Event) string {
	if len(events) == 0 {
		return "No history recorded.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-10s %-20s %-12s %-16s %s\n",
		"Operation", "Package", "Version", "When", "Detail"))
	sb.WriteString(strings.Repeat("─", 72))
	sb.WriteString("\n")

	for _, ev := range events {
		sb.WriteString(fmt.Sprintf("%-10s %-20s %-12s %-16s %s\n",
			ev.Operation,
			ev.Package,
			ev.Version,
			humanize.Time(ev.Timestamp),
			ev.Detail))
	}

	return sb.String()
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
