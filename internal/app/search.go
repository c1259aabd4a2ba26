package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/pkgswitch/internal/output"
)

var searchFlagInstalled bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search package catalogs",
	Long: `Search every package manager available on the host for the query.
Hits are tagged with the backend that found them and are not deduplicated
across backends. A backend that fails is reported without stopping the
others.

With --installed the query instead fuzzy-matches the names already in the
registry.

Examples:
  pkgswitch search ripgrep
  pkgswitch search rg --installed`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchFlagInstalled, "installed", false, "search registered packages instead of backend catalogs")

	RootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, cleanup := newEngine(cfg)
	defer cleanup()

	if searchFlagInstalled {
		matches, err := eng.SearchInstalled(query)
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			fmt.Printf("%s %s\n", output.Yellow("No installed packages matching:"), query)
			return nil
		}
		fmt.Print(output.RenderPackageList(matches))
		return nil
	}

	results, err := eng.Search(query)
	if err != nil {
		return err
	}

	found := false
	failed := 0
	for _, br := range results {
		fmt.Printf("%s %s\n", output.Green("Searching with"), output.Cyan(br.Backend))
		if br.Err != nil {
			failed++
		}
		if len(br.Results) > 0 {
			found = true
		}
	}
	fmt.Print(output.RenderSearchResults(results))

	if failed == len(results) {
		return fmt.Errorf("every backend failed searching for %q", query)
	}
	if !found {
		fmt.Printf("%s %s\n", output.Yellow("No packages found matching:"), query)
	}
	return nil
}
