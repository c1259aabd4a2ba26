package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/pkgswitch/internal/output"
)

var removeFlagVersion string

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a package or one of its versions",
	Long: `Remove a package from the registry along with its installed files.

With --version only that version is removed; if it was the active version,
the lexicographically smallest remaining version is promoted. Without
--version every version of the package is removed.

Examples:
  pkgswitch remove jq
  pkgswitch remove node --version 20.11.1`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().StringVarP(&removeFlagVersion, "version", "v", "", "specific version to remove (default: all versions)")

	RootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, cleanup := newEngine(cfg)
	defer cleanup()

	res, err := eng.Remove(name, removeFlagVersion)
	if err != nil {
		if reportNotFound(err) {
			return nil
		}
		return err
	}

	if removeFlagVersion != "" {
		fmt.Printf("%s %s %s %s\n",
			output.Green("Removed version"),
			output.Yellow(removeFlagVersion),
			output.Green("of package"),
			output.Yellow(name))
		if res.Promoted != "" {
			fmt.Printf("%s %s %s\n", output.Green("Set"), output.Cyan(res.Promoted), output.Green("as the active version"))
		}
	}
	if res.PackageDeleted {
		fmt.Printf("%s %s\n", output.Green("Removed package"), output.Yellow(name))
	}
	return nil
}
