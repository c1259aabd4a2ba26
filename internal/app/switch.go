package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/pkgswitch/internal/output"
)

var switchCmd = &cobra.Command{
	Use:   "switch <name> <version>",
	Short: "Change a package's active version",
	Long: `Point a package's active version at another installed version. The
target must already be registered; a wrong label leaves the current active
version in place.

Examples:
  pkgswitch switch node 20.11.1
  pkgswitch switch node latest`,
	Args: cobra.ExactArgs(2),
	RunE: runSwitch,
}

func init() {
	RootCmd.AddCommand(switchCmd)
}

func runSwitch(cmd *cobra.Command, args []string) error {
	name, version := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, cleanup := newEngine(cfg)
	defer cleanup()

	res, err := eng.Switch(name, version)
	if err != nil {
		if reportNotFound(err) {
			return nil
		}
		return err
	}

	fmt.Printf("%s %s %s %s\n",
		output.Green("Switched"),
		output.Yellow(res.Package),
		output.Green("to version"),
		output.Cyan(res.Version))
	return nil
}
