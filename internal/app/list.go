package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/pkgswitch/internal/output"
)

var (
	listFlagSystem bool
	listFlagUser   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered packages and their versions",
	Long: `List every package pkgswitch manages, its scope, and all installed
versions with the active one starred.

Examples:
  pkgswitch list
  pkgswitch list --user`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listFlagSystem, "system", false, "show system packages only")
	listCmd.Flags().BoolVar(&listFlagUser, "user", false, "show user packages only")

	RootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, cleanup := newEngine(cfg)
	defer cleanup()

	res, err := eng.List(listFlagSystem, listFlagUser)
	if err != nil {
		return err
	}

	if res.Total == 0 {
		fmt.Println(output.Yellow("No packages installed"))
		return nil
	}
	if len(res.Packages) == 0 {
		switch {
		case listFlagSystem && listFlagUser:
			fmt.Println(output.Yellow("No packages match both --system and --user"))
		case listFlagSystem:
			fmt.Println(output.Yellow("No system packages installed"))
		case listFlagUser:
			fmt.Println(output.Yellow("No user packages installed"))
		}
		return nil
	}

	fmt.Print(output.RenderPackageList(res.Packages))
	return nil
}
