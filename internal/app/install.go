package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/pkgswitch/internal/output"
)

var (
	installFlagVersion string
	installFlagUser    bool
)

var installCmd = &cobra.Command{
	Use:   "install <name>",
	Short: "Install a package version and register it",
	Long: `Install a package through the host's package manager and register the
result in the pkgswitch registry. Without --version the install is recorded
under the "latest" label. Each version gets its own install directory, so
installing a second version never disturbs the first.

The first installed version of a package becomes its active version;
further versions are registered inactive until switched to.

Examples:
  pkgswitch install jq
  pkgswitch install node --version 20.11.1 --user`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installFlagVersion, "version", "v", "", "specific version to install")
	installCmd.Flags().BoolVarP(&installFlagUser, "user", "u", false, "install for the current user, not machine-wide")

	RootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, cleanup := newEngine(cfg)
	defer cleanup()

	fmt.Printf("%s %s", output.Green("Installing package"), output.Yellow(name))
	if installFlagVersion != "" {
		fmt.Printf(" version %s", output.Cyan(installFlagVersion))
	}
	if installFlagUser {
		fmt.Print(" (user package)")
	}
	fmt.Println()

	res, err := eng.Install(name, installFlagVersion, installFlagUser)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s %s via %s\n",
		output.Green("Successfully installed"),
		output.Yellow(res.Package),
		output.Cyan(res.Version),
		output.Cyan(res.Installer))
	for _, bin := range res.BinPaths {
		fmt.Printf("  %s\n", bin)
	}
	if res.MadeActive {
		fmt.Printf("%s %s %s\n", output.Green("Set"), output.Cyan(res.Version), output.Green("as the active version"))
	}
	return nil
}
