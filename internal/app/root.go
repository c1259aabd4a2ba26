package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/pkgswitch/internal/paths"
)

var (
	configPath   string
	registryPath string

	// RootCmd is the root command for pkgswitch
	RootCmd = &cobra.Command{
		Use:   "pkgswitch",
		Short: "Install and switch between coexisting versions of packages",
		Long: `pkgswitch keeps a local registry of every package version it has
installed, which backend produced it, and which version is active, so
multiple versions of the same package can coexist and be switched at will.

The real install/update/search work is delegated to whichever package
manager the host provides (brew, apt, dnf, or pacman).

Examples:
  # Install the latest version of ripgrep for this user
  pkgswitch install ripgrep --user

  # Install a second, pinned version alongside it
  pkgswitch install ripgrep --version 13.0.0 --user

  # See everything pkgswitch manages
  pkgswitch list

  # Point the active version at the pinned one
  pkgswitch switch ripgrep 13.0.0

  # Update every package with a recorded backend
  pkgswitch update`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ~/.config/pkgswitch/config.yaml)")
	RootCmd.PersistentFlags().StringVar(&registryPath, "registry", "", "registry file (default: ~/.local/share/pkgswitch/packages.json)")

	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// defaultConfigPath returns the config file path, using the flag value when
// set.
func defaultConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return paths.DefaultConfigPath()
}
