package app

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/pkgswitch/internal/output"
	"github.com/blackwell-systems/pkgswitch/internal/registry"
	"github.com/blackwell-systems/pkgswitch/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the registry for changes from other processes",
	Long: `Watch the registry document and print a summary line whenever another
pkgswitch invocation installs, removes, or switches a package. Runs until
interrupted.

Example:
  pkgswitch watch`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w, err := watcher.New(registry.NewStore(cfg.RegistryPath))
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	fmt.Printf("%s %s\n", output.Green("Watching registry"), cfg.RegistryPath)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	for {
		select {
		case change, ok := <-w.Changes():
			if !ok {
				return nil
			}
			printChange(change)
		case <-sigCh:
			fmt.Println("\nStopping watch.")
			return nil
		}
	}
}

func printChange(c watcher.Change) {
	var parts []string
	if len(c.Added) > 0 {
		parts = append(parts, output.Green("added ")+strings.Join(c.Added, ", "))
	}
	if len(c.Removed) > 0 {
		parts = append(parts, output.Red("removed ")+strings.Join(c.Removed, ", "))
	}
	if len(c.Switched) > 0 {
		parts = append(parts, output.Cyan("switched ")+strings.Join(c.Switched, ", "))
	}
	fmt.Printf("%s (%d packages)\n", strings.Join(parts, "; "), c.Packages)
}
