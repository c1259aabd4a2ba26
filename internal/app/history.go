package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/pkgswitch/internal/history"
	"github.com/blackwell-systems/pkgswitch/internal/output"
)

var historyFlagLimit int

var historyCmd = &cobra.Command{
	Use:   "history [name]",
	Short: "Show the operation log",
	Long: `Show recent registry operations, newest first, optionally limited to
one package.

Examples:
  pkgswitch history
  pkgswitch history node --limit 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlagLimit, "limit", 25, "maximum events to show")

	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	hist, err := history.New(cfg.HistoryPath)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer hist.Close()

	var pkg string
	if len(args) == 1 {
		pkg = args[0]
	}

	events, err := hist.Recent(pkg, historyFlagLimit)
	if err != nil {
		return err
	}

	fmt.Print(output.RenderHistory(events))
	return nil
}
