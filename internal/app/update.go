package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/pkgswitch/internal/output"
)

var updateCmd = &cobra.Command{
	Use:   "update [name]",
	Short: "Update one package or all of them",
	Long: `Update packages through the backend recorded at install time.

With a name, that package's active version is updated and a backend failure
fails the command. Without a name every package with an active version and
a recorded backend is updated; failures are reported per package but do not
stop the rest of the batch.

Examples:
  pkgswitch update
  pkgswitch update ripgrep`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUpdate,
}

func init() {
	RootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, cleanup := newEngine(cfg)
	defer cleanup()

	if len(args) == 1 {
		name := args[0]
		fmt.Printf("%s %s\n", output.Green("Updating package"), output.Yellow(name))

		out, err := eng.UpdateOne(name)
		if err != nil {
			if reportNotFound(err) {
				return nil
			}
			return err
		}
		if out.Skipped {
			fmt.Printf("%s %s\n", output.Yellow("Nothing to update for"), name)
			return nil
		}
		fmt.Printf("%s %s\n", output.Green("Updated package"), output.Yellow(name))
		return nil
	}

	fmt.Println(output.Green("Updating all packages"))

	outcomes, err := eng.UpdateAll()
	if err != nil {
		return err
	}
	if len(outcomes) == 0 {
		fmt.Println(output.Yellow("Nothing to update"))
		return nil
	}
	for _, out := range outcomes {
		if out.Err != nil {
			fmt.Printf("%s %s: %v\n", output.Red("Failed to update"), output.Yellow(out.Package), out.Err)
			continue
		}
		fmt.Printf("%s %s\n", output.Green("Updated package"), output.Yellow(out.Package))
	}
	return nil
}
