package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagResetGroups bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard saved progress",
	Long: `Discard saved progress and start over.

By default the whole session is reset: every puzzle, the solve log, and
the current page. With --groups only the grouping puzzle is cleared,
which is the way out of its failed state; everything else is kept.

Examples:
  puzzlebox reset
  puzzlebox reset --groups`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetGroups, "groups", false, "Reset only the grouping puzzle")
}

func runReset(_ *cobra.Command, _ []string) {
	app, cleanup := loadApp()
	defer cleanup()

	if flagResetGroups {
		app.Store.ResetGroupProgress()
		fmt.Println("Grouping puzzle reset. Everything else is untouched.")
		return
	}

	app.Store.ResetAllProgress()
	if app.Log != nil {
		if err := app.Log.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not clear solve log: %v\n", err)
		}
	}
	fmt.Println("All progress discarded.")
}
