package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ellomar/puzzlebox/internal/platform/tui"
)

// minWidth is the narrowest terminal the puzzle grids fit into.
const minWidth = 40

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start or resume the puzzle session in the current terminal.

Progress is saved after every move. Close the terminal whenever you like
and 'puzzlebox play' again to continue exactly where you left off.

Controls:
  Arrow keys    - Move around
  Letters       - Type into riddle and word puzzles
  Enter         - Submit
  Tab           - Hint (where available)
  Esc           - Back to the hub
  Ctrl+C        - Quit

Examples:
  puzzlebox play
  puzzlebox play --content ./birthday.yaml
  puzzlebox play --db ./progress.db`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Refuse terminals too narrow for the item grid.
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w < minWidth {
		fmt.Fprintf(os.Stderr, "Error: terminal is %d columns wide, need at least %d\n", w, minWidth)
		os.Exit(1)
	}

	app, cleanup := loadApp()

	runErr := tui.Run(app)
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
