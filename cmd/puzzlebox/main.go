// puzzlebox is a terminal puzzle gift: three small puzzles guard a closing
// message, played in the terminal or over SSH.
//
// Usage:
//
//	puzzlebox play      - Play in the current terminal
//	puzzlebox status    - Show per-puzzle progress
//	puzzlebox reset     - Discard saved progress
//	puzzlebox serve     - Serve the session over SSH
//
// Global flags:
//
//	--db <path>       - Progress database (default: ~/.puzzlebox/progress.db)
//	--content <path>  - Custom content YAML
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ellomar/puzzlebox/internal/content"
	"github.com/ellomar/puzzlebox/internal/platform/tui"
	"github.com/ellomar/puzzlebox/internal/state"
	"github.com/ellomar/puzzlebox/internal/storage"
)

var (
	// Global flags
	flagDBPath  string
	flagContent string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puzzlebox",
	Short: "Puzzlebox - a terminal puzzle gift",
	Long: `Puzzlebox is a small terminal game: three puzzles stand between the
player and a hidden closing message. Progress is saved after every move,
so the session can be closed and resumed at any time.

Available commands:
  play     - Play in the current terminal
  status   - Show per-puzzle progress and solve times
  reset    - Discard saved progress
  serve    - Serve the session over SSH

Examples:
  puzzlebox play
  puzzlebox play --content ./birthday.yaml
  puzzlebox status
  puzzlebox reset --groups
  puzzlebox serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.puzzlebox/progress.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagContent, "content", "", "Path to custom content YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadApp wires the shared dependencies: content, persistence, and the
// progress store. A broken database is a warning, not a failure; play simply
// continues unpersisted.
func loadApp() (*tui.App, func()) {
	c, err := content.Load(flagContent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading content: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "puzzlebox",
	})

	dbStore, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		dbStore = nil
	}

	var persist state.Persister
	if dbStore != nil {
		persist = dbStore
	}
	progress := state.New(state.RulesFor(c), persist, logger)

	app := tui.NewApp(progress, c, dbStore)
	cleanup := func() {
		if dbStore != nil {
			dbStore.Close()
		}
	}
	return app, cleanup
}
