package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ellomar/puzzlebox/internal/state"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-puzzle progress",
	Long: `Display the status of each puzzle and when it was first solved.

Examples:
  puzzlebox status
  puzzlebox status --db ./progress.db`,
	Run: runStatus,
}

func runStatus(_ *cobra.Command, _ []string) {
	app, cleanup := loadApp()
	defer cleanup()

	rows := []struct {
		id    state.PuzzleID
		title string
	}{
		{state.PuzzleRiddles, "Riddles"},
		{state.PuzzleWord, "The Word"},
		{state.PuzzleGroups, "Connections"},
	}

	fmt.Println("Puzzlebox progress")
	fmt.Println()
	fmt.Printf("  %-14s  %-12s  %s\n", "Puzzle", "Status", "Solved at")
	fmt.Printf("  %-14s  %-12s  %s\n", "------", "------", "---------")

	for _, row := range rows {
		solvedAt := "-"
		if app.Log != nil {
			if ts, ok, err := app.Log.SolvedAt(row.id); err == nil && ok {
				solvedAt = ts.Format("2006-01-02 15:04")
			}
		}
		fmt.Printf("  %-14s  %-12s  %s\n", row.title, app.Store.PuzzleStatus(row.id), solvedAt)
	}

	fmt.Println()
	if app.Store.AllCompleted() {
		fmt.Println("Everything is solved. The reveal is unlocked.")
	} else {
		fmt.Println("The reveal stays locked until all three are solved.")
	}
}
