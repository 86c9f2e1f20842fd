package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all configurable visual styles for the puzzle screens.
type Theme struct {
	// Chrome
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Prompt   lipgloss.Style
	Info     lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style

	// Riddle letter cells
	CellEmpty  lipgloss.Style
	CellFilled lipgloss.Style
	CellLocked lipgloss.Style
	CellCursor lipgloss.Style

	// Word-guess tiles and keyboard keys
	TileCorrect lipgloss.Style
	TilePresent lipgloss.Style
	TileAbsent  lipgloss.Style
	KeyCorrect  lipgloss.Style
	KeyPresent  lipgloss.Style
	KeyAbsent   lipgloss.Style
	KeyUnset    lipgloss.Style

	// Group items
	ItemNormal   lipgloss.Style
	ItemCursor   lipgloss.Style
	ItemSelected lipgloss.Style
	ItemHint     lipgloss.Style
	GroupBanner  lipgloss.Style

	// Hub statuses
	StatusSolved     lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusNotStarted lipgloss.Style

	// Hub menu
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Italic(true),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		CellEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		CellFilled: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		CellLocked: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		CellCursor: lipgloss.NewStyle().Reverse(true),

		TileCorrect: lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("46")).Bold(true),
		TilePresent: lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("226")).Bold(true),
		TileAbsent:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("238")),
		KeyCorrect:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		KeyPresent:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		KeyAbsent:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		KeyUnset:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),

		ItemNormal:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemCursor:   lipgloss.NewStyle().Reverse(true),
		ItemSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		ItemHint:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Underline(true),
		GroupBanner:  lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("135")).Bold(true),

		StatusSolved:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		StatusNotStarted: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
	}
}
