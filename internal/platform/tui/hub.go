package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ellomar/puzzlebox/internal/state"
)

// hubEntry is one selectable row on the hub screen.
type hubEntry struct {
	id    state.PuzzleID
	title string
	page  state.Page
	// reveal marks the closing-message entry, selectable only once every
	// puzzle is solved.
	reveal bool
}

// hubModel is the puzzle picker. Statuses are derived from the store on every
// render, never cached.
type hubModel struct {
	app      *App
	keys     hubKeyMap
	help     help.Model
	entries  []hubEntry
	cursor   int
	message  string
	quitting bool
}

func newHubModel(app *App) hubModel {
	return hubModel{
		app:  app,
		keys: defaultHubKeyMap(),
		help: help.New(),
		entries: []hubEntry{
			{id: state.PuzzleRiddles, title: "Riddles", page: state.PageRiddles},
			{id: state.PuzzleWord, title: "The Word", page: state.PageWord},
			{id: state.PuzzleGroups, title: "Connections", page: state.PageGroups},
			{title: "The Reveal", page: state.PageFinal, reveal: true},
		},
	}
}

func (m hubModel) update(msg tea.KeyMsg) (hubModel, tea.Cmd) {
	m.message = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		entry := m.entries[m.cursor]
		if entry.reveal && !m.app.Store.AllCompleted() {
			m.message = "Solve all three puzzles first."
			return m, nil
		}
		m.app.Store.SetCurrentPage(entry.page)
	}

	return m, nil
}

func (m hubModel) view(width int) string {
	t := m.app.Theme
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerLine(t.Title.Render("P U Z Z L E B O X"), width))
	b.WriteString("\n\n")
	b.WriteString(centerLine(t.Subtitle.Render("Pick a puzzle"), width))
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		cursor := "  "
		style := t.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = t.MenuItemActive
		}

		label := fmt.Sprintf("%-14s", entry.title)
		var status string
		if entry.reveal {
			if m.app.Store.AllCompleted() {
				status = t.StatusSolved.Render("unlocked")
			} else {
				status = t.StatusNotStarted.Render("locked")
			}
		} else {
			status = m.statusLabel(m.app.Store.PuzzleStatus(entry.id))
		}

		b.WriteString(centerLine(cursor+style.Render(label)+" "+status, width))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(centerLine(t.Info.Render(m.message), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerLine(m.help.View(m.keys), width))
	b.WriteString("\n")

	return b.String()
}

func (m hubModel) statusLabel(s state.Status) string {
	t := m.app.Theme
	switch s {
	case state.StatusSolved:
		return t.StatusSolved.Render(s.String())
	case state.StatusInProgress:
		return t.StatusInProgress.Render(s.String())
	default:
		return t.StatusNotStarted.Render(s.String())
	}
}
