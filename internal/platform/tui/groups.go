package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ellomar/puzzlebox/internal/content"
	"github.com/ellomar/puzzlebox/internal/puzzles/groups"
	"github.com/ellomar/puzzlebox/internal/state"
)

// groupsModel is the grouping screen. Solved groups collapse into banners;
// the remaining items form a grid the player picks four from.
type groupsModel struct {
	app      *App
	keys     groupsKeyMap
	help     help.Model
	cursor   int
	selected []string
	message  string
	isError  bool
	quitting bool
}

func newGroupsModel(app *App) groupsModel {
	return groupsModel{
		app:  app,
		keys: defaultGroupsKeyMap(),
		help: help.New(),
	}
}

func (m groupsModel) update(msg tea.KeyMsg) (groupsModel, tea.Cmd) {
	p := m.app.Store.Game().Progress.Groups
	items := m.remainingItems(p)
	m.clampCursor(len(items))
	m.message, m.isError = "", false

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.app.Store.SetCurrentPage(state.PageHub)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor-content.GroupSize >= 0 {
			m.cursor -= content.GroupSize
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor+content.GroupSize < len(items) {
			m.cursor += content.GroupSize
		}

	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if len(items) > 0 && !p.Solved && !p.Failed {
			m.toggle(items[m.cursor])
		}

	case key.Matches(msg, m.keys.Clear):
		m.selected = nil

	case key.Matches(msg, m.keys.Submit):
		m.submit(p)

	case key.Matches(msg, m.keys.Hint):
		m.hint(p)

	case key.Matches(msg, m.keys.Reset):
		if p.Failed {
			m.app.Store.ResetGroupProgress()
			m.selected = nil
			m.cursor = 0
			m.message = "The board is reset. Attempts are back."
		}
	}

	return m, nil
}

func (m *groupsModel) clampCursor(n int) {
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *groupsModel) toggle(item string) {
	for i, s := range m.selected {
		if s == item {
			m.selected = append(m.selected[:i], m.selected[i+1:]...)
			return
		}
	}
	if len(m.selected) < content.GroupSize {
		m.selected = append(m.selected, item)
	}
}

func (m *groupsModel) submit(p state.GroupProgress) {
	defs := m.app.Content.Groups.Sets
	upd, res, err := groups.Submit(p, m.selected, defs, m.app.Content.Groups.MaxAttempts, m.app.Collator)
	if err != nil {
		m.isError = true
		switch {
		case errors.Is(err, groups.ErrSelectionSize):
			m.message = fmt.Sprintf("Pick exactly %d items.", content.GroupSize)
		case errors.Is(err, groups.ErrFinished):
			m.message = "The puzzle is over."
		default:
			m.message = err.Error()
		}
		return
	}

	m.app.Store.UpdateGroupProgress(upd)

	switch {
	case res.Duplicate:
		m.message = "You already tried that combination."
	case res.GroupIndex >= 0:
		m.selected = nil
		m.cursor = 0
		m.message = fmt.Sprintf("Yes! %s.", defs[res.GroupIndex].Connection)
		if res.Solved {
			m.app.recordSolve(state.PuzzleGroups)
			m.message = "All groups found!"
		}
	case res.Failed:
		m.selected = nil
		m.message = "Out of attempts."
	case res.OneAway:
		m.message = "So close. One away."
	default:
		m.message = "Not a group."
	}
}

func (m *groupsModel) hint(p state.GroupProgress) {
	defs := m.app.Content.Groups.Sets
	upd, res, err := groups.Hint(p, defs, state.MaxHints)
	if err != nil {
		m.isError = true
		switch {
		case errors.Is(err, groups.ErrHintLimit):
			m.message = "No hints left."
		case errors.Is(err, groups.ErrFinished):
			m.message = "The puzzle is over."
		case errors.Is(err, groups.ErrNothingToHint):
			m.message = "Nothing left to hint."
		default:
			m.message = err.Error()
		}
		return
	}
	m.app.Store.UpdateGroupProgress(upd)
	m.message = fmt.Sprintf("These two belong together: %s.", strings.Join(res.Words, ", "))
}

// remainingItems returns the unsolved items in content order.
func (m groupsModel) remainingItems(p state.GroupProgress) []string {
	defs := m.app.Content.Groups.Sets
	solved := make(map[int]bool, len(p.SolvedGroups))
	for _, idx := range p.SolvedGroups {
		solved[idx] = true
	}

	var items []string
	for idx, g := range defs {
		if solved[idx] {
			continue
		}
		items = append(items, g.Items...)
	}
	return items
}

func (m groupsModel) view(width int) string {
	t := m.app.Theme
	p := m.app.Store.Game().Progress.Groups
	defs := m.app.Content.Groups.Sets

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerLine(t.Title.Render("Connections"), width))
	b.WriteString("\n")
	b.WriteString(centerLine(t.Subtitle.Render(fmt.Sprintf("find groups of %d that share a connection", content.GroupSize)), width))
	b.WriteString("\n\n")

	// Solved groups collapse into banners in solve order.
	for _, idx := range p.SolvedGroups {
		if idx < 0 || idx >= len(defs) {
			continue
		}
		g := defs[idx]
		banner := fmt.Sprintf(" %s: %s ", g.Connection, strings.Join(g.Items, " · "))
		b.WriteString(centerLine(t.GroupBanner.Render(banner), width))
		b.WriteString("\n")
	}
	if len(p.SolvedGroups) > 0 {
		b.WriteString("\n")
	}

	items := m.remainingItems(p)
	hintWords := m.activeHintWords(p)
	for row := 0; row*content.GroupSize < len(items); row++ {
		var cells []string
		for col := 0; col < content.GroupSize; col++ {
			i := row*content.GroupSize + col
			if i >= len(items) {
				break
			}
			cells = append(cells, m.renderItem(items[i], i, hintWords))
		}
		b.WriteString(centerLine(strings.Join(cells, "  "), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	left := m.app.Content.Groups.MaxAttempts - p.Attempts
	meta := fmt.Sprintf("wrong attempts left: %d · hints left: %d", left, state.MaxHints-p.HintsUsed)
	switch {
	case p.Solved:
		b.WriteString(centerLine(t.StatusSolved.Render("✓ solved"), width))
	case p.Failed:
		b.WriteString(centerLine(t.Error.Render("failed · press r to retry from scratch"), width))
	default:
		b.WriteString(centerLine(t.Muted.Render(meta), width))
	}
	b.WriteString("\n")

	if m.message != "" {
		style := t.Info
		if m.isError {
			style = t.Error
		}
		b.WriteString("\n")
		b.WriteString(centerLine(style.Render(m.message), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerLine(m.help.View(m.keys), width))
	b.WriteString("\n")
	return b.String()
}

// activeHintWords returns the standing hint's words, if the hint is still
// valid for the current attempt count.
func (m groupsModel) activeHintWords(p state.GroupProgress) map[string]bool {
	words := make(map[string]bool)
	if p.LastHintAttempts == p.Attempts {
		for _, w := range p.LastHintWords {
			words[w] = true
		}
	}
	return words
}

func (m groupsModel) renderItem(item string, i int, hintWords map[string]bool) string {
	t := m.app.Theme
	cell := fmt.Sprintf(" %-10s", item)

	style := t.ItemNormal
	if hintWords[item] {
		style = t.ItemHint
	}
	for _, s := range m.selected {
		if s == item {
			style = t.ItemSelected
			break
		}
	}
	if i == m.cursor {
		style = t.ItemCursor
	}
	return style.Render(cell)
}
