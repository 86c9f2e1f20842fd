package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ellomar/puzzlebox/internal/letters"
	"github.com/ellomar/puzzlebox/internal/puzzles/riddle"
	"github.com/ellomar/puzzlebox/internal/state"
)

// riddlesModel is the letter-fill riddle screen. The cursor is the only
// screen-local state; letters, locks, and solves live in the store.
type riddlesModel struct {
	app     *App
	keys    riddleKeyMap
	help    help.Model
	cursor  int
	lastRid int
	message string
	isError bool
}

func newRiddlesModel(app *App) riddlesModel {
	return riddlesModel{
		app:     app,
		keys:    defaultRiddleKeyMap(),
		help:    help.New(),
		lastRid: -1,
	}
}

func (m riddlesModel) update(msg tea.KeyMsg) (riddlesModel, tea.Cmd) {
	rules := m.app.Store.Rules()
	p := m.app.Store.Game().Progress.Riddles
	cur := p.Current
	m.syncCursor(p, rules, cur)
	m.message, m.isError = "", false

	switch {
	case key.Matches(msg, m.keys.Back):
		m.app.Store.SetCurrentPage(state.PageHub)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.app.Store.UpdateRiddleProgress(riddle.Prev(p, rules))
		m.lastRid = -1
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.app.Store.UpdateRiddleProgress(riddle.Next(p, rules))
		m.lastRid = -1
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.cursor = prevEditable(p, rules, cur, m.cursor)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.cursor = nextEditable(p, rules, cur, m.cursor)
		return m, nil

	case key.Matches(msg, m.keys.Erase):
		m.erase(p, rules, cur)
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.submit(p, rules, cur)
		return m, nil

	case key.Matches(msg, m.keys.Hint):
		m.hint(p, rules, cur)
		return m, nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if r, ok := inputRune(msg.Runes[0]); ok {
			m.typeRune(p, rules, cur, r)
		}
	}
	return m, nil
}

// syncCursor resets the cursor when the viewed riddle changes, landing on the
// first open position.
func (m *riddlesModel) syncCursor(p state.RiddleProgress, rules state.Rules, cur int) {
	if m.lastRid == cur {
		return
	}
	m.lastRid = cur
	if pos := riddle.NextEmptyPos(p, rules, cur); pos >= 0 {
		m.cursor = pos
	} else {
		m.cursor = 0
	}
}

func (m *riddlesModel) typeRune(p state.RiddleProgress, rules state.Rules, cur int, r rune) {
	upd, err := riddle.SetLetter(p, rules, cur, m.cursor, r)
	if err != nil {
		m.fail(err)
		return
	}
	m.app.Store.UpdateRiddleProgress(upd)

	// Advance past the typed position, skipping locked cells.
	next := m.cursor + 1
	for next < rules.SlotCount(cur) && p.LockedAt(cur, next) {
		next++
	}
	if next < rules.SlotCount(cur) {
		m.cursor = next
	}
}

func (m *riddlesModel) erase(p state.RiddleProgress, rules state.Rules, cur int) {
	slots := state.AnswerRunes(p.Answers[cur], rules.SlotCount(cur))

	pos := m.cursor
	// An empty cursor cell erases the previous editable position instead.
	if pos < len(slots) && slots[pos] == state.SlotEmpty {
		pos = prevEditable(p, rules, cur, pos)
	}

	upd, err := riddle.ClearLetter(p, rules, cur, pos)
	if err != nil {
		return
	}
	m.app.Store.UpdateRiddleProgress(upd)
	m.cursor = pos
}

func (m *riddlesModel) submit(p state.RiddleProgress, rules state.Rules, cur int) {
	upd, res, err := riddle.Submit(p, rules, cur)
	if err != nil {
		m.fail(err)
		return
	}
	m.app.Store.UpdateRiddleProgress(upd)

	switch {
	case res.Solved:
		m.message = "Solved!"
		if m.app.Store.Game().Progress.Riddles.RiddlesSolved() {
			m.app.recordSolve(state.PuzzleRiddles)
			m.message = "Solved! That was the last riddle."
		}
	case len(res.NewlyLocked) > 0:
		m.message = fmt.Sprintf("Not quite. %d correct letters locked in.", len(res.NewlyLocked))
	default:
		m.message = "Not quite."
	}
}

func (m *riddlesModel) hint(p state.RiddleProgress, rules state.Rules, cur int) {
	upd, res, err := riddle.Hint(p, rules, cur, state.MaxHints)
	if err != nil {
		m.fail(err)
		return
	}
	m.app.Store.UpdateRiddleProgress(upd)
	m.message = "A letter has been revealed."
	if m.cursor == res.Pos {
		fresh := m.app.Store.Game().Progress.Riddles
		m.cursor = nextEditable(fresh, rules, cur, m.cursor)
	}
}

func (m *riddlesModel) fail(err error) {
	m.isError = true
	switch {
	case errors.Is(err, riddle.ErrIncomplete):
		m.message = "Fill every letter before checking."
	case errors.Is(err, riddle.ErrPositionLocked):
		m.message = "That letter is locked."
	case errors.Is(err, riddle.ErrHintLimit):
		m.message = "No hints left for this riddle."
	case errors.Is(err, riddle.ErrNoEmptyPositions):
		m.message = "Nothing left to reveal."
	case errors.Is(err, riddle.ErrAlreadySolved):
		m.message = "Already solved."
	default:
		m.message = err.Error()
	}
}

func (m riddlesModel) view(width int) string {
	t := m.app.Theme
	rules := m.app.Store.Rules()
	p := m.app.Store.Game().Progress.Riddles
	cur := p.Current

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerLine(t.Title.Render("Riddles"), width))
	b.WriteString("\n")

	solvedCount := 0
	for _, s := range p.Solved {
		if s {
			solvedCount++
		}
	}
	counter := fmt.Sprintf("%d of %d · %d solved", cur+1, rules.RiddleCount(), solvedCount)
	b.WriteString(centerLine(t.Subtitle.Render(counter), width))
	b.WriteString("\n\n")

	if cur < len(m.app.Content.Riddles) {
		b.WriteString(centerLine(t.Prompt.Render(m.app.Content.Riddles[cur].Prompt), width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerLine(m.renderSlots(p, rules, cur), width))
	b.WriteString("\n\n")

	hintsLeft := state.MaxHints - p.HintsUsed[cur]
	if p.Solved[cur] {
		b.WriteString(centerLine(t.StatusSolved.Render("✓ solved"), width))
	} else {
		b.WriteString(centerLine(t.Muted.Render(fmt.Sprintf("hints left: %d", hintsLeft)), width))
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

// renderSlots draws the letter row of riddle cur, with a wider gap between
// words of a multi-word answer.
func (m riddlesModel) renderSlots(p state.RiddleProgress, rules state.Rules, cur int) string {
	answer := rules.RiddleAnswers[cur]
	slots := state.AnswerRunes(p.Answers[cur], rules.SlotCount(cur))

	segments := letters.SegmentLengths(answer)
	var parts []string
	pos := 0
	for _, segLen := range segments {
		var seg []string
		for j := 0; j < segLen; j++ {
			seg = append(seg, m.renderCell(p, cur, pos, slots[pos]))
			pos++
		}
		parts = append(parts, strings.Join(seg, " "))
	}
	return strings.Join(parts, "   ")
}

func (m riddlesModel) renderCell(p state.RiddleProgress, cur, pos int, r rune) string {
	t := m.app.Theme
	cell := string(r)

	var style = t.CellFilled
	switch {
	case p.LockedAt(cur, pos):
		style = t.CellLocked
	case r == state.SlotEmpty:
		style = t.CellEmpty
	}
	if pos == m.cursor && !p.Solved[cur] {
		style = t.CellCursor
	}
	return style.Render(cell)
}

// nextEditable returns the next unlocked position after pos, or pos itself
// when none remains.
func nextEditable(p state.RiddleProgress, rules state.Rules, cur, pos int) int {
	n := rules.SlotCount(cur)
	for next := pos + 1; next < n; next++ {
		if !p.LockedAt(cur, next) {
			return next
		}
	}
	return pos
}

// prevEditable returns the previous unlocked position before pos, or pos
// itself when none remains.
func prevEditable(p state.RiddleProgress, rules state.Rules, cur, pos int) int {
	for prev := pos - 1; prev >= 0; prev-- {
		if !p.LockedAt(cur, prev) {
			return prev
		}
	}
	return pos
}
