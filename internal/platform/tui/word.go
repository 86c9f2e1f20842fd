package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ellomar/puzzlebox/internal/letters"
	"github.com/ellomar/puzzlebox/internal/puzzles/word"
	"github.com/ellomar/puzzlebox/internal/state"
)

// wordModel is the word-guessing screen. The in-flight guess is stored as
// the record's current attempt, so half-typed guesses survive a restart.
type wordModel struct {
	app     *App
	keys    wordKeyMap
	help    help.Model
	message string
	isError bool
}

func newWordModel(app *App) wordModel {
	return wordModel{
		app:  app,
		keys: defaultWordKeyMap(),
		help: help.New(),
	}
}

func (m wordModel) update(msg tea.KeyMsg) (wordModel, tea.Cmd) {
	rules := m.app.Store.Rules()
	p := m.app.Store.Game().Progress.Word
	finished := p.Solved || p.Failed
	m.message, m.isError = "", false

	switch {
	case key.Matches(msg, m.keys.Back):
		m.app.Store.SetCurrentPage(state.PageHub)
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if finished {
			m.app.Store.UpdateWordProgress(word.Restart())
			m.message = "Fresh start."
		}
		return m, nil

	case key.Matches(msg, m.keys.Erase):
		if finished || p.CurrentAttempt == "" {
			return m, nil
		}
		runes := []rune(p.CurrentAttempt)
		buf := string(runes[:len(runes)-1])
		m.app.Store.UpdateWordProgress(state.WordUpdate{CurrentAttempt: &buf})
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.submit(p, rules)
		return m, nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !finished {
		r, ok := inputRune(msg.Runes[0])
		if ok && len([]rune(p.CurrentAttempt)) < rules.WordLength() {
			buf := p.CurrentAttempt + string(r)
			m.app.Store.UpdateWordProgress(state.WordUpdate{CurrentAttempt: &buf})
		}
	}
	return m, nil
}

func (m *wordModel) submit(p state.WordProgress, rules state.Rules) {
	upd, res, err := word.Submit(p, p.CurrentAttempt, rules.WordTarget, rules.WordMaxAttempts)
	if err != nil {
		m.isError = true
		switch {
		case errors.Is(err, word.ErrWrongLength):
			m.message = fmt.Sprintf("Guesses are %d letters.", rules.WordLength())
		case errors.Is(err, word.ErrFinished):
			m.message = "The puzzle is over."
		default:
			m.message = err.Error()
		}
		return
	}

	m.app.Store.UpdateWordProgress(upd)
	switch {
	case res.Solved:
		m.app.recordSolve(state.PuzzleWord)
		m.message = "You got it!"
	case res.Failed:
		m.message = fmt.Sprintf("Out of attempts. The word was %s.", rules.WordTarget)
	default:
		left := rules.WordMaxAttempts - len(p.Attempts) - 1
		m.message = fmt.Sprintf("%d attempts left.", left)
	}
}

func (m wordModel) view(width int) string {
	t := m.app.Theme
	rules := m.app.Store.Rules()
	p := m.app.Store.Game().Progress.Word

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerLine(t.Title.Render("The Word"), width))
	b.WriteString("\n")
	sub := fmt.Sprintf("guess the %d-letter word · %d attempts", rules.WordLength(), rules.WordMaxAttempts)
	b.WriteString(centerLine(t.Subtitle.Render(sub), width))
	b.WriteString("\n\n")

	// Scored rows for past attempts.
	for _, attempt := range p.Attempts {
		b.WriteString(centerLine(m.renderScored(attempt, rules.WordTarget), width))
		b.WriteString("\n")
	}

	// The in-flight row, then empty rows up to the attempt limit.
	rows := len(p.Attempts)
	if rows < rules.WordMaxAttempts && !p.Solved {
		b.WriteString(centerLine(m.renderPending(p.CurrentAttempt, rules.WordLength()), width))
		b.WriteString("\n")
		rows++
	}
	for ; rows < rules.WordMaxAttempts; rows++ {
		b.WriteString(centerLine(m.renderPending("", rules.WordLength()), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, row := range m.keyboardRows() {
		b.WriteString(centerLine(m.renderKeyRow(row, p.Attempts, rules.WordTarget), width))
		b.WriteString("\n")
	}

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

func (m wordModel) renderScored(attempt, target string) string {
	t := m.app.Theme
	scores := word.Evaluate(attempt, target)
	parts := make([]string, len(scores))
	for i, sc := range scores {
		cell := " " + string(sc.Rune) + " "
		switch sc.Status {
		case word.StatusCorrect:
			parts[i] = t.TileCorrect.Render(cell)
		case word.StatusPresent:
			parts[i] = t.TilePresent.Render(cell)
		default:
			parts[i] = t.TileAbsent.Render(cell)
		}
	}
	return strings.Join(parts, " ")
}

func (m wordModel) renderPending(buf string, length int) string {
	t := m.app.Theme
	runes := []rune(buf)
	parts := make([]string, length)
	for i := 0; i < length; i++ {
		if i < len(runes) {
			parts[i] = t.CellFilled.Render(" " + string(runes[i]) + " ")
		} else {
			parts[i] = t.CellEmpty.Render(" " + string(state.SlotEmpty) + " ")
		}
	}
	return strings.Join(parts, " ")
}

// keyboardRows returns the on-screen keyboard for the content's script.
func (m wordModel) keyboardRows() []string {
	base, _ := m.app.Content.LanguageTag().Base()
	if base.String() == "he" {
		return []string{"קראטופ", "שדגכעיחלך", "זסבהנמצתץ"}
	}
	return []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}
}

func (m wordModel) renderKeyRow(row string, attempts []string, target string) string {
	t := m.app.Theme
	statuses := word.KeyStatuses(attempts, target)

	var parts []string
	for _, r := range row {
		style := t.KeyUnset
		switch statuses[letters.Canonical(r)] {
		case word.StatusCorrect:
			style = t.KeyCorrect
		case word.StatusPresent:
			style = t.KeyPresent
		case word.StatusAbsent:
			style = t.KeyAbsent
		}
		parts = append(parts, style.Render(string(r)))
	}
	return strings.Join(parts, " ")
}
