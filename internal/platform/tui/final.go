package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ellomar/puzzlebox/internal/state"
)

// finalModel renders the closing message once everything is solved. It is
// display-only; the content's closing block is never read anywhere else.
type finalModel struct {
	app *App
}

func newFinalModel(app *App) finalModel {
	return finalModel{app: app}
}

func (m finalModel) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "b":
		m.app.Store.SetCurrentPage(state.PageHub)
	}
	return nil
}

func (m finalModel) view(width int) string {
	t := m.app.Theme
	closing := m.app.Content.Closing

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerLine(t.Title.Render(closing.Title), width))
	b.WriteString("\n\n")

	for _, line := range strings.Split(closing.Body, "\n") {
		b.WriteString(centerLine(t.Prompt.Render(line), width))
		b.WriteString("\n")
	}

	if closing.Signature != "" {
		b.WriteString("\n")
		b.WriteString(centerLine(t.Subtitle.Render("— "+closing.Signature), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerLine(t.Muted.Render("esc to return to the hub"), width))
	b.WriteString("\n")
	return b.String()
}
