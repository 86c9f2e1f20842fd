// Package tui renders the puzzle screens with Bubble Tea and serves them
// locally or over SSH via Wish. Screens never own progress: every mutation
// goes through the shared state store and every view reads back from it, so
// a session resumes exactly where it stopped.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/collate"

	"github.com/ellomar/puzzlebox/internal/content"
	"github.com/ellomar/puzzlebox/internal/puzzles/groups"
	"github.com/ellomar/puzzlebox/internal/state"
	"github.com/ellomar/puzzlebox/internal/storage"
)

// App bundles the shared dependencies every screen needs. One App may back
// many concurrent sessions; the store serializes their mutations.
type App struct {
	Store    *state.Store
	Content  *content.Content
	Log      *storage.Store // optional solve log, may be nil
	Collator *collate.Collator
	Theme    Theme
}

// NewApp creates the shared screen dependencies.
func NewApp(store *state.Store, c *content.Content, logStore *storage.Store) *App {
	return &App{
		Store:    store,
		Content:  c,
		Log:      logStore,
		Collator: groups.NewCollator(c.LanguageTag()),
		Theme:    DefaultTheme(),
	}
}

// recordSolve logs a puzzle's first completion. Best-effort: the solve log is
// a nicety for the status command and never blocks play.
func (a *App) recordSolve(id state.PuzzleID) {
	if a.Log != nil {
		//nolint:errcheck // Best-effort record, play continues regardless
		a.Log.RecordSolve(id)
	}
}

// SessionModel manages the full session flow: landing -> hub -> puzzle
// screens -> reveal. The current page lives in the store, so navigation is
// itself a persisted mutation.
type SessionModel struct {
	app      *App
	width    int
	height   int
	hub      hubModel
	riddles  riddlesModel
	word     wordModel
	groupsM  groupsModel
	final    finalModel
	quitting bool
}

// NewSessionModel creates a session over the shared app state.
func NewSessionModel(app *App) SessionModel {
	return SessionModel{
		app:     app,
		hub:     newHubModel(app),
		riddles: newRiddlesModel(app),
		word:    newWordModel(app),
		groupsM: newGroupsModel(app),
		final:   newFinalModel(app),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update routes messages to the screen for the store's current page.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if keyMsg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.app.Store.Game().CurrentPage {
	case state.PageLanding:
		cmd = m.updateLanding(keyMsg)
	case state.PageHub:
		m.hub, cmd = m.hub.update(keyMsg)
		if m.hub.quitting {
			m.quitting = true
		}
	case state.PageRiddles:
		m.riddles, cmd = m.riddles.update(keyMsg)
	case state.PageWord:
		m.word, cmd = m.word.update(keyMsg)
	case state.PageGroups:
		m.groupsM, cmd = m.groupsM.update(keyMsg)
		if m.groupsM.quitting {
			m.quitting = true
		}
	case state.PageFinal:
		cmd = m.final.update(keyMsg)
	default:
		m.app.Store.SetCurrentPage(state.PageLanding)
	}

	if m.quitting {
		return m, tea.Quit
	}
	return m, cmd
}

// updateLanding handles the landing screen: any confirm key enters the hub.
func (m *SessionModel) updateLanding(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		m.quitting = true
		return tea.Quit
	case "enter", " ":
		m.app.Store.SetCurrentPage(state.PageHub)
	}
	return nil
}

// View renders the screen for the store's current page.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.app.Store.Game().CurrentPage {
	case state.PageLanding:
		return m.viewLanding()
	case state.PageHub:
		return m.hub.view(m.width)
	case state.PageRiddles:
		return m.riddles.view(m.width)
	case state.PageWord:
		return m.word.view(m.width)
	case state.PageGroups:
		return m.groupsM.view(m.width)
	case state.PageFinal:
		return m.final.view(m.width)
	}
	return ""
}

func (m SessionModel) viewLanding() string {
	t := m.app.Theme
	title := t.Title.Render("P U Z Z L E B O X")
	sub := t.Subtitle.Render("Three puzzles stand between you and a message.")
	hint := t.Muted.Render("press enter to begin · q to quit")
	return "\n\n" + centerLine(title, m.width) + "\n\n" +
		centerLine(sub, m.width) + "\n\n" +
		centerLine(hint, m.width) + "\n"
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(app *App) error {
	p := tea.NewProgram(
		NewSessionModel(app),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
