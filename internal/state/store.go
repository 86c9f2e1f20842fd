package state

import (
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/ellomar/puzzlebox/internal/content"
)

// Persister loads and saves the serialized game-state snapshot.
// Load returns (nil, nil) when no snapshot exists yet.
type Persister interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// Store is the explicit state container behind every screen: it owns the
// GameState, applies updates, recomputes derived flags, and writes through to
// the persister after each mutation. Mutations are serialized, so persistence
// write N always reflects state transition N before write N+1 begins.
type Store struct {
	mu      sync.Mutex
	game    GameState
	rules   Rules
	persist Persister
	logger  *log.Logger
}

// New creates a store, rehydrating from the persister when a snapshot exists.
// A missing, unreadable, or partially corrupt snapshot never fails: unusable
// fields fall back to defaults and the session simply starts fresh for those
// parts. persist may be nil for an unpersisted (in-memory) session.
func New(rules Rules, persist Persister, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}

	s := &Store{
		game:    DefaultGameState(rules),
		rules:   rules,
		persist: persist,
		logger:  logger,
	}

	if persist != nil {
		data, err := persist.Load()
		switch {
		case err != nil:
			logger.Warn("could not load saved progress, starting fresh", "error", err)
		case data != nil:
			s.game = decodeSnapshot(data, rules)
		}
	}

	return s
}

// Game returns a deep copy of the current state.
func (s *Store) Game() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Clone()
}

// Rules returns the content-derived rules the store was built with.
func (s *Store) Rules() Rules {
	return s.rules
}

// AllCompleted reports whether all three puzzles are solved.
func (s *Store) AllCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.AllCompleted
}

// SetCurrentPage performs an unconditional page transition.
func (s *Store) SetCurrentPage(p Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.CurrentPage = p
	s.save()
}

// RiddleUpdate is a partial update to the riddle record. Nil/absent fields are
// left untouched; Locked and SolvedLetters merge per riddle index so updating
// one riddle's locks never erases another's.
type RiddleUpdate struct {
	Current       *int
	Solved        map[int]bool
	HintsUsed     map[int]int
	Answers       map[int]string
	Locked        map[int][]int
	SolvedLetters map[int]string
}

// UpdateRiddleProgress merges a partial riddle update. Callers must not set a
// riddle solved without having validated the exact-match rule; the store does
// not re-check it.
func (s *Store) UpdateRiddleProgress(u RiddleUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.game.Progress.Riddles
	n := s.rules.RiddleCount()

	if u.Current != nil {
		c := *u.Current
		if c < 0 {
			c = 0
		}
		if c >= n && n > 0 {
			c = n - 1
		}
		p.Current = c
	}
	for i, v := range u.Solved {
		if i >= 0 && i < n {
			p.Solved[i] = v
		}
	}
	for i, v := range u.HintsUsed {
		if i >= 0 && i < n && v >= 0 {
			p.HintsUsed[i] = v
		}
	}
	for i, v := range u.Answers {
		if i >= 0 && i < n {
			p.Answers[i] = string(AnswerRunes(v, s.rules.SlotCount(i)))
		}
	}
	for i, positions := range u.Locked {
		if i < 0 || i >= n {
			continue
		}
		var valid []int
		for _, pos := range positions {
			if pos >= 0 && pos < s.rules.SlotCount(i) {
				valid = append(valid, pos)
			}
		}
		p.Locked[i] = mergePositions(p.Locked[i], valid)
	}
	for i, v := range u.SolvedLetters {
		if i >= 0 && i < n {
			p.SolvedLetters[i] = v
		}
	}

	s.game.recompute()
	s.save()
}

// WordUpdate is a partial update to the word record. The store performs no
// cross-field validation; the word engine maintains the solved/failed
// exclusivity.
type WordUpdate struct {
	Attempts       *[]string
	CurrentAttempt *string
	Solved         *bool
	Failed         *bool
}

// UpdateWordProgress merges a partial word update.
func (s *Store) UpdateWordProgress(u WordUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.game.Progress.Word
	if u.Attempts != nil {
		p.Attempts = append([]string(nil), (*u.Attempts)...)
	}
	if u.CurrentAttempt != nil {
		p.CurrentAttempt = *u.CurrentAttempt
	}
	if u.Solved != nil {
		p.Solved = *u.Solved
	}
	if u.Failed != nil {
		p.Failed = *u.Failed
	}

	s.game.recompute()
	s.save()
}

// GroupUpdate is a partial update to the group record. TriedSelections is
// append-only: listed keys are added to the existing set, preserving the
// monotonic-growth invariant.
type GroupUpdate struct {
	SolvedGroups     *[]int
	Attempts         *int
	TriedSelections  []string
	HintsUsed        *int
	LastHintWords    *[]string
	LastHintAttempts *int
	Solved           *bool
	Failed           *bool
}

// UpdateGroupProgress merges a partial group update.
func (s *Store) UpdateGroupProgress(u GroupUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.game.Progress.Groups
	if u.SolvedGroups != nil {
		p.SolvedGroups = append([]int(nil), (*u.SolvedGroups)...)
	}
	if u.Attempts != nil && *u.Attempts >= 0 {
		p.Attempts = *u.Attempts
	}
	for _, key := range u.TriedSelections {
		if !containsString(p.TriedSelections, key) {
			p.TriedSelections = append(p.TriedSelections, key)
		}
	}
	if u.HintsUsed != nil && *u.HintsUsed >= 0 {
		p.HintsUsed = *u.HintsUsed
	}
	if u.LastHintWords != nil {
		p.LastHintWords = append([]string(nil), (*u.LastHintWords)...)
	}
	if u.LastHintAttempts != nil {
		p.LastHintAttempts = *u.LastHintAttempts
	}
	if u.Solved != nil {
		p.Solved = *u.Solved
	}
	if u.Failed != nil {
		p.Failed = *u.Failed
	}

	s.game.recompute()
	s.save()
}

// ResetGroupProgress replaces the group record with defaults. The riddle and
// word records and the current page are untouched. This is the only way to
// clear a failed group puzzle.
func (s *Store) ResetGroupProgress() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Progress.Groups = DefaultGroupProgress()
	s.game.recompute()
	s.save()
}

// ResetAllProgress discards all three puzzle records and returns to the hub.
func (s *Store) ResetAllProgress() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Progress = DefaultProgress(s.rules)
	s.game.CurrentPage = PageHub
	s.game.recompute()
	s.save()
}

// PuzzleStatus derives the hub status for one puzzle.
func (s *Store) PuzzleStatus(id PuzzleID) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch id {
	case PuzzleRiddles:
		p := s.game.Progress.Riddles
		if p.RiddlesSolved() {
			return StatusSolved
		}
		if p.AnyInput() {
			return StatusInProgress
		}
	case PuzzleWord:
		p := s.game.Progress.Word
		if p.Solved {
			return StatusSolved
		}
		if len(p.Attempts) > 0 {
			return StatusInProgress
		}
	case PuzzleGroups:
		p := s.game.Progress.Groups
		if p.Solved {
			return StatusSolved
		}
		if len(p.SolvedGroups) > 0 || p.Attempts > 0 {
			return StatusInProgress
		}
	}
	return StatusLocked
}

// save writes the full state through to the persister. Called with the mutex
// held, which serializes writes in mutation order. Failures are logged and
// never fail the mutation itself.
func (s *Store) save() {
	if s.persist == nil {
		return
	}
	data, err := json.Marshal(s.game)
	if err != nil {
		s.logger.Error("could not serialize progress", "error", err)
		return
	}
	if err := s.persist.Save(data); err != nil {
		s.logger.Warn("could not persist progress", "error", err)
	}
}

// MaxHints re-exports the shared hint cap for convenience of state callers.
const MaxHints = content.MaxHints

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
