// Package state implements the persisted game-state machine: per-puzzle
// progress records, partial-update merging, derived status queries, and
// write-through persistence. It is the single source of truth the puzzle
// screens read from and mutate through.
//
// The store does not validate puzzle rules. Submitting guesses, locking
// letters, and counting attempts is the job of the puzzle engines; the store
// guarantees that applying any update leaves the state well formed.
package state

import (
	"sort"

	"github.com/ellomar/puzzlebox/internal/content"
	"github.com/ellomar/puzzlebox/internal/letters"
)

// Page identifies the screen the player is on.
type Page string

const (
	PageLanding Page = "landing"
	PageHub     Page = "hub"
	PageRiddles Page = "riddles"
	PageWord    Page = "word"
	PageGroups  Page = "groups"
	PageFinal   Page = "final"
)

// validPages is consulted when rehydrating a snapshot.
var validPages = map[Page]bool{
	PageLanding: true,
	PageHub:     true,
	PageRiddles: true,
	PageWord:    true,
	PageGroups:  true,
	PageFinal:   true,
}

// PuzzleID identifies one of the three puzzles.
type PuzzleID string

const (
	PuzzleRiddles PuzzleID = "riddles"
	PuzzleWord    PuzzleID = "word"
	PuzzleGroups  PuzzleID = "groups"
)

// Status is the derived per-puzzle status shown on the hub.
// StatusLocked means "not yet started", not "inaccessible"; every puzzle is
// reachable from the hub regardless of status.
type Status int

const (
	StatusLocked Status = iota
	StatusInProgress
	StatusSolved
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusInProgress:
		return "in progress"
	default:
		return "not started"
	}
}

// SlotEmpty is the explicit empty-slot sentinel used in encoded riddle
// answers. Each slot of an answer string is either a typed letter or this
// rune, so interior empty positions never shift their neighbours.
const SlotEmpty rune = '·'

// GameState is the root record, persisted as a whole after every mutation.
type GameState struct {
	CurrentPage  Page     `json:"currentPage"`
	Progress     Progress `json:"progress"`
	AllCompleted bool     `json:"allCompleted"`
}

// Progress is the composite of the three independent puzzle records.
type Progress struct {
	Riddles RiddleProgress `json:"riddles"`
	Word    WordProgress   `json:"word"`
	Groups  GroupProgress  `json:"groups"`
}

// RiddleProgress tracks the letter-fill riddle set.
type RiddleProgress struct {
	// Current is the riddle the player is viewing, wrapping on navigation.
	Current int `json:"current"`
	// Solved is set per riddle and never reset.
	Solved []bool `json:"solved"`
	// HintsUsed counts reveal-letter uses per riddle, capped by the engine.
	HintsUsed []int `json:"hintsUsed"`
	// Answers holds the encoded per-slot input per riddle (see SlotEmpty).
	Answers []string `json:"answers"`
	// Locked maps riddle index to the letter positions the player can no
	// longer edit. Merged key-wise on update, never replaced wholesale.
	Locked map[int][]int `json:"locked"`
	// SolvedLetters snapshots the full letter row at the moment a riddle was
	// solved, so a solved riddle redisplays exactly. Keyed per riddle.
	SolvedLetters map[int]string `json:"solvedLetters"`
}

// WordProgress tracks the word-guessing puzzle.
type WordProgress struct {
	Attempts       []string `json:"attempts"`
	CurrentAttempt string   `json:"currentAttempt"`
	Solved         bool     `json:"solved"`
	Failed         bool     `json:"failed"`
}

// GroupProgress tracks the grouping puzzle.
type GroupProgress struct {
	SolvedGroups []int `json:"solvedGroups"`
	// Attempts counts unique incorrect selections; duplicates of a previously
	// tried wrong selection do not increment it.
	Attempts int `json:"attempts"`
	// TriedSelections holds the canonical keys of every submitted selection.
	// It only ever grows.
	TriedSelections  []string `json:"triedSelections"`
	HintsUsed        int      `json:"hintsUsed"`
	LastHintWords    []string `json:"lastHintWords"`
	LastHintAttempts int      `json:"lastHintAttempts"`
	Solved           bool     `json:"solved"`
	Failed           bool     `json:"failed"`
}

// Rules captures the content-derived shape of the puzzles: answer layouts and
// attempt limits. The store needs it to size defaults and to reconcile loaded
// snapshots against the current content.
type Rules struct {
	RiddleAnswers    []string
	WordTarget       string
	WordMaxAttempts  int
	GroupCount       int
	GroupMaxAttempts int
}

// RulesFor derives Rules from loaded content.
func RulesFor(c *content.Content) Rules {
	answers := make([]string, len(c.Riddles))
	for i, r := range c.Riddles {
		answers[i] = r.Answer
	}
	return Rules{
		RiddleAnswers:    answers,
		WordTarget:       c.Word.Target,
		WordMaxAttempts:  c.Word.MaxAttempts,
		GroupCount:       len(c.Groups.Sets),
		GroupMaxAttempts: c.Groups.MaxAttempts,
	}
}

// RiddleCount returns the number of riddles.
func (r Rules) RiddleCount() int { return len(r.RiddleAnswers) }

// SlotCount returns the input-position count of riddle i (spaces excluded).
func (r Rules) SlotCount(i int) int {
	if i < 0 || i >= len(r.RiddleAnswers) {
		return 0
	}
	return len(letters.Slots(r.RiddleAnswers[i]))
}

// WordLength returns the target word's slot count.
func (r Rules) WordLength() int { return len(letters.Slots(r.WordTarget)) }

// EmptyAnswer returns an encoded answer of n empty slots.
func EmptyAnswer(n int) string {
	slots := make([]rune, n)
	for i := range slots {
		slots[i] = SlotEmpty
	}
	return string(slots)
}

// AnswerRunes decodes an encoded answer into exactly n slots, padding or
// truncating so callers can index positions safely.
func AnswerRunes(encoded string, n int) []rune {
	runes := []rune(encoded)
	if len(runes) > n {
		runes = runes[:n]
	}
	for len(runes) < n {
		runes = append(runes, SlotEmpty)
	}
	return runes
}

// DefaultRiddleProgress returns the fresh riddle record for the given rules.
func DefaultRiddleProgress(r Rules) RiddleProgress {
	n := r.RiddleCount()
	p := RiddleProgress{
		Solved:        make([]bool, n),
		HintsUsed:     make([]int, n),
		Answers:       make([]string, n),
		Locked:        make(map[int][]int),
		SolvedLetters: make(map[int]string),
	}
	for i := range p.Answers {
		p.Answers[i] = EmptyAnswer(r.SlotCount(i))
	}
	return p
}

// DefaultWordProgress returns the fresh word record.
func DefaultWordProgress() WordProgress {
	return WordProgress{Attempts: []string{}}
}

// DefaultGroupProgress returns the fresh group record.
func DefaultGroupProgress() GroupProgress {
	return GroupProgress{
		SolvedGroups:    []int{},
		TriedSelections: []string{},
		LastHintWords:   []string{},
	}
}

// DefaultProgress returns all three fresh puzzle records.
func DefaultProgress(r Rules) Progress {
	return Progress{
		Riddles: DefaultRiddleProgress(r),
		Word:    DefaultWordProgress(),
		Groups:  DefaultGroupProgress(),
	}
}

// DefaultGameState returns the initial state of a brand-new session.
func DefaultGameState(r Rules) GameState {
	return GameState{
		CurrentPage: PageLanding,
		Progress:    DefaultProgress(r),
	}
}

// RiddlesSolved reports whether every riddle is solved.
func (p RiddleProgress) RiddlesSolved() bool {
	if len(p.Solved) == 0 {
		return false
	}
	for _, s := range p.Solved {
		if !s {
			return false
		}
	}
	return true
}

// AnyInput reports whether any riddle has a filled slot or is solved.
func (p RiddleProgress) AnyInput() bool {
	for _, s := range p.Solved {
		if s {
			return true
		}
	}
	for _, a := range p.Answers {
		for _, r := range a {
			if r != SlotEmpty {
				return true
			}
		}
	}
	return false
}

// LockedAt reports whether position pos of riddle i is locked.
func (p RiddleProgress) LockedAt(i, pos int) bool {
	for _, l := range p.Locked[i] {
		if l == pos {
			return true
		}
	}
	return false
}

// recompute refreshes the derived completion flag. Called after every
// mutation to Progress; never invoked by callers directly.
func (g *GameState) recompute() {
	g.AllCompleted = g.Progress.Riddles.RiddlesSolved() &&
		g.Progress.Word.Solved &&
		g.Progress.Groups.Solved
}

// Clone returns a deep copy so callers can hold a snapshot without aliasing
// the store's maps and slices.
func (g GameState) Clone() GameState {
	out := g
	out.Progress.Riddles = g.Progress.Riddles.clone()
	out.Progress.Word.Attempts = append([]string(nil), g.Progress.Word.Attempts...)
	out.Progress.Groups = g.Progress.Groups.clone()
	return out
}

func (p RiddleProgress) clone() RiddleProgress {
	out := p
	out.Solved = append([]bool(nil), p.Solved...)
	out.HintsUsed = append([]int(nil), p.HintsUsed...)
	out.Answers = append([]string(nil), p.Answers...)
	out.Locked = make(map[int][]int, len(p.Locked))
	for k, v := range p.Locked {
		out.Locked[k] = append([]int(nil), v...)
	}
	out.SolvedLetters = make(map[int]string, len(p.SolvedLetters))
	for k, v := range p.SolvedLetters {
		out.SolvedLetters[k] = v
	}
	return out
}

func (p GroupProgress) clone() GroupProgress {
	out := p
	out.SolvedGroups = append([]int(nil), p.SolvedGroups...)
	out.TriedSelections = append([]string(nil), p.TriedSelections...)
	out.LastHintWords = append([]string(nil), p.LastHintWords...)
	return out
}

// mergePositions unions two sorted-or-not position lists into a sorted,
// deduplicated list.
func mergePositions(a, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	var out []int
	for _, lists := range [][]int{a, b} {
		for _, p := range lists {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	sort.Ints(out)
	return out
}
