// Package riddle implements the letter-fill riddle set: per-position editing,
// the reveal/lock state machine, hint targeting in reading order, and the
// exact-match solve rule.
//
// Each letter position moves empty -> player-filled -> (locked | player-filled).
// A position locks when a hint reveals it or when a failed submission shows it
// was already correct; locked positions never unlock. Once a riddle is solved
// the whole row locks permanently through the solved snapshot.
package riddle

import (
	"errors"

	"github.com/ellomar/puzzlebox/internal/letters"
	"github.com/ellomar/puzzlebox/internal/state"
)

// Validation errors reported back to the caller as results, never faults.
var (
	ErrIndexRange       = errors.New("riddle: index out of range")
	ErrPositionRange    = errors.New("riddle: position out of range")
	ErrPositionLocked   = errors.New("riddle: position is locked")
	ErrIncomplete       = errors.New("riddle: answer has empty positions")
	ErrHintLimit        = errors.New("riddle: no hints remaining")
	ErrNoEmptyPositions = errors.New("riddle: no empty positions to reveal")
	ErrAlreadySolved    = errors.New("riddle: already solved")
)

// SetLetter types a character into an unlocked position of riddle i.
func SetLetter(p state.RiddleProgress, rules state.Rules, i, pos int, r rune) (state.RiddleUpdate, error) {
	if err := checkPosition(p, rules, i, pos); err != nil {
		return state.RiddleUpdate{}, err
	}

	slots := state.AnswerRunes(p.Answers[i], rules.SlotCount(i))
	slots[pos] = r
	return state.RiddleUpdate{Answers: map[int]string{i: string(slots)}}, nil
}

// ClearLetter deletes the character at an unlocked position of riddle i.
func ClearLetter(p state.RiddleProgress, rules state.Rules, i, pos int) (state.RiddleUpdate, error) {
	if err := checkPosition(p, rules, i, pos); err != nil {
		return state.RiddleUpdate{}, err
	}

	slots := state.AnswerRunes(p.Answers[i], rules.SlotCount(i))
	slots[pos] = state.SlotEmpty
	return state.RiddleUpdate{Answers: map[int]string{i: string(slots)}}, nil
}

func checkPosition(p state.RiddleProgress, rules state.Rules, i, pos int) error {
	if i < 0 || i >= rules.RiddleCount() {
		return ErrIndexRange
	}
	if p.Solved[i] {
		return ErrAlreadySolved
	}
	if pos < 0 || pos >= rules.SlotCount(i) {
		return ErrPositionRange
	}
	if p.LockedAt(i, pos) {
		return ErrPositionLocked
	}
	return nil
}

// SubmitResult is the outcome of submitting riddle i's current letters.
type SubmitResult struct {
	Solved bool
	// NewlyLocked lists the positions confirmed correct by a failed
	// submission. Empty on a solve (the whole row locks) and on a miss with
	// no partial matches.
	NewlyLocked []int
}

// Submit checks the current letters of riddle i against its answer.
// An exact canonical match solves the riddle, snapshots the full row, and
// locks every position; submitting an already-solved riddle is a no-op that
// still reports solved. A wrong guess auto-locks exactly the positions whose
// letters match the answer, writing the answer's display form so the player
// never re-loses a correct letter.
func Submit(p state.RiddleProgress, rules state.Rules, i int) (state.RiddleUpdate, SubmitResult, error) {
	if i < 0 || i >= rules.RiddleCount() {
		return state.RiddleUpdate{}, SubmitResult{}, ErrIndexRange
	}
	if p.Solved[i] {
		return state.RiddleUpdate{}, SubmitResult{Solved: true}, nil
	}

	answerSlots := letters.Slots(rules.RiddleAnswers[i])
	guess := state.AnswerRunes(p.Answers[i], len(answerSlots))

	for _, r := range guess {
		if r == state.SlotEmpty {
			return state.RiddleUpdate{}, SubmitResult{}, ErrIncomplete
		}
	}

	exact := true
	var matched []int
	for pos, r := range guess {
		if letters.Canonical(r) == letters.Canonical(answerSlots[pos]) {
			matched = append(matched, pos)
		} else {
			exact = false
		}
	}

	if exact {
		snapshot := string(answerSlots)
		all := make([]int, len(answerSlots))
		for pos := range all {
			all[pos] = pos
		}
		upd := state.RiddleUpdate{
			Solved:        map[int]bool{i: true},
			Answers:       map[int]string{i: snapshot},
			SolvedLetters: map[int]string{i: snapshot},
			Locked:        map[int][]int{i: all},
		}
		return upd, SubmitResult{Solved: true}, nil
	}

	// Wrong overall: lock the correct partials that are not locked yet and
	// rewrite them with the answer's character, preserving its display form.
	var newlyLocked []int
	for _, pos := range matched {
		if !p.LockedAt(i, pos) {
			newlyLocked = append(newlyLocked, pos)
			guess[pos] = answerSlots[pos]
		}
	}

	upd := state.RiddleUpdate{}
	if len(newlyLocked) > 0 {
		upd.Locked = map[int][]int{i: newlyLocked}
		upd.Answers = map[int]string{i: string(guess)}
	}
	return upd, SubmitResult{NewlyLocked: newlyLocked}, nil
}

// HintResult carries the revealed position and character.
type HintResult struct {
	Pos  int
	Rune rune
}

// Hint reveals the answer character at the first empty, unlocked position of
// riddle i in reading order and locks it. Hints are capped per riddle; a full
// row reports ErrNoEmptyPositions rather than silently doing nothing.
func Hint(p state.RiddleProgress, rules state.Rules, i, maxHints int) (state.RiddleUpdate, HintResult, error) {
	if i < 0 || i >= rules.RiddleCount() {
		return state.RiddleUpdate{}, HintResult{}, ErrIndexRange
	}
	if p.Solved[i] {
		return state.RiddleUpdate{}, HintResult{}, ErrAlreadySolved
	}
	if p.HintsUsed[i] >= maxHints {
		return state.RiddleUpdate{}, HintResult{}, ErrHintLimit
	}

	answer := rules.RiddleAnswers[i]
	answerSlots := letters.Slots(answer)
	guess := state.AnswerRunes(p.Answers[i], len(answerSlots))

	for _, pos := range letters.TraversalOrder(answer) {
		if guess[pos] != state.SlotEmpty || p.LockedAt(i, pos) {
			continue
		}
		guess[pos] = answerSlots[pos]
		upd := state.RiddleUpdate{
			Answers:   map[int]string{i: string(guess)},
			Locked:    map[int][]int{i: {pos}},
			HintsUsed: map[int]int{i: p.HintsUsed[i] + 1},
		}
		return upd, HintResult{Pos: pos, Rune: answerSlots[pos]}, nil
	}

	return state.RiddleUpdate{}, HintResult{}, ErrNoEmptyPositions
}

// Next moves to the following riddle, wrapping past the end.
func Next(p state.RiddleProgress, rules state.Rules) state.RiddleUpdate {
	next := (p.Current + 1) % rules.RiddleCount()
	return state.RiddleUpdate{Current: &next}
}

// Prev moves to the previous riddle, wrapping past the start.
func Prev(p state.RiddleProgress, rules state.Rules) state.RiddleUpdate {
	n := rules.RiddleCount()
	prev := (p.Current - 1 + n) % n
	return state.RiddleUpdate{Current: &prev}
}

// NextEmptyPos returns the first empty, unlocked position of riddle i in
// reading order, or -1 when the row is full. Focus navigation shares this
// traversal with the hint rule.
func NextEmptyPos(p state.RiddleProgress, rules state.Rules, i int) int {
	if i < 0 || i >= rules.RiddleCount() {
		return -1
	}
	guess := state.AnswerRunes(p.Answers[i], rules.SlotCount(i))
	for _, pos := range letters.TraversalOrder(rules.RiddleAnswers[i]) {
		if guess[pos] == state.SlotEmpty && !p.LockedAt(i, pos) {
			return pos
		}
	}
	return -1
}
