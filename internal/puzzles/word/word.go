// Package word implements the word-guessing puzzle: the two-pass per-letter
// evaluator, cumulative keyboard statuses, and the attempt/terminal-state
// rules applied on submit.
package word

import (
	"errors"

	"github.com/ellomar/puzzlebox/internal/letters"
	"github.com/ellomar/puzzlebox/internal/state"
)

// Status is the per-letter evaluation result, ordered by display priority so
// keyboard statuses can only ever upgrade.
type Status int

const (
	StatusUnset Status = iota
	StatusAbsent
	StatusPresent
	StatusCorrect
)

// LetterScore pairs a guess glyph with its status. Rune keeps the original
// (non-canonicalized) character so shape variants render as typed.
type LetterScore struct {
	Rune   rune
	Status Status
}

// Validation errors reported back to the caller. These are results, not
// faults; the UI decides how to display them.
var (
	ErrWrongLength = errors.New("word: guess length does not match target")
	ErrFinished    = errors.New("word: puzzle already finished")
)

// Evaluate compares a guess against the target word, producing one status per
// target letter. Both sides are canonicalized before comparison so positional
// letter-shape variants never affect matching. Inputs are assumed equal
// length; Submit validates before calling.
func Evaluate(guess, target string) []LetterScore {
	guessRunes := []rune(guess)
	targetRunes := []rune(target)
	n := len(targetRunes)

	scores := make([]LetterScore, n)
	consumed := make([]bool, n)

	// First pass: exact positional matches.
	for i := 0; i < n; i++ {
		scores[i].Rune = guessRunes[i]
		if letters.Canonical(guessRunes[i]) == letters.Canonical(targetRunes[i]) {
			scores[i].Status = StatusCorrect
			consumed[i] = true
		}
	}

	// Second pass: remaining letters consume unconsumed target positions
	// left to right, so shared letters are never over-counted.
	for i := 0; i < n; i++ {
		if scores[i].Status == StatusCorrect {
			continue
		}
		scores[i].Status = StatusAbsent
		want := letters.Canonical(guessRunes[i])
		for j := 0; j < n; j++ {
			if !consumed[j] && letters.Canonical(targetRunes[j]) == want {
				scores[i].Status = StatusPresent
				consumed[j] = true
				break
			}
		}
	}

	return scores
}

// UpgradeKeys folds one guess's scores into the cumulative per-key display
// statuses. Keys are canonical letters; a key's status only ever upgrades
// along correct > present > absent > unset, never downgrades.
func UpgradeKeys(keys map[rune]Status, scores []LetterScore) {
	for _, sc := range scores {
		key := letters.Canonical(sc.Rune)
		if sc.Status > keys[key] {
			keys[key] = sc.Status
		}
	}
}

// KeyStatuses rebuilds the cumulative keyboard statuses from a list of past
// attempts, used when rehydrating a session.
func KeyStatuses(attempts []string, target string) map[rune]Status {
	keys := make(map[rune]Status)
	for _, a := range attempts {
		UpgradeKeys(keys, Evaluate(a, target))
	}
	return keys
}

// Result is the outcome of a submitted guess.
type Result struct {
	Scores []LetterScore
	Solved bool
	Failed bool
}

// Submit validates and scores a guess against the word progress record.
// It returns the partial update to apply to the store and the scored result.
// The solved and failed flags are mutually exclusive: solved when the guess
// matches the target exactly (canonical forms), failed when the attempt limit
// is reached without a solve.
func Submit(p state.WordProgress, guess, target string, maxAttempts int) (state.WordUpdate, Result, error) {
	var res Result

	if p.Solved || p.Failed {
		return state.WordUpdate{}, res, ErrFinished
	}
	if len([]rune(guess)) != len([]rune(target)) {
		return state.WordUpdate{}, res, ErrWrongLength
	}

	res.Scores = Evaluate(guess, target)
	res.Solved = letters.Equal(guess, target)

	attempts := append(append([]string(nil), p.Attempts...), guess)
	res.Failed = !res.Solved && len(attempts) >= maxAttempts

	empty := ""
	upd := state.WordUpdate{
		Attempts:       &attempts,
		CurrentAttempt: &empty,
		Solved:         &res.Solved,
		Failed:         &res.Failed,
	}
	return upd, res, nil
}

// Restart returns the update that clears the record back to defaults,
// available from both the solved and failed terminal states.
func Restart() state.WordUpdate {
	empty := ""
	attempts := []string{}
	no := false
	return state.WordUpdate{
		Attempts:       &attempts,
		CurrentAttempt: &empty,
		Solved:         &no,
		Failed:         &no,
	}
}
