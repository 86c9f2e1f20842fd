package groups

import (
	"errors"
	"strings"

	"golang.org/x/text/collate"

	"github.com/ellomar/puzzlebox/internal/content"
	"github.com/ellomar/puzzlebox/internal/state"
)

// Validation errors reported back to the caller as results, never faults.
var (
	ErrSelectionSize = errors.New("groups: selection must contain exactly four items")
	ErrFinished      = errors.New("groups: puzzle already finished")
	ErrHintLimit     = errors.New("groups: no hints remaining")
	ErrNothingToHint = errors.New("groups: no unsolved groups to hint")
)

// hintReveal is how many of a group's items a hint uncovers.
const hintReveal = 2

// Result is the outcome of a submitted selection.
type Result struct {
	// Duplicate is set when the selection was already tried; duplicates never
	// consume an attempt.
	Duplicate bool
	// GroupIndex is the solved group's index, or -1 for a miss.
	GroupIndex int
	// OneAway is set on a miss when three of the four picks share a group.
	OneAway bool
	Solved  bool
	Failed  bool
}

// Submit evaluates a 4-item selection against the content's groups.
// A selection matching an unsolved group solves it; a wrong selection not
// tried before consumes one attempt. The same wrong selection submitted twice
// counts once.
func Submit(p state.GroupProgress, picks []string, defs []content.Group, maxAttempts int, c *collate.Collator) (state.GroupUpdate, Result, error) {
	res := Result{GroupIndex: -1}

	if p.Solved || p.Failed {
		return state.GroupUpdate{}, res, ErrFinished
	}

	cleaned := cleanPicks(picks)
	if len(cleaned) != content.GroupSize {
		return state.GroupUpdate{}, res, ErrSelectionSize
	}

	key := Key(cleaned, c)
	if containsString(p.TriedSelections, key) {
		res.Duplicate = true
		return state.GroupUpdate{}, res, nil
	}

	upd := state.GroupUpdate{TriedSelections: []string{key}}

	if idx := matchGroup(cleaned, defs, p.SolvedGroups); idx >= 0 {
		res.GroupIndex = idx
		solvedGroups := append(append([]int(nil), p.SolvedGroups...), idx)
		upd.SolvedGroups = &solvedGroups

		res.Solved = len(solvedGroups) == len(defs)
		upd.Solved = &res.Solved

		// A solve consumes any pending hint that pointed at this group.
		if len(p.LastHintWords) > 0 && allIn(p.LastHintWords, defs[idx].Items) {
			none := []string{}
			upd.LastHintWords = &none
		}
		return upd, res, nil
	}

	attempts := p.Attempts + 1
	upd.Attempts = &attempts
	res.OneAway = oneAway(cleaned, defs, p.SolvedGroups)
	res.Failed = attempts >= maxAttempts
	upd.Failed = &res.Failed

	return upd, res, nil
}

// HintResult carries the revealed items of one unsolved group.
type HintResult struct {
	GroupIndex int
	Words      []string
}

// Hint reveals two items of the first unsolved group. Repeating the request
// without an intervening attempt or solve returns the same words without
// consuming another hint; once invalidated, a fresh hint costs one of the two
// available.
func Hint(p state.GroupProgress, defs []content.Group, maxHints int) (state.GroupUpdate, HintResult, error) {
	if p.Solved || p.Failed {
		return state.GroupUpdate{}, HintResult{}, ErrFinished
	}

	// Idempotent replay of the standing hint.
	if len(p.LastHintWords) > 0 && p.LastHintAttempts == p.Attempts {
		if idx := groupOf(p.LastHintWords, defs); idx >= 0 && !containsInt(p.SolvedGroups, idx) {
			return state.GroupUpdate{}, HintResult{GroupIndex: idx, Words: append([]string(nil), p.LastHintWords...)}, nil
		}
	}

	if p.HintsUsed >= maxHints {
		return state.GroupUpdate{}, HintResult{}, ErrHintLimit
	}

	for idx, g := range defs {
		if containsInt(p.SolvedGroups, idx) {
			continue
		}
		words := append([]string(nil), g.Items[:hintReveal]...)
		hintsUsed := p.HintsUsed + 1
		lastAttempts := p.Attempts
		upd := state.GroupUpdate{
			HintsUsed:        &hintsUsed,
			LastHintWords:    &words,
			LastHintAttempts: &lastAttempts,
		}
		return upd, HintResult{GroupIndex: idx, Words: words}, nil
	}

	return state.GroupUpdate{}, HintResult{}, ErrNothingToHint
}

// cleanPicks trims and drops empty picks, mirroring key canonicalization.
func cleanPicks(picks []string) []string {
	out := make([]string, 0, len(picks))
	for _, pick := range picks {
		pick = strings.TrimSpace(pick)
		if pick != "" {
			out = append(out, pick)
		}
	}
	return out
}

// matchGroup returns the index of the unsolved group whose items equal the
// selection as a multiset, or -1.
func matchGroup(picks []string, defs []content.Group, solved []int) int {
	for idx, g := range defs {
		if containsInt(solved, idx) {
			continue
		}
		if sharedCount(picks, g.Items) == content.GroupSize {
			return idx
		}
	}
	return -1
}

// oneAway reports whether exactly three picks belong to a single unsolved group.
func oneAway(picks []string, defs []content.Group, solved []int) bool {
	for idx, g := range defs {
		if containsInt(solved, idx) {
			continue
		}
		if sharedCount(picks, g.Items) == content.GroupSize-1 {
			return true
		}
	}
	return false
}

// groupOf returns the index of the group containing all the given words, or -1.
func groupOf(words []string, defs []content.Group) int {
	for idx, g := range defs {
		if allIn(words, g.Items) {
			return idx
		}
	}
	return -1
}

func sharedCount(picks, items []string) int {
	count := 0
	for _, p := range picks {
		if containsString(items, p) {
			count++
		}
	}
	return count
}

func allIn(words, items []string) bool {
	for _, w := range words {
		if !containsString(items, w) {
			return false
		}
	}
	return len(words) > 0
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
