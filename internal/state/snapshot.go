package state

import (
	"encoding/json"
	"sort"

	"github.com/ellomar/puzzlebox/internal/letters"
)

// decodeSnapshot rehydrates a persisted snapshot, reconciling it field by
// field against defaults for the current rules. A field that is absent or
// fails to parse falls back to its default without discarding the rest of the
// snapshot, so partial corruption never erases unrelated progress. The result
// is then sanitized so no invariant from the data model can be violated by a
// hostile or stale snapshot.
func decodeSnapshot(data []byte, rules Rules) GameState {
	game := DefaultGameState(rules)

	var top struct {
		CurrentPage json.RawMessage `json:"currentPage"`
		Progress    struct {
			Riddles json.RawMessage `json:"riddles"`
			Word    json.RawMessage `json:"word"`
			Groups  json.RawMessage `json:"groups"`
		} `json:"progress"`
	}
	if err := json.Unmarshal(data, &top); err != nil {
		return game
	}

	var page Page
	if err := json.Unmarshal(top.CurrentPage, &page); err == nil && validPages[page] {
		game.CurrentPage = page
	}

	game.Progress.Riddles = decodeRiddles(top.Progress.Riddles, rules)
	game.Progress.Word = decodeWord(top.Progress.Word, rules)
	game.Progress.Groups = decodeGroups(top.Progress.Groups, rules)

	// AllCompleted is derived, never trusted from disk.
	game.recompute()
	return game
}

// setField decodes one raw field into dst, leaving dst untouched on any
// parse failure or absence.
func setField[T any](fields map[string]json.RawMessage, name string, dst *T) {
	raw, ok := fields[name]
	if !ok {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return
	}
	*dst = v
}

func decodeRiddles(raw json.RawMessage, rules Rules) RiddleProgress {
	p := DefaultRiddleProgress(rules)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return p
	}

	var (
		current       int
		solved        []bool
		hintsUsed     []int
		answers       []string
		locked        map[int][]int
		solvedLetters map[int]string
	)
	setField(fields, "current", &current)
	setField(fields, "solved", &solved)
	setField(fields, "hintsUsed", &hintsUsed)
	setField(fields, "answers", &answers)
	setField(fields, "locked", &locked)
	setField(fields, "solvedLetters", &solvedLetters)

	n := rules.RiddleCount()

	p.Current = clamp(current, 0, n-1)
	for i := 0; i < n && i < len(solved); i++ {
		p.Solved[i] = solved[i]
	}
	for i := 0; i < n && i < len(hintsUsed); i++ {
		p.HintsUsed[i] = clamp(hintsUsed[i], 0, MaxHints)
	}
	for i := 0; i < n && i < len(answers); i++ {
		p.Answers[i] = string(AnswerRunes(answers[i], rules.SlotCount(i)))
	}
	for i, positions := range locked {
		if i < 0 || i >= n {
			continue
		}
		var valid []int
		for _, pos := range positions {
			if pos >= 0 && pos < rules.SlotCount(i) {
				valid = append(valid, pos)
			}
		}
		if len(valid) > 0 {
			sort.Ints(valid)
			p.Locked[i] = dedupeInts(valid)
		}
	}
	for i, v := range solvedLetters {
		if i >= 0 && i < n {
			p.SolvedLetters[i] = string(AnswerRunes(v, rules.SlotCount(i)))
		}
	}

	sanitizeRiddles(&p, rules)
	return p
}

// sanitizeRiddles enforces the data-model invariants against loaded data:
// a locked position always holds the answer's character, and a solved riddle
// is fully locked with its snapshot intact.
func sanitizeRiddles(p *RiddleProgress, rules Rules) {
	for i := range p.Answers {
		answerSlots := letters.Slots(rules.RiddleAnswers[i])

		if p.Solved[i] {
			// Solved rows redisplay from the snapshot; reconstruct it from
			// content if the snapshot itself was lost.
			if snap, ok := p.SolvedLetters[i]; !ok || hasEmptySlot(snap) {
				p.SolvedLetters[i] = string(answerSlots)
			}
			p.Answers[i] = p.SolvedLetters[i]
			all := make([]int, len(answerSlots))
			for pos := range all {
				all[pos] = pos
			}
			p.Locked[i] = all
			continue
		}

		// Locked positions must agree with the answer character.
		runes := AnswerRunes(p.Answers[i], len(answerSlots))
		for _, pos := range p.Locked[i] {
			runes[pos] = answerSlots[pos]
		}
		p.Answers[i] = string(runes)
	}
}

func decodeWord(raw json.RawMessage, rules Rules) WordProgress {
	p := DefaultWordProgress()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return p
	}

	var (
		attempts       []string
		currentAttempt string
		solved         bool
		failed         bool
	)
	setField(fields, "attempts", &attempts)
	setField(fields, "currentAttempt", &currentAttempt)
	setField(fields, "solved", &solved)
	setField(fields, "failed", &failed)

	// Keep only attempts of the target's length, preserving order, capped at
	// the attempt limit.
	for _, a := range attempts {
		if len([]rune(a)) == rules.WordLength() && len(p.Attempts) < rules.WordMaxAttempts {
			p.Attempts = append(p.Attempts, a)
		}
	}
	if len([]rune(currentAttempt)) <= rules.WordLength() {
		p.CurrentAttempt = currentAttempt
	}
	p.Solved = solved
	// solved and failed are mutually exclusive; failed only holds at the
	// attempt limit.
	p.Failed = failed && !solved && len(p.Attempts) >= rules.WordMaxAttempts

	return p
}

func decodeGroups(raw json.RawMessage, rules Rules) GroupProgress {
	p := DefaultGroupProgress()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return p
	}

	var (
		solvedGroups     []int
		attempts         int
		triedSelections  []string
		hintsUsed        int
		lastHintWords    []string
		lastHintAttempts int
	)
	setField(fields, "solvedGroups", &solvedGroups)
	setField(fields, "attempts", &attempts)
	setField(fields, "triedSelections", &triedSelections)
	setField(fields, "hintsUsed", &hintsUsed)
	setField(fields, "lastHintWords", &lastHintWords)
	setField(fields, "lastHintAttempts", &lastHintAttempts)

	for _, g := range solvedGroups {
		if g >= 0 && g < rules.GroupCount && !containsInt(p.SolvedGroups, g) {
			p.SolvedGroups = append(p.SolvedGroups, g)
		}
	}
	sort.Ints(p.SolvedGroups)

	p.Attempts = clamp(attempts, 0, rules.GroupMaxAttempts)
	for _, key := range triedSelections {
		if key != "" && !containsString(p.TriedSelections, key) {
			p.TriedSelections = append(p.TriedSelections, key)
		}
	}
	p.HintsUsed = clamp(hintsUsed, 0, MaxHints)
	p.LastHintWords = lastHintWords
	if p.LastHintWords == nil {
		p.LastHintWords = []string{}
	}
	p.LastHintAttempts = clamp(lastHintAttempts, 0, rules.GroupMaxAttempts)

	// Terminal flags are derived, not trusted.
	p.Solved = len(p.SolvedGroups) == rules.GroupCount && rules.GroupCount > 0
	p.Failed = !p.Solved && p.Attempts >= rules.GroupMaxAttempts

	return p
}

func hasEmptySlot(encoded string) bool {
	for _, r := range encoded {
		if r == SlotEmpty {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func dedupeInts(sorted []int) []int {
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
