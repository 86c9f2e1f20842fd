package state

import (
	"testing"
)

func decode(t *testing.T, data string) GameState {
	t.Helper()
	return decodeSnapshot([]byte(data), testRules())
}

func TestDecodeGarbageFallsBackToDefaults(t *testing.T) {
	g := decode(t, "not json at all")
	if g.CurrentPage != PageLanding {
		t.Errorf("page = %q, want landing default", g.CurrentPage)
	}
	if len(g.Progress.Riddles.Answers) != 3 {
		t.Errorf("answers sized %d, want 3", len(g.Progress.Riddles.Answers))
	}
}

func TestDecodePartialCorruptionKeepsGoodFields(t *testing.T) {
	// The riddle section is corrupt; the word section is intact. Partial
	// corruption must not erase unrelated progress.
	g := decode(t, `{
		"currentPage": "word",
		"progress": {
			"riddles": "totally broken",
			"word": {"attempts": ["CANDID"], "solved": false, "failed": false},
			"groups": 42
		}
	}`)

	if g.CurrentPage != PageWord {
		t.Errorf("page = %q, want word", g.CurrentPage)
	}
	if len(g.Progress.Word.Attempts) != 1 || g.Progress.Word.Attempts[0] != "CANDID" {
		t.Errorf("word attempts = %v, want the intact attempt", g.Progress.Word.Attempts)
	}
	if len(g.Progress.Riddles.Answers) != 3 {
		t.Error("corrupt riddle section should fall back to defaults")
	}
	if g.Progress.Groups.Attempts != 0 {
		t.Error("corrupt group section should fall back to defaults")
	}
}

func TestDecodeFieldLevelCorruption(t *testing.T) {
	// One field of the riddle record is the wrong type; its siblings survive.
	g := decode(t, `{
		"progress": {
			"riddles": {
				"current": "NaN",
				"solved": [true, false, false],
				"hintsUsed": [1, 0, 0],
				"answers": ["ECHO", "·········", "·····"]
			}
		}
	}`)

	r := g.Progress.Riddles
	if r.Current != 0 {
		t.Errorf("current = %d, want default 0 for unparseable field", r.Current)
	}
	if !r.Solved[0] {
		t.Error("solved flags should survive a sibling field failure")
	}
	if r.HintsUsed[0] != 1 {
		t.Errorf("hintsUsed[0] = %d, want 1", r.HintsUsed[0])
	}
}

func TestDecodeUnknownPageFallsBack(t *testing.T) {
	g := decode(t, `{"currentPage": "bogus"}`)
	if g.CurrentPage != PageLanding {
		t.Errorf("page = %q, want landing for unknown page", g.CurrentPage)
	}
}

func TestDecodeClampsAgainstRules(t *testing.T) {
	g := decode(t, `{
		"progress": {
			"riddles": {
				"current": 99,
				"hintsUsed": [7, 0, 0],
				"locked": {"0": [0, 1, 99, -3], "9": [0]}
			},
			"groups": {"attempts": 50, "hintsUsed": 9, "solvedGroups": [0, 0, 5]}
		}
	}`)

	r := g.Progress.Riddles
	if r.Current != 2 {
		t.Errorf("current = %d, want clamped to 2", r.Current)
	}
	if r.HintsUsed[0] != MaxHints {
		t.Errorf("hintsUsed[0] = %d, want capped at %d", r.HintsUsed[0], MaxHints)
	}
	for _, pos := range r.Locked[0] {
		if pos < 0 || pos >= 4 {
			t.Errorf("lock position %d out of range", pos)
		}
	}
	if _, ok := r.Locked[9]; ok {
		t.Error("locks for a nonexistent riddle should be dropped")
	}

	gr := g.Progress.Groups
	if gr.Attempts != 4 {
		t.Errorf("attempts = %d, want capped at 4", gr.Attempts)
	}
	if gr.HintsUsed != MaxHints {
		t.Errorf("hintsUsed = %d, want capped", gr.HintsUsed)
	}
	if len(gr.SolvedGroups) != 1 || gr.SolvedGroups[0] != 0 {
		t.Errorf("solvedGroups = %v, want deduplicated in-range {0}", gr.SolvedGroups)
	}
}

func TestDecodeEnforcesLockInvariant(t *testing.T) {
	// A locked position claiming the wrong character is rewritten with the
	// answer's character (riddle 0 answer is ECHO).
	g := decode(t, `{
		"progress": {
			"riddles": {
				"answers": ["XQHO", "·········", "·····"],
				"locked": {"0": [0, 1]}
			}
		}
	}`)

	if got := g.Progress.Riddles.Answers[0]; got != "ECHO" {
		t.Errorf("answer = %q, want locked positions restored to the answer", got)
	}
}

func TestDecodeSolvedRiddleRelocksRow(t *testing.T) {
	// A solved riddle with a missing snapshot is reconstructed and fully locked.
	g := decode(t, `{
		"progress": {
			"riddles": {"solved": [true, false, false]}
		}
	}`)

	r := g.Progress.Riddles
	if r.SolvedLetters[0] != "ECHO" {
		t.Errorf("snapshot = %q, want reconstructed answer", r.SolvedLetters[0])
	}
	if len(r.Locked[0]) != 4 {
		t.Errorf("locked = %v, want the full row", r.Locked[0])
	}
	if r.Answers[0] != "ECHO" {
		t.Errorf("answer = %q, want the solved row", r.Answers[0])
	}
}

func TestDecodeDerivesTerminalFlags(t *testing.T) {
	// Group terminal flags come from the counts, never from disk.
	g := decode(t, `{
		"progress": {
			"groups": {"solvedGroups": [0, 1], "solved": false, "failed": true, "attempts": 1}
		}
	}`)
	if !g.Progress.Groups.Solved {
		t.Error("all groups solved should derive solved = true")
	}
	if g.Progress.Groups.Failed {
		t.Error("solved record must not be failed")
	}

	// Word failed claim without the attempts to back it is dropped.
	g = decode(t, `{
		"progress": {
			"word": {"attempts": ["AAAAAA"], "failed": true}
		}
	}`)
	if g.Progress.Word.Failed {
		t.Error("failed requires the attempt limit to be reached")
	}
}

func TestDecodeDropsWrongLengthAttempts(t *testing.T) {
	g := decode(t, `{
		"progress": {
			"word": {"attempts": ["TOOLONGWORD", "CANDID", "AB"]}
		}
	}`)
	if len(g.Progress.Word.Attempts) != 1 || g.Progress.Word.Attempts[0] != "CANDID" {
		t.Errorf("attempts = %v, want only the six-letter attempt", g.Progress.Word.Attempts)
	}
}

func TestDecodeRecomputesAllCompleted(t *testing.T) {
	// A snapshot claiming completion without solved puzzles is not trusted.
	g := decode(t, `{"allCompleted": true}`)
	if g.AllCompleted {
		t.Error("allCompleted must be derived, not loaded")
	}
}
