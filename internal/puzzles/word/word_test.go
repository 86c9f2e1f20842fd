package word

import (
	"testing"

	"github.com/ellomar/puzzlebox/internal/state"
)

func statuses(scores []LetterScore) []Status {
	out := make([]Status, len(scores))
	for i, s := range scores {
		out[i] = s.Status
	}
	return out
}

func equalStatuses(a, b []Status) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		target string
		want   []Status
	}{
		{
			name:   "all correct",
			guess:  "ABCDE",
			target: "ABCDE",
			want:   []Status{StatusCorrect, StatusCorrect, StatusCorrect, StatusCorrect, StatusCorrect},
		},
		{
			name:   "alternating correct and absent",
			guess:  "AXCYE",
			target: "ABCDE",
			want:   []Status{StatusCorrect, StatusAbsent, StatusCorrect, StatusAbsent, StatusCorrect},
		},
		{
			name:   "present wrong position",
			guess:  "EABCD",
			target: "ABCDE",
			want:   []Status{StatusPresent, StatusPresent, StatusPresent, StatusPresent, StatusPresent},
		},
		{
			name:   "duplicate guess letter single in target",
			guess:  "AABBB",
			target: "ABCDE",
			want:   []Status{StatusCorrect, StatusAbsent, StatusAbsent, StatusAbsent, StatusAbsent},
		},
		{
			name:   "duplicate letter consumed left to right",
			guess:  "EEXXX",
			target: "ABCEE",
			want:   []Status{StatusPresent, StatusPresent, StatusAbsent, StatusAbsent, StatusAbsent},
		},
		{
			name:   "correct consumes before present",
			guess:  "XEEXX",
			target: "AEBCE",
			want:   []Status{StatusAbsent, StatusCorrect, StatusPresent, StatusAbsent, StatusAbsent},
		},
		{
			name:   "hebrew final form matches base form",
			guess:  "שלום",
			target: "שלומ",
			want:   []Status{StatusCorrect, StatusCorrect, StatusCorrect, StatusCorrect},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statuses(Evaluate(tt.guess, tt.target))
			if !equalStatuses(got, tt.want) {
				t.Errorf("Evaluate(%q, %q) = %v, want %v", tt.guess, tt.target, got, tt.want)
			}
		})
	}
}

func TestEvaluateOutputLength(t *testing.T) {
	scores := Evaluate("ABCDE", "ABCDE")
	if len(scores) != 5 {
		t.Errorf("output length = %d, want target length 5", len(scores))
	}
}

func TestEvaluateNeverOverCounts(t *testing.T) {
	// Target has one E; guess has three. Only one may score non-absent.
	scores := Evaluate("EEEXX", "ABCDE")
	nonAbsent := 0
	for _, s := range scores {
		if s.Status == StatusCorrect || s.Status == StatusPresent {
			nonAbsent++
		}
	}
	if nonAbsent != 1 {
		t.Errorf("got %d non-absent E scores, want 1", nonAbsent)
	}
}

func TestEvaluateReportsOriginalGlyph(t *testing.T) {
	scores := Evaluate("שלום", "שלומ")
	if scores[3].Rune != 'ם' {
		t.Errorf("reported glyph = %q, want the typed final form %q", scores[3].Rune, 'ם')
	}
}

func TestUpgradeKeysNeverDowngrades(t *testing.T) {
	keys := make(map[rune]Status)

	UpgradeKeys(keys, []LetterScore{{Rune: 'A', Status: StatusCorrect}})
	UpgradeKeys(keys, []LetterScore{{Rune: 'A', Status: StatusAbsent}})
	if keys['A'] != StatusCorrect {
		t.Errorf("key A downgraded to %v", keys['A'])
	}

	UpgradeKeys(keys, []LetterScore{{Rune: 'B', Status: StatusAbsent}})
	UpgradeKeys(keys, []LetterScore{{Rune: 'B', Status: StatusPresent}})
	if keys['B'] != StatusPresent {
		t.Errorf("key B = %v, want upgrade to present", keys['B'])
	}
}

func TestSubmitSolve(t *testing.T) {
	p := state.DefaultWordProgress()

	upd, res, err := Submit(p, "ABCDE", "ABCDE", 6)
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if !res.Solved || res.Failed {
		t.Errorf("res = %+v, want solved and not failed", res)
	}
	if upd.Solved == nil || !*upd.Solved {
		t.Error("update should set solved")
	}
	if upd.Attempts == nil || len(*upd.Attempts) != 1 {
		t.Error("update should append the attempt")
	}
}

func TestSubmitFailsAtAttemptLimit(t *testing.T) {
	p := state.DefaultWordProgress()
	target := "ABCDE"

	for i := 0; i < 3; i++ {
		upd, res, err := Submit(p, "XXXXX", target, 3)
		if err != nil {
			t.Fatalf("Submit() %d failed: %v", i, err)
		}
		p.Attempts = *upd.Attempts
		p.Solved = *upd.Solved
		p.Failed = *upd.Failed

		wantFailed := i == 2
		if res.Failed != wantFailed {
			t.Errorf("attempt %d: failed = %v, want %v", i, res.Failed, wantFailed)
		}
		if res.Solved {
			t.Errorf("attempt %d: unexpectedly solved", i)
		}
	}

	// Terminal state rejects further submissions.
	if _, _, err := Submit(p, "ABCDE", target, 3); err != ErrFinished {
		t.Errorf("submit after failure: err = %v, want ErrFinished", err)
	}
}

func TestSubmitRejectsWrongLength(t *testing.T) {
	p := state.DefaultWordProgress()
	if _, _, err := Submit(p, "ABC", "ABCDE", 6); err != ErrWrongLength {
		t.Errorf("err = %v, want ErrWrongLength", err)
	}
}

func TestRestartClearsEverything(t *testing.T) {
	upd := Restart()
	if upd.Attempts == nil || len(*upd.Attempts) != 0 {
		t.Error("restart should clear attempts")
	}
	if upd.Solved == nil || *upd.Solved {
		t.Error("restart should clear solved")
	}
	if upd.Failed == nil || *upd.Failed {
		t.Error("restart should clear failed")
	}
	if upd.CurrentAttempt == nil || *upd.CurrentAttempt != "" {
		t.Error("restart should clear the in-progress guess")
	}
}

func TestKeyStatusesRebuild(t *testing.T) {
	keys := KeyStatuses([]string{"XXCXX", "ABXXX"}, "ABCDE")
	if keys['C'] != StatusCorrect {
		t.Errorf("C = %v, want correct", keys['C'])
	}
	if keys['A'] != StatusCorrect || keys['B'] != StatusCorrect {
		t.Error("A and B should be correct")
	}
	if keys['X'] != StatusAbsent {
		t.Errorf("X = %v, want absent", keys['X'])
	}
}
