package riddle

import (
	"reflect"
	"testing"

	"github.com/ellomar/puzzlebox/internal/state"
)

func testRules(answers ...string) state.Rules {
	return state.Rules{RiddleAnswers: answers, WordTarget: "X", WordMaxAttempts: 1, GroupCount: 1, GroupMaxAttempts: 1}
}

func applyUpdate(p *state.RiddleProgress, u state.RiddleUpdate) {
	if u.Current != nil {
		p.Current = *u.Current
	}
	for i, v := range u.Solved {
		p.Solved[i] = v
	}
	for i, v := range u.HintsUsed {
		p.HintsUsed[i] = v
	}
	for i, v := range u.Answers {
		p.Answers[i] = v
	}
	for i, positions := range u.Locked {
		p.Locked[i] = append(p.Locked[i], positions...)
	}
	for i, v := range u.SolvedLetters {
		p.SolvedLetters[i] = v
	}
}

func typeWord(t *testing.T, p *state.RiddleProgress, rules state.Rules, i int, word string) {
	t.Helper()
	for pos, r := range []rune(word) {
		if p.LockedAt(i, pos) {
			continue
		}
		upd, err := SetLetter(*p, rules, i, pos, r)
		if err != nil {
			t.Fatalf("SetLetter(%d, %d, %q) failed: %v", i, pos, r, err)
		}
		applyUpdate(p, upd)
	}
}

func TestSetAndClearLetter(t *testing.T) {
	rules := testRules("HELLO")
	p := state.DefaultRiddleProgress(rules)

	upd, err := SetLetter(p, rules, 0, 2, 'L')
	if err != nil {
		t.Fatalf("SetLetter() failed: %v", err)
	}
	applyUpdate(&p, upd)
	if p.Answers[0] != "··L··" {
		t.Errorf("answer = %q, want interior letter with sentinels preserved", p.Answers[0])
	}

	upd, err = ClearLetter(p, rules, 0, 2)
	if err != nil {
		t.Fatalf("ClearLetter() failed: %v", err)
	}
	applyUpdate(&p, upd)
	if p.Answers[0] != "·····" {
		t.Errorf("answer = %q, want all empty", p.Answers[0])
	}
}

func TestSetLetterRejectsLockedAndRange(t *testing.T) {
	rules := testRules("HELLO")
	p := state.DefaultRiddleProgress(rules)
	p.Locked[0] = []int{1}

	if _, err := SetLetter(p, rules, 0, 1, 'X'); err != ErrPositionLocked {
		t.Errorf("err = %v, want ErrPositionLocked", err)
	}
	if _, err := SetLetter(p, rules, 0, 9, 'X'); err != ErrPositionRange {
		t.Errorf("err = %v, want ErrPositionRange", err)
	}
	if _, err := SetLetter(p, rules, 5, 0, 'X'); err != ErrIndexRange {
		t.Errorf("err = %v, want ErrIndexRange", err)
	}
}

func TestSubmitExactMatchSolves(t *testing.T) {
	rules := testRules("HELLO")
	p := state.DefaultRiddleProgress(rules)
	typeWord(t, &p, rules, 0, "HELLO")

	upd, res, err := Submit(p, rules, 0)
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if !res.Solved {
		t.Fatal("expected solve")
	}
	applyUpdate(&p, upd)

	if p.SolvedLetters[0] != "HELLO" {
		t.Errorf("solved snapshot = %q, want %q", p.SolvedLetters[0], "HELLO")
	}
	if len(p.Locked[0]) != 5 {
		t.Errorf("locked %d positions, want all 5", len(p.Locked[0]))
	}

	// Re-submitting a solved riddle is idempotent.
	upd2, res2, err := Submit(p, rules, 0)
	if err != nil {
		t.Fatalf("re-submit failed: %v", err)
	}
	if !res2.Solved {
		t.Error("re-submit should still report solved")
	}
	if !reflect.DeepEqual(upd2, state.RiddleUpdate{}) {
		t.Error("re-submit should not change state")
	}
}

func TestSubmitWrongGuessLocksPartials(t *testing.T) {
	rules := testRules("HELLO")
	p := state.DefaultRiddleProgress(rules)
	typeWord(t, &p, rules, 0, "HELLX")

	upd, res, err := Submit(p, rules, 0)
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if res.Solved {
		t.Fatal("wrong guess should not solve")
	}
	if !reflect.DeepEqual(res.NewlyLocked, []int{0, 1, 2, 3}) {
		t.Errorf("NewlyLocked = %v, want positions 0-3", res.NewlyLocked)
	}
	applyUpdate(&p, upd)

	// The wrong letter survives; corrected, the riddle solves.
	upd2, err := ClearLetter(p, rules, 0, 4)
	if err != nil {
		t.Fatalf("ClearLetter() failed: %v", err)
	}
	applyUpdate(&p, upd2)
	upd2, err = SetLetter(p, rules, 0, 4, 'O')
	if err != nil {
		t.Fatalf("SetLetter() failed: %v", err)
	}
	applyUpdate(&p, upd2)

	_, res2, err := Submit(p, rules, 0)
	if err != nil {
		t.Fatalf("corrected Submit() failed: %v", err)
	}
	if !res2.Solved {
		t.Error("corrected guess should solve")
	}
}

func TestSubmitNeverUnlocks(t *testing.T) {
	rules := testRules("HELLO")
	p := state.DefaultRiddleProgress(rules)
	typeWord(t, &p, rules, 0, "HELLX")

	upd, _, err := Submit(p, rules, 0)
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	applyUpdate(&p, upd)
	lockedBefore := append([]int(nil), p.Locked[0]...)

	// Another wrong guess at the remaining slot relocks nothing and
	// unlocks nothing.
	upd2, err := ClearLetter(p, rules, 0, 4)
	if err != nil {
		t.Fatalf("ClearLetter() failed: %v", err)
	}
	applyUpdate(&p, upd2)
	upd2, err = SetLetter(p, rules, 0, 4, 'Z')
	if err != nil {
		t.Fatalf("SetLetter() failed: %v", err)
	}
	applyUpdate(&p, upd2)

	upd3, res, err := Submit(p, rules, 0)
	if err != nil {
		t.Fatalf("second Submit() failed: %v", err)
	}
	if len(res.NewlyLocked) != 0 {
		t.Errorf("NewlyLocked = %v, want none", res.NewlyLocked)
	}
	applyUpdate(&p, upd3)
	if !reflect.DeepEqual(p.Locked[0], lockedBefore) {
		t.Errorf("locked set changed: %v -> %v", lockedBefore, p.Locked[0])
	}
}

func TestSubmitRejectsIncomplete(t *testing.T) {
	rules := testRules("HELLO")
	p := state.DefaultRiddleProgress(rules)
	typeWord(t, &p, rules, 0, "HEL")

	if _, _, err := Submit(p, rules, 0); err != ErrIncomplete {
		t.Errorf("err = %v, want ErrIncomplete", err)
	}
}

func TestSubmitSpaceInsensitiveAnswer(t *testing.T) {
	// Spaces in the answer are layout, not input positions.
	rules := testRules("GOOD NIGHT")
	p := state.DefaultRiddleProgress(rules)
	typeWord(t, &p, rules, 0, "GOODNIGHT")

	_, res, err := Submit(p, rules, 0)
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if !res.Solved {
		t.Error("expected solve for space-stripped input")
	}
}

func TestSubmitFinalFormNormalization(t *testing.T) {
	rules := testRules("שלום")
	p := state.DefaultRiddleProgress(rules)
	// Player types the base form for the last letter.
	typeWord(t, &p, rules, 0, "שלומ")

	upd, res, err := Submit(p, rules, 0)
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if !res.Solved {
		t.Fatal("base-form input should match the final-form answer")
	}
	applyUpdate(&p, upd)
	// The snapshot keeps the answer's display form.
	if p.SolvedLetters[0] != "שלום" {
		t.Errorf("snapshot = %q, want final-form display %q", p.SolvedLetters[0], "שלום")
	}
}

func TestHintTargetsFirstEmptyInReadingOrder(t *testing.T) {
	rules := testRules("HELLO")
	p := state.DefaultRiddleProgress(rules)

	// Fill position 0; the hint should reveal position 1.
	upd, err := SetLetter(p, rules, 0, 0, 'H')
	if err != nil {
		t.Fatalf("SetLetter() failed: %v", err)
	}
	applyUpdate(&p, upd)

	upd, hint, err := Hint(p, rules, 0, 2)
	if err != nil {
		t.Fatalf("Hint() failed: %v", err)
	}
	if hint.Pos != 1 || hint.Rune != 'E' {
		t.Errorf("hint = %+v, want position 1 rune E", hint)
	}
	applyUpdate(&p, upd)

	if !p.LockedAt(0, 1) {
		t.Error("hinted position should be locked")
	}
	if p.HintsUsed[0] != 1 {
		t.Errorf("hintsUsed = %d, want 1", p.HintsUsed[0])
	}
}

func TestHintCapAndNoEmpty(t *testing.T) {
	rules := testRules("HELLO")
	p := state.DefaultRiddleProgress(rules)

	for i := 0; i < 2; i++ {
		upd, _, err := Hint(p, rules, 0, 2)
		if err != nil {
			t.Fatalf("Hint() %d failed: %v", i, err)
		}
		applyUpdate(&p, upd)
	}
	if _, _, err := Hint(p, rules, 0, 2); err != ErrHintLimit {
		t.Errorf("err = %v, want ErrHintLimit", err)
	}

	// A full row without remaining hints budget reports the right condition.
	p2 := state.DefaultRiddleProgress(rules)
	typeWord(t, &p2, rules, 0, "HELLO")
	if _, _, err := Hint(p2, rules, 0, 2); err != ErrNoEmptyPositions {
		t.Errorf("err = %v, want ErrNoEmptyPositions", err)
	}
}

func TestNavigationWraps(t *testing.T) {
	rules := testRules("A", "B", "C")
	p := state.DefaultRiddleProgress(rules)

	upd := Prev(p, rules)
	applyUpdate(&p, upd)
	if p.Current != 2 {
		t.Errorf("Prev from 0 = %d, want wrap to 2", p.Current)
	}

	upd = Next(p, rules)
	applyUpdate(&p, upd)
	if p.Current != 0 {
		t.Errorf("Next from 2 = %d, want wrap to 0", p.Current)
	}
}

func TestNextEmptyPos(t *testing.T) {
	rules := testRules("GOOD NIGHT")
	p := state.DefaultRiddleProgress(rules)

	if pos := NextEmptyPos(p, rules, 0); pos != 0 {
		t.Errorf("NextEmptyPos = %d, want 0", pos)
	}

	typeWord(t, &p, rules, 0, "GOODNIGHT")
	if pos := NextEmptyPos(p, rules, 0); pos != -1 {
		t.Errorf("NextEmptyPos = %d, want -1 for a full row", pos)
	}
}
