package letters

import (
	"reflect"
	"testing"
)

func TestCanonicalFinalForms(t *testing.T) {
	tests := []struct {
		name  string
		input rune
		want  rune
	}{
		{"final kaf", 'ך', 'כ'},
		{"final mem", 'ם', 'מ'},
		{"final nun", 'ן', 'נ'},
		{"final pe", 'ף', 'פ'},
		{"final tsadi", 'ץ', 'צ'},
		{"base letter unchanged", 'א', 'א'},
		{"latin unchanged", 'A', 'A'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Canonical(tt.input); got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFinalFormRoundTrip(t *testing.T) {
	for base, final := range map[rune]rune{'כ': 'ך', 'מ': 'ם', 'נ': 'ן', 'פ': 'ף', 'צ': 'ץ'} {
		if got := FinalForm(base); got != final {
			t.Errorf("FinalForm(%q) = %q, want %q", base, got, final)
		}
		if got := Canonical(final); got != base {
			t.Errorf("Canonical(%q) = %q, want %q", final, got, base)
		}
	}

	if FinalForm('א') != 'א' {
		t.Error("letter without a variant should be returned unchanged")
	}
}

func TestEqualIgnoresLetterForm(t *testing.T) {
	if !Equal("שלום", "שלומ") {
		t.Error("final mem and base mem should compare equal")
	}
	if Equal("שלום", "שלוב") {
		t.Error("different letters should not compare equal")
	}
}

func TestSlotsDropSpaces(t *testing.T) {
	got := Slots("GOOD NIGHT")
	want := []rune("GOODNIGHT")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Slots() = %q, want %q", string(got), string(want))
	}
}

func TestSegmentLengths(t *testing.T) {
	tests := []struct {
		answer string
		want   []int
	}{
		{"HELLO", []int{5}},
		{"GOOD NIGHT", []int{4, 5}},
		{"A  B", []int{1, 1}}, // double space collapses
	}

	for _, tt := range tests {
		got := SegmentLengths(tt.answer)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SegmentLengths(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestTraversalOrderCoversAllSlots(t *testing.T) {
	order := TraversalOrder("GOOD NIGHT")
	if len(order) != 9 {
		t.Fatalf("expected 9 positions, got %d", len(order))
	}
	for i, pos := range order {
		if pos != i {
			t.Errorf("position %d out of order: got %d", i, pos)
		}
	}
}

func TestFinalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single word", "שלומ", "שלום"},
		{"two words", "שלומ עולמ", "שלום עולם"},
		{"no variant letters", "אבג", "אבג"},
		{"latin untouched", "HELLO", "HELLO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Finalize(tt.input); got != tt.want {
				t.Errorf("Finalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
