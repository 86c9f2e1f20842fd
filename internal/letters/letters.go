// Package letters handles positional letter-shape variants and answer slot
// layout for the puzzles. Some scripts render a letter differently at the end
// of a word (Hebrew final forms); matching always uses the base form while
// display keeps the positional variant. The mapping lives here so the state
// machine never has to know about it.
package letters

import "strings"

// finalToBase maps word-final glyph variants to their base form.
var finalToBase = map[rune]rune{
	'ך': 'כ',
	'ם': 'מ',
	'ן': 'נ',
	'ף': 'פ',
	'ץ': 'צ',
}

// baseToFinal is the inverse mapping, applied only at word-final display positions.
var baseToFinal = map[rune]rune{
	'כ': 'ך',
	'מ': 'ם',
	'נ': 'ן',
	'פ': 'ף',
	'צ': 'ץ',
}

// Canonical returns the base form of r, mapping any positional variant.
// Letters without a variant are returned unchanged.
func Canonical(r rune) rune {
	if base, ok := finalToBase[r]; ok {
		return base
	}
	return r
}

// FinalForm returns the word-final variant of r if one exists.
func FinalForm(r rune) rune {
	if final, ok := baseToFinal[r]; ok {
		return final
	}
	return r
}

// HasFinalForm reports whether r (in base form) has a positional variant.
func HasFinalForm(r rune) bool {
	_, ok := baseToFinal[r]
	return ok
}

// CanonicalString canonicalizes every rune of s.
func CanonicalString(s string) string {
	return strings.Map(Canonical, s)
}

// Equal compares two strings after canonicalization.
func Equal(a, b string) bool {
	return CanonicalString(a) == CanonicalString(b)
}

// Slots returns the letters of answer excluding spaces. These are the input
// positions the player fills; spaces are layout, not content.
func Slots(answer string) []rune {
	slots := make([]rune, 0, len(answer))
	for _, r := range answer {
		if r == ' ' {
			continue
		}
		slots = append(slots, r)
	}
	return slots
}

// SegmentLengths returns the slot count of each word segment of answer,
// in logical order. Empty segments (double spaces) are skipped.
func SegmentLengths(answer string) []int {
	var lengths []int
	for _, seg := range strings.Fields(answer) {
		lengths = append(lengths, len([]rune(seg)))
	}
	return lengths
}

// TraversalOrder returns the slot indices of answer in reading order:
// segment by segment, positions within a segment in logical order. Both the
// hint operation and focus navigation consume this view so the traversal rule
// lives in exactly one place.
func TraversalOrder(answer string) []int {
	var order []int
	pos := 0
	for _, n := range SegmentLengths(answer) {
		for i := 0; i < n; i++ {
			order = append(order, pos)
			pos++
		}
	}
	return order
}

// Finalize rewrites word so that the last letter of each segment uses its
// word-final variant. Used only when rendering a value the user will see.
func Finalize(word string) string {
	segs := strings.Split(word, " ")
	for si, seg := range segs {
		runes := []rune(seg)
		if len(runes) == 0 {
			continue
		}
		last := len(runes) - 1
		for i, r := range runes {
			if i == last {
				runes[i] = FinalForm(Canonical(r))
			} else {
				runes[i] = Canonical(r)
			}
		}
		segs[si] = string(runes)
	}
	return strings.Join(segs, " ")
}
