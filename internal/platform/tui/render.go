package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// inputRune normalizes a typed character for puzzle input: letters are
// uppercased (a no-op for unicameral scripts), anything else is rejected.
func inputRune(r rune) (rune, bool) {
	if !unicode.IsLetter(r) {
		return 0, false
	}
	return unicode.ToUpper(r), true
}

// centerLine centers a (possibly styled) line within the given width.
func centerLine(line string, width int) string {
	w := lipgloss.Width(line)
	if width <= w {
		return line
	}
	return strings.Repeat(" ", (width-w)/2) + line
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = centerLine(l, width)
	}
	return strings.Join(lines, "\n")
}
