// Package content provides YAML-based puzzle content loading for the game.
// Content is immutable after load: the riddle list, the word-guess target,
// the item groups, and the closing message shown once everything is solved.
package content

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/ellomar/puzzlebox/internal/letters"
)

// GroupSize is the number of items in every group.
const GroupSize = 4

// MaxHints is the per-puzzle hint cap shared by the riddle and group puzzles.
const MaxHints = 2

// Content is the full puzzle definition set loaded at startup.
type Content struct {
	Language string       `yaml:"language"`
	Riddles  []Riddle     `yaml:"riddles"`
	Word     WordConfig   `yaml:"word"`
	Groups   GroupsConfig `yaml:"groups"`
	Closing  Closing      `yaml:"closing"`
}

// Riddle is a single prompt/answer pair. The answer may contain spaces;
// spaces are layout only and do not count as input positions.
type Riddle struct {
	Prompt string `yaml:"prompt"`
	Answer string `yaml:"answer"`
}

// WordConfig defines the word-guessing puzzle.
type WordConfig struct {
	Target      string `yaml:"target"`
	MaxAttempts int    `yaml:"max_attempts"`
}

// GroupsConfig defines the grouping puzzle.
type GroupsConfig struct {
	MaxAttempts int     `yaml:"max_attempts"`
	Sets        []Group `yaml:"sets"`
}

// Group is one group of items sharing a connection.
type Group struct {
	Connection string   `yaml:"connection"`
	Items      []string `yaml:"items"`
}

// Closing is the reveal shown when all three puzzles are solved.
// The progress store never reads it; it is display-only.
type Closing struct {
	Title     string `yaml:"title"`
	Body      string `yaml:"body"`
	Signature string `yaml:"signature"`
}

// Validate checks structural requirements once at startup.
func (c *Content) Validate() error {
	if len(c.Riddles) == 0 {
		return fmt.Errorf("content: no riddles defined")
	}
	for i, r := range c.Riddles {
		if len(letters.Slots(r.Answer)) == 0 {
			return fmt.Errorf("content: riddle %d has an empty answer", i)
		}
	}

	if len(letters.Slots(c.Word.Target)) == 0 {
		return fmt.Errorf("content: word target is empty")
	}
	if c.Word.MaxAttempts <= 0 {
		return fmt.Errorf("content: word max_attempts must be positive")
	}

	if len(c.Groups.Sets) == 0 {
		return fmt.Errorf("content: no groups defined")
	}
	if c.Groups.MaxAttempts <= 0 {
		return fmt.Errorf("content: groups max_attempts must be positive")
	}
	seen := make(map[string]bool)
	for i, g := range c.Groups.Sets {
		if len(g.Items) != GroupSize {
			return fmt.Errorf("content: group %d has %d items, want %d", i, len(g.Items), GroupSize)
		}
		for _, item := range g.Items {
			if item == "" {
				return fmt.Errorf("content: group %d contains an empty item", i)
			}
			if seen[item] {
				return fmt.Errorf("content: item %q appears in more than one group", item)
			}
			seen[item] = true
		}
	}

	return nil
}

// LanguageTag returns the BCP 47 tag for the content's language, used for
// locale-aware sorting. Unknown or empty tags fall back to the undetermined
// language, which still yields a stable ordering.
func (c *Content) LanguageTag() language.Tag {
	if c.Language == "" {
		return language.Und
	}
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Und
	}
	return tag
}

// AllItems returns the union of every group's items in group order.
func (c *Content) AllItems() []string {
	items := make([]string, 0, len(c.Groups.Sets)*GroupSize)
	for _, g := range c.Groups.Sets {
		items = append(items, g.Items...)
	}
	return items
}
