// Package groups implements the grouping puzzle: order-independent selection
// keys for duplicate-attempt detection, solve/miss evaluation with a unique
// wrong-attempt budget, and the idempotent hint flow.
package groups

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// keySeparator joins items inside a selection key. A control character is
// never expected inside puzzle content.
const keySeparator = "\x1f"

// NewCollator builds the collator used for selection keys, ordering by the
// content's language so keys stay stable for non-Latin scripts.
func NewCollator(tag language.Tag) *collate.Collator {
	return collate.New(tag)
}

// Key canonicalizes a selection into an order-independent fingerprint: items
// are trimmed, empties are dropped, the rest sorted with the collator and
// joined. Two selections with the same multiset of non-empty trimmed items
// yield identical keys regardless of pick order. Pure and total.
func Key(items []string, c *collate.Collator) string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		cleaned = append(cleaned, item)
	}
	c.SortStrings(cleaned)
	return strings.Join(cleaned, keySeparator)
}
