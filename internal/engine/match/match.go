// Package match implements dictionary matching: case-insensitive substring
// containment of trigger phrases, preserving tag declaration order.
package match

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/sornchai/winnow/internal/taxonomy"
)

// Fold lowercases s using full Unicode case folding. Folding rather than
// ToLower keeps matching locale-agnostic for mixed Thai/English text.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Match returns the category's tags whose phrase lists have at least one
// case-insensitive substring hit in text. Tags come back in the category's
// declared order, never in phrase-occurrence order — primary-tag selection
// depends on that. Empty text, empty dictionaries, and empty phrases all
// degrade to no matches.
func Match(text string, cat taxonomy.Category) []taxonomy.Tag {
	if text == "" || len(cat.Tags) == 0 {
		return nil
	}

	folded := Fold(text)
	var matched []taxonomy.Tag
	for _, tag := range cat.Tags {
		if matchesAny(folded, tag.Phrases) {
			matched = append(matched, tag)
		}
	}
	return matched
}

func matchesAny(folded string, phrases []string) bool {
	for _, phrase := range phrases {
		if phrase == "" {
			continue
		}
		if strings.Contains(folded, Fold(phrase)) {
			return true
		}
	}
	return false
}
