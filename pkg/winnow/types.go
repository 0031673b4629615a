package winnow

import (
	"fmt"

	"github.com/sornchai/winnow/internal/engine/rules"
	"github.com/sornchai/winnow/internal/model"
	"github.com/sornchai/winnow/internal/taxonomy"
)

// Tag is a single dictionary entry: a label plus the phrases that trigger it.
type Tag struct {
	Name    string   // emitted label, e.g. "ASK_ADVICE"
	Phrases []string // folded-substring trigger phrases
	Value   string   // optional override for the emitted label
	Desc    string   // optional human description
	Weight  float64  // optional relative importance hint
}

// Category is a named output column with its tag dictionary.
type Category struct {
	Name    string   // column name, e.g. "intents"
	Primary string   // optional sibling column holding the first match
	Kind    string   // "list" (default), "text", or "enum"
	Options []string // allowed values when Kind is "enum"
	Tags    []Tag
}

// Rule forces a column value when the text contains a phrase.
type Rule struct {
	Column   string
	Contains string
	SetValue string // emitted value; defaults to Contains when empty
}

// Record is one classified item: column name to value. List columns hold
// []string, scalar columns hold string or nil when never assigned.
type Record map[string]any

// ClassifiedItem pairs the extracted text with its classification.
type ClassifiedItem struct {
	OriginalText   string
	Classification Record
}

// SummaryEntry is one row of a per-category frequency ranking.
type SummaryEntry struct {
	Tag   string
	Count int
}

// Report is the result of classifying a batch of items.
type Report struct {
	TotalItems int
	Items      []ClassifiedItem
	Summary    map[string][]SummaryEntry
}

// Item is one scraped post: arbitrary keys as decoded from JSON.
type Item map[string]any

func categoriesToInternal(cats []Category) ([]taxonomy.Category, error) {
	out := make([]taxonomy.Category, len(cats))
	for i, c := range cats {
		kind, err := kindFromString(c.Kind)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", c.Name, err)
		}
		tags := make([]taxonomy.Tag, len(c.Tags))
		for j, t := range c.Tags {
			tags[j] = taxonomy.Tag{
				Name:    t.Name,
				Phrases: t.Phrases,
				Value:   t.Value,
				Desc:    t.Desc,
				Weight:  t.Weight,
			}
		}
		out[i] = taxonomy.Category{
			Name:    c.Name,
			Primary: c.Primary,
			Kind:    kind,
			Options: c.Options,
			Tags:    tags,
		}
	}
	return out, nil
}

func kindFromString(s string) (model.ColumnKind, error) {
	switch s {
	case "", "list":
		return model.KindList, nil
	case "text":
		return model.KindText, nil
	case "enum":
		return model.KindEnum, nil
	default:
		return 0, fmt.Errorf("unknown column kind %q", s)
	}
}

func rulesToInternal(rs []Rule) []rules.Rule {
	if len(rs) == 0 {
		return nil
	}
	out := make([]rules.Rule, len(rs))
	for i, r := range rs {
		out[i] = rules.Rule{
			Column:   r.Column,
			Contains: r.Contains,
			SetValue: r.SetValue,
		}
	}
	return out
}

// recordFromInternal flattens the internal column representation into
// plain JSON-shaped values.
func recordFromInternal(rec model.Record) Record {
	out := make(Record, len(rec))
	for name, col := range rec {
		if col.Kind.Scalar() {
			if col.Set {
				out[name] = col.Value
			} else {
				out[name] = nil
			}
			continue
		}
		vals := make([]string, len(col.Values))
		copy(vals, col.Values)
		out[name] = vals
	}
	return out
}

func itemFromInternal(ci model.ClassifiedItem) ClassifiedItem {
	return ClassifiedItem{
		OriginalText:   ci.OriginalText,
		Classification: recordFromInternal(ci.Classification),
	}
}

func summaryFromInternal(sum map[string][]model.SummaryEntry) map[string][]SummaryEntry {
	out := make(map[string][]SummaryEntry, len(sum))
	for col, entries := range sum {
		rows := make([]SummaryEntry, len(entries))
		for i, e := range entries {
			rows[i] = SummaryEntry{Tag: e.Tag, Count: e.Count}
		}
		out[col] = rows
	}
	return out
}
