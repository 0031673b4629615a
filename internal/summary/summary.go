// Package summary reduces a classified batch into ranked per-category tag
// counts.
package summary

import (
	"sort"

	"github.com/sornchai/winnow/internal/model"
	"github.com/sornchai/winnow/internal/taxonomy"
)

// DefaultTopN is the ranking cutoff used when callers pass topN <= 0.
const DefaultTopN = 10

// Summarize counts tag occurrences per list-valued category across the
// batch and returns the top-N per category, sorted descending by count.
// Ties keep first-encountered order in the flattened item sequence — the
// sort is stable and the counting pass preserves insertion order, so
// reruns produce identical rankings. The input records are only read.
// Every list category of the registry appears in the result, empty
// categories as [] rather than missing keys.
func Summarize(items []model.ClassifiedItem, reg *taxonomy.Registry, topN int) map[string][]model.SummaryEntry {
	if topN <= 0 {
		topN = DefaultTopN
	}

	out := make(map[string][]model.SummaryEntry)
	for _, cat := range reg.Categories() {
		if cat.Kind.Scalar() {
			continue
		}
		out[cat.Name] = rank(items, cat.Name, topN)
	}
	return out
}

func rank(items []model.ClassifiedItem, column string, topN int) []model.SummaryEntry {
	counts := make(map[string]int)
	var order []string

	for _, item := range items {
		col, ok := item.Classification[column]
		if !ok || col == nil {
			continue
		}
		for _, tag := range col.Values {
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	entries := make([]model.SummaryEntry, 0, len(order))
	for _, tag := range order {
		entries = append(entries, model.SummaryEntry{Tag: tag, Count: counts[tag]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}
