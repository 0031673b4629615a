// Package engine orchestrates per-item classification: dictionary matching
// across every registered category, primary-tag selection, then rule
// application.
package engine

import (
	"github.com/sornchai/winnow/internal/engine/match"
	"github.com/sornchai/winnow/internal/engine/rules"
	"github.com/sornchai/winnow/internal/model"
	"github.com/sornchai/winnow/internal/taxonomy"
)

// Engine classifies text against an immutable registry and rule set.
// Safe for concurrent use: Classify only reads shared state.
type Engine struct {
	registry *taxonomy.Registry
	rules    []rules.Rule
}

// New creates an Engine. The registry and rules must not be mutated for the
// engine's lifetime.
func New(reg *taxonomy.Registry, rs []rules.Rule) *Engine {
	return &Engine{registry: reg, rules: rs}
}

// Registry returns the engine's taxonomy registry.
func (e *Engine) Registry() *taxonomy.Registry {
	return e.registry
}

// Classify builds the full classification record for one text. It is total:
// any input, including the empty string, yields a well-formed record with
// every registered column present. Repeated calls with the same text return
// identical records.
func (e *Engine) Classify(text string) model.Record {
	rec := e.registry.NewRecord()

	for _, cat := range e.registry.Categories() {
		matched := match.Match(text, cat)
		if len(matched) == 0 {
			continue
		}

		col := rec[cat.Name]
		for _, tag := range matched {
			if col.Kind.Scalar() {
				// Scalar dictionary columns keep the last matching
				// tag in declared order.
				col.Assign(tag.Emit())
			} else {
				col.Append(tag.Emit())
			}
		}
		if cat.Primary != "" {
			// First matched tag in declared order, not first phrase
			// occurrence in the text.
			rec[cat.Primary].Assign(matched[0].Emit())
		}
	}

	rules.Apply(text, e.rules, rec)
	return rec
}
