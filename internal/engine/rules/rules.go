// Package rules implements operator-defined contains-phrase overrides that
// run after dictionary matching.
package rules

import (
	"strings"

	"github.com/sornchai/winnow/internal/engine/match"
	"github.com/sornchai/winnow/internal/model"
)

// Rule injects a value into an output column when the text contains a
// phrase. Rules are independent of the taxonomy: the target column may be
// any column the record carries.
type Rule struct {
	ID       string `yaml:"id,omitempty" json:"id,omitempty"`
	Column   string `yaml:"column" json:"column"`
	Contains string `yaml:"contains" json:"contains"`
	SetValue string `yaml:"set_value,omitempty" json:"setValue,omitempty"`
}

// Value returns what the rule writes on a match: SetValue, or the trigger
// phrase itself when no substitute is configured.
func (r Rule) Value() string {
	if r.SetValue != "" {
		return r.SetValue
	}
	return r.Contains
}

// Apply runs every rule against text in declaration order, merging results
// into rec. List columns get an insertion-order deduped append; scalar
// columns are overwritten, so the last matching rule wins. A rule whose
// column is absent from the record is a no-op — operators add ad hoc rules
// faster than schemas, and a dangling rule must not break a run. Apply
// never removes values and never errors.
func Apply(text string, rs []Rule, rec model.Record) {
	if len(rs) == 0 || rec == nil {
		return
	}

	folded := match.Fold(text)
	for _, r := range rs {
		if r.Contains == "" {
			continue
		}
		if !strings.Contains(folded, match.Fold(r.Contains)) {
			continue
		}
		col, ok := rec[r.Column]
		if !ok || col == nil {
			continue
		}
		if col.Kind.Scalar() {
			col.Assign(r.Value())
		} else {
			col.Append(r.Value())
		}
	}
}
