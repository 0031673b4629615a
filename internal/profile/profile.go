// Package profile implements operator-authored classification profiles:
// named snapshots of schema columns, keyword dictionaries, and rules,
// persisted as YAML documents. The core never sees a profile directly — it
// consumes the registry and rule list a profile compiles into.
package profile

import (
	"fmt"

	"github.com/sornchai/winnow/internal/engine/rules"
	"github.com/sornchai/winnow/internal/model"
	"github.com/sornchai/winnow/internal/taxonomy"
)

// Column declares one output column of a profile's schema.
type Column struct {
	Name string `yaml:"name"`
	// Type is "list" (default), "text", or "enum".
	Type    string   `yaml:"type,omitempty"`
	Options []string `yaml:"options,omitempty"`
	// Description guides operators (and downstream prompt generation);
	// classification ignores it.
	Description string `yaml:"description,omitempty"`
	// Primary names a scalar column that receives the first matched
	// keyword value. Only meaningful on list columns.
	Primary string `yaml:"primary,omitempty"`
}

// Keyword is one trigger entry for a column. Weight is informational
// metadata carried through to prompt generation; matching never consults it.
type Keyword struct {
	Keyword     string  `yaml:"keyword"`
	Value       string  `yaml:"value,omitempty"`
	Description string  `yaml:"description,omitempty"`
	Weight      float64 `yaml:"weight,omitempty"`
}

// Profile is a named, self-contained classification configuration.
type Profile struct {
	Name     string               `yaml:"name"`
	Columns  []Column             `yaml:"columns"`
	// Keywords is keyed by column name. Iteration always goes through
	// Columns order, never the map, to keep output deterministic.
	Keywords map[string][]Keyword `yaml:"keywords,omitempty"`
	Rules    []rules.Rule         `yaml:"rules,omitempty"`
}

// Compile converts the profile into the immutable snapshot the engine
// consumes. Keywords sharing an emitted value collapse into one tag whose
// phrase list keeps entry order, so `hot → HEAT` and `heat → HEAT` count as
// a single HEAT tag. Registry validation applies: a malformed schema is
// rejected here, before any classification runs.
func (p *Profile) Compile() (*taxonomy.Registry, []rules.Rule, error) {
	categories := make([]taxonomy.Category, 0, len(p.Columns))
	for _, col := range p.Columns {
		kind, err := columnKind(col.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("profile %q: column %q: %w", p.Name, col.Name, err)
		}
		categories = append(categories, taxonomy.Category{
			Name:    col.Name,
			Primary: col.Primary,
			Kind:    kind,
			Options: col.Options,
			Tags:    groupKeywords(p.Keywords[col.Name]),
		})
	}

	reg, err := taxonomy.NewRegistry(categories)
	if err != nil {
		return nil, nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return reg, p.Rules, nil
}

// groupKeywords folds flat keyword entries into tags keyed by their emitted
// value, preserving first-seen order.
func groupKeywords(entries []Keyword) []taxonomy.Tag {
	var tags []taxonomy.Tag
	index := make(map[string]int)

	for _, kw := range entries {
		if kw.Keyword == "" {
			continue
		}
		emit := kw.Value
		if emit == "" {
			emit = kw.Keyword
		}

		if i, ok := index[emit]; ok {
			tags[i].Phrases = append(tags[i].Phrases, kw.Keyword)
			continue
		}
		index[emit] = len(tags)
		tags = append(tags, taxonomy.Tag{
			Name:    emit,
			Phrases: []string{kw.Keyword},
			Desc:    kw.Description,
			Weight:  kw.Weight,
		})
	}
	return tags
}

func columnKind(t string) (model.ColumnKind, error) {
	switch t {
	case "", "list":
		return model.KindList, nil
	case "text":
		return model.KindText, nil
	case "enum":
		return model.KindEnum, nil
	default:
		return 0, fmt.Errorf("unknown column type %q", t)
	}
}
