// Package taxonomy holds the declarative classification schema: named
// categories, their ordered tag lists, and the trigger-phrase dictionaries
// the matcher runs against. Declaration order is load-bearing — it defines
// primary-tag precedence — so categories and tags live in slices, never maps.
package taxonomy

import (
	"fmt"

	"github.com/sornchai/winnow/internal/model"
)

// Tag is one classification label with its trigger phrases.
type Tag struct {
	Name    string
	Phrases []string
	// Value, when non-empty, is emitted instead of Name on a match.
	Value string
	// Desc and Weight are operator-facing metadata. Weight is carried
	// through for prompt generation and future scoring; matching never
	// consults it.
	Desc   string
	Weight float64
}

// Emit returns the value this tag writes into the record when matched.
func (t Tag) Emit() string {
	if t.Value != "" {
		return t.Value
	}
	return t.Name
}

// Category is one taxonomy: an output column plus its ordered tag list.
type Category struct {
	// Name is the output column, e.g. "intents".
	Name string
	// Primary, when non-empty, names a scalar column that receives the
	// first matched tag in declared order, e.g. "primaryIntent".
	Primary string
	// Kind of the output column. The zero value is KindList.
	Kind model.ColumnKind
	// Options lists allowed values for KindEnum columns. Metadata only.
	Options []string
	Tags    []Tag
}

// Registry is an immutable, validated set of categories. It is the only
// component that refuses bad input: everything downstream assumes a
// well-formed registry and degrades silently instead of erroring.
type Registry struct {
	categories []Category
	index      map[string]int
}

// NewRegistry validates the category list and builds a registry.
// Duplicate category names, duplicate tag names within a category, empty
// names, and primary columns colliding with other columns are configuration
// errors.
func NewRegistry(categories []Category) (*Registry, error) {
	index := make(map[string]int, len(categories))
	columns := make(map[string]string, len(categories)*2)

	for i, cat := range categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("taxonomy: category %d has empty name", i)
		}
		if owner, dup := columns[cat.Name]; dup {
			return nil, fmt.Errorf("taxonomy: column %q declared twice (%s)", cat.Name, owner)
		}
		columns[cat.Name] = "category " + cat.Name
		index[cat.Name] = i

		if cat.Primary != "" {
			if cat.Kind.Scalar() {
				return nil, fmt.Errorf("taxonomy: category %q is scalar but declares primary column %q", cat.Name, cat.Primary)
			}
			if owner, dup := columns[cat.Primary]; dup {
				return nil, fmt.Errorf("taxonomy: column %q declared twice (%s)", cat.Primary, owner)
			}
			columns[cat.Primary] = "primary of " + cat.Name
		}

		seen := make(map[string]bool, len(cat.Tags))
		for _, tag := range cat.Tags {
			if tag.Name == "" {
				return nil, fmt.Errorf("taxonomy: category %q has a tag with empty name", cat.Name)
			}
			if seen[tag.Name] {
				return nil, fmt.Errorf("taxonomy: category %q declares tag %q twice", cat.Name, tag.Name)
			}
			seen[tag.Name] = true
		}
	}

	return &Registry{categories: categories, index: index}, nil
}

// MustRegistry is NewRegistry for built-in category sets that are known
// valid at compile time.
func MustRegistry(categories []Category) *Registry {
	r, err := NewRegistry(categories)
	if err != nil {
		panic(err)
	}
	return r
}

// Categories returns the categories in declared order. Callers must not
// mutate the returned slice.
func (r *Registry) Categories() []Category {
	return r.categories
}

// Lookup returns the category with the given column name.
func (r *Registry) Lookup(name string) (Category, bool) {
	i, ok := r.index[name]
	if !ok {
		return Category{}, false
	}
	return r.categories[i], true
}

// NewRecord builds an empty record with one column per registered category
// plus one scalar column per declared primary. List columns start empty,
// scalars start unassigned (null).
func (r *Registry) NewRecord() model.Record {
	rec := make(model.Record, len(r.categories)*2)
	for _, cat := range r.categories {
		rec[cat.Name] = model.NewColumn(cat.Kind)
		if cat.Primary != "" {
			rec[cat.Primary] = model.NewColumn(model.KindText)
		}
	}
	return rec
}
