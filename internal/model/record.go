package model

import "encoding/json"

// ColumnKind describes how a classification column holds values.
type ColumnKind int

const (
	// KindList columns accumulate an ordered, duplicate-free value list.
	KindList ColumnKind = iota
	// KindText columns hold a single free-form value; later writes overwrite.
	KindText
	// KindEnum columns hold a single value from a declared option set.
	// Matching treats them exactly like KindText; options are metadata.
	KindEnum
)

// Scalar reports whether the kind holds one value rather than a list.
func (k ColumnKind) Scalar() bool {
	return k == KindText || k == KindEnum
}

// Column is one output cell of a classification record.
type Column struct {
	Kind   ColumnKind
	Values []string // KindList only; insertion order, no duplicates
	Value  string   // scalar kinds only; valid when Set
	Set    bool
}

// NewColumn returns an empty column of the given kind. List columns start
// with a non-nil empty slice so they serialize as [] rather than null.
func NewColumn(kind ColumnKind) *Column {
	c := &Column{Kind: kind}
	if kind == KindList {
		c.Values = []string{}
	}
	return c
}

// Append adds v to a list column unless it is already present.
// On scalar columns it behaves like Assign.
func (c *Column) Append(v string) {
	if c.Kind.Scalar() {
		c.Assign(v)
		return
	}
	for _, existing := range c.Values {
		if existing == v {
			return
		}
	}
	c.Values = append(c.Values, v)
}

// Assign overwrites a scalar column. On list columns it behaves like Append.
func (c *Column) Assign(v string) {
	if !c.Kind.Scalar() {
		c.Append(v)
		return
	}
	c.Value = v
	c.Set = true
}

// MarshalJSON emits a list column as an array, an assigned scalar as a
// string, and an unassigned scalar as null.
func (c *Column) MarshalJSON() ([]byte, error) {
	if c.Kind == KindList {
		return json.Marshal(c.Values)
	}
	if !c.Set {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

// Record maps output column names to their values for one classified item.
// Column pointers are owned by the record; records are never shared between
// items.
type Record map[string]*Column
