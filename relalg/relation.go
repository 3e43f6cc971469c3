package relalg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// Attribute represents a named column/position within a Relation's schema
type Attribute string

// String returns the string representation
func (a Attribute) String() string {
	return string(a)
}

// Tuple represents a row of values in a relation
type Tuple []Value

// Relation represents a named, schema-tagged, duplicate-free collection of
// fixed-arity tuples. The name is a display label used only for derived-name
// bookkeeping; attributes define both arity and column identity.
//
// Attribute names within one schema are treated as unique lookup keys.
// Behavior is unspecified if a caller supplies repeated names (possible via
// Rename collisions or CrossProduct of overlapping schemas); the engine does
// not validate against it.
//
// Relations are IMMUTABLE and DEDUPLICATED at creation.
// All operations return NEW Relations.
type Relation struct {
	name   string
	attrs  []Attribute
	tuples []Tuple
}

// NewRelation constructs a Relation from a name, an ordered attribute list,
// and a collection of tuples. Every tuple must have arity exactly
// len(attrs); otherwise construction fails with ErrArityMismatch naming the
// offending tuple. Duplicate input tuples are silently collapsed.
func NewRelation(name string, attrs []Attribute, tuples []Tuple) (*Relation, error) {
	for _, tuple := range tuples {
		if len(tuple) != len(attrs) {
			return nil, fmt.Errorf("%w: tuple %v has %d values, schema %v expects %d",
				ErrArityMismatch, tuple, len(tuple), attrs, len(attrs))
		}
	}
	return newRelation(name, attrs, tuples), nil
}

// MustNewRelation is like NewRelation but panics on error.
// Intended for fixtures and demos with literal tuples.
func MustNewRelation(name string, attrs []Attribute, tuples []Tuple) *Relation {
	r, err := NewRelation(name, attrs, tuples)
	if err != nil {
		panic(err)
	}
	return r
}

// newRelation builds a relation from tuples of known-good arity,
// deduplicating them
func newRelation(name string, attrs []Attribute, tuples []Tuple) *Relation {
	return &Relation{
		name:   name,
		attrs:  attrs,
		tuples: deduplicateTuples(tuples),
	}
}

// newRelationNoDedupe builds a relation from tuples that are already
// distinct (e.g. drained from a TupleSet)
func newRelationNoDedupe(name string, attrs []Attribute, tuples []Tuple) *Relation {
	return &Relation{
		name:   name,
		attrs:  attrs,
		tuples: tuples,
	}
}

// deduplicateTuples removes duplicate tuples, preserving first occurrence
func deduplicateTuples(tuples []Tuple) []Tuple {
	if len(tuples) == 0 {
		return tuples
	}

	// Pre-size seen set based on input size
	seen := NewTupleSetWithCapacity(len(tuples))
	result := make([]Tuple, 0, len(tuples))

	for _, tuple := range tuples {
		if seen.Add(tuple) {
			result = append(result, tuple)
		}
	}

	return result
}

// Name returns the relation's display label
func (r *Relation) Name() string {
	return r.name
}

// Attributes returns the attribute names in schema order.
// The returned slice is shared; callers must not modify it.
func (r *Relation) Attributes() []Attribute {
	return r.attrs
}

// Arity returns the number of attributes in the schema
func (r *Relation) Arity() int {
	return len(r.attrs)
}

// Size returns the number of tuples
func (r *Relation) Size() int {
	return len(r.tuples)
}

// IsEmpty returns true if the relation has no tuples
func (r *Relation) IsEmpty() bool {
	return len(r.tuples) == 0
}

// Tuples returns the backing tuple slice.
// The returned slice is shared; callers must not modify it.
func (r *Relation) Tuples() []Tuple {
	return r.tuples
}

// Get returns a specific tuple by index
func (r *Relation) Get(i int) Tuple {
	if i < 0 || i >= len(r.tuples) {
		return nil
	}
	return r.tuples[i]
}

// Contains reports whether the relation holds the given tuple
func (r *Relation) Contains(tuple Tuple) bool {
	for _, t := range r.tuples {
		if len(t) == len(tuple) && tupleValuesEqual(t, tuple) {
			return true
		}
	}
	return false
}

// AttributeIndex returns the position of an attribute by name, or -1
func (r *Relation) AttributeIndex(attr Attribute) int {
	for i, a := range r.attrs {
		if a == attr {
			return i
		}
	}
	return -1
}

// attributeIndexMap builds a name-to-position mapping once per operator
// invocation, keeping attribute lookups O(1) inside join and division
func (r *Relation) attributeIndexMap() map[Attribute]int {
	m := make(map[Attribute]int, len(r.attrs))
	for i, a := range r.attrs {
		m[a] = i
	}
	return m
}

// sameSchema reports whether two relations have identical attribute
// sequences (same names, same order)
func sameSchema(a, b *Relation) bool {
	if len(a.attrs) != len(b.attrs) {
		return false
	}
	for i := range a.attrs {
		if a.attrs[i] != b.attrs[i] {
			return false
		}
	}
	return true
}

// cloneTuple deep-copies a tuple, including any byte-slice values
func cloneTuple(tuple Tuple) Tuple {
	out := make(Tuple, len(tuple))
	for i, v := range tuple {
		if b, ok := v.([]byte); ok {
			bc := make([]byte, len(b))
			copy(bc, b)
			out[i] = bc
			continue
		}
		out[i] = v
	}
	return out
}

// cloneTuples deep-copies a tuple slice
func cloneTuples(tuples []Tuple) []Tuple {
	out := make([]Tuple, len(tuples))
	for i, t := range tuples {
		out[i] = cloneTuple(t)
	}
	return out
}

// Sorted returns the tuples sorted lexicographically by attribute order.
// First attribute is primary sort key, second is secondary, etc. The
// backing collection is set-semantic, so this is the deterministic view.
func (r *Relation) Sorted() []Tuple {
	// Create a copy of tuples to sort (preserving immutability)
	sorted := make([]Tuple, len(r.tuples))
	copy(sorted, r.tuples)

	sort.Slice(sorted, func(i, j int) bool {
		for k := 0; k < len(r.attrs) && k < len(sorted[i]) && k < len(sorted[j]); k++ {
			cmp := CompareValues(sorted[i][k], sorted[j][k])
			if cmp < 0 {
				return true
			} else if cmp > 0 {
				return false
			}
		}
		return len(sorted[i]) < len(sorted[j])
	})

	return sorted
}

// String returns a compact string representation for logging
func (r *Relation) String() string {
	// Format as: Relation(Students [id name group_id], N Tuples) with colors
	names := make([]string, len(r.attrs))
	for i, a := range r.attrs {
		names[i] = string(a)
	}

	// Color the tuple count based on size
	count := r.Size()
	var countStr string
	switch {
	case count == 0:
		countStr = color.RedString("%d", count)
	case count < 100:
		countStr = color.GreenString("%d", count)
	case count < 10000:
		countStr = color.YellowString("%d", count)
	default:
		countStr = color.RedString("%d", count)
	}

	return fmt.Sprintf("%s%s %s%s%s%s%s %s%s",
		color.BlueString("Relation("),
		color.MagentaString(r.name),
		color.BlueString("["),
		color.CyanString(strings.Join(names, " ")),
		color.BlueString("]"),
		color.BlueString(", "),
		countStr,
		"Tuples",
		color.BlueString(")"))
}

// Table returns a formatted markdown table representation
func (r *Relation) Table() string {
	formatter := NewTableFormatter()
	return formatter.FormatRelation(r)
}
