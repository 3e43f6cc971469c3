package relalg

import (
	"fmt"
)

// Rename replaces one attribute name in the schema; the data is copied
// unchanged. Returns ErrAttributeNotFound if old is not present.
//
// Collision with an existing attribute name is NOT checked: renaming "a"
// to "b" in a schema that already has a "b" silently produces two
// attributes named "b", and downstream lookups resolve to the first. The
// caller is responsible for picking a fresh name.
func Rename(r *Relation, old, new Attribute) (*Relation, error) {
	if r.AttributeIndex(old) < 0 {
		return nil, fmt.Errorf("%w: %q in relation %q (has attributes %v)",
			ErrAttributeNotFound, old, r.name, r.attrs)
	}

	attrs := make([]Attribute, len(r.attrs))
	for i, a := range r.attrs {
		if a == old {
			attrs[i] = new
		} else {
			attrs[i] = a
		}
	}

	return newRelationNoDedupe(r.name+"_renamed", attrs, cloneTuples(r.tuples)), nil
}

// Assign produces a value-identical copy of the relation under a new name.
// The copy is deep: later mutation of the source's tuples (however the
// caller obtained them) never shows through. Always succeeds.
func Assign(r *Relation, name string) *Relation {
	attrs := make([]Attribute, len(r.attrs))
	copy(attrs, r.attrs)
	return newRelationNoDedupe(name, attrs, cloneTuples(r.tuples))
}
