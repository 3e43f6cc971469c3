package relalg

import (
	"fmt"
)

// Project restricts each tuple to the positions named in keep, whose order
// determines the output column order; it may reorder or repeat a subset of
// the input columns. Returns ErrAttributeNotFound if any requested
// attribute is absent.
//
// Because the output is a set, input tuples that differed only on dropped
// attributes collapse to one output tuple. That collapse is the defining
// algebraic property of projection, not an error.
func Project(r *Relation, keep []Attribute) (*Relation, error) {
	index := r.attributeIndexMap()

	indices := make([]int, len(keep))
	for i, attr := range keep {
		idx, ok := index[attr]
		if !ok {
			return nil, fmt.Errorf("%w: %q in relation %q (has attributes %v)",
				ErrAttributeNotFound, attr, r.name, r.attrs)
		}
		indices[i] = idx
	}

	attrs := make([]Attribute, len(keep))
	copy(attrs, keep)

	tuples := make([]Tuple, len(r.tuples))
	for i, tuple := range r.tuples {
		projected := make(Tuple, len(indices))
		for j, idx := range indices {
			projected[j] = tuple[idx]
		}
		tuples[i] = projected
	}

	return newRelation(r.name+"_PROJ", attrs, tuples), nil
}
