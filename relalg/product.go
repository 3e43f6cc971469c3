package relalg

// CrossProduct returns the cartesian product of two relations: the schema
// is the concatenation of both attribute lists and the data is every
// pairwise concatenation of a tuple from a with a tuple from b.
// O(|a|*|b|) tuples and work; this can be very expensive.
//
// Duplicate attribute names across the two inputs are not merged or
// detected (same caveat as Rename).
func CrossProduct(a, b *Relation) *Relation {
	attrs := make([]Attribute, 0, len(a.attrs)+len(b.attrs))
	attrs = append(attrs, a.attrs...)
	attrs = append(attrs, b.attrs...)

	tuples := make([]Tuple, 0, a.Size()*b.Size())
	for _, ta := range a.tuples {
		for _, tb := range b.tuples {
			combined := make(Tuple, 0, len(ta)+len(tb))
			combined = append(combined, ta...)
			combined = append(combined, tb...)
			tuples = append(tuples, combined)
		}
	}

	// Inputs are dedup'd, so concatenated tuples are already distinct
	return newRelationNoDedupe(a.name+"_x_"+b.name, attrs, tuples)
}
