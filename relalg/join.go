package relalg

// NaturalJoin performs an equi-join on the attribute names common to both
// schemas. With no common attributes it degenerates to CrossProduct; that
// is a deliberate fallback, not an error.
//
// The implementation is a hash join: build an index over b keyed by the
// common-attribute positions, then probe it with each tuple of a. O(|b|)
// to build, O(|a| + matches) to probe. A nested-loop equi-join (cross
// product plus filter) would be quadratic and is exactly what this shape
// exists to avoid.
//
// The output schema is a's attributes followed by b's attributes minus the
// common ones, order preserved from each side.
func NaturalJoin(a, b *Relation) *Relation {
	aIndex := a.attributeIndexMap()
	bIndex := b.attributeIndexMap()

	// Common attribute names, in the order they appear in a's schema
	var common []Attribute
	for _, attr := range a.attrs {
		if _, ok := bIndex[attr]; ok {
			common = append(common, attr)
		}
	}

	if len(common) == 0 {
		return CrossProduct(a, b)
	}

	aCommon := make([]int, len(common))
	bCommon := make([]int, len(common))
	for i, attr := range common {
		aCommon[i] = aIndex[attr]
		bCommon[i] = bIndex[attr]
	}

	// Positions in b that survive into the output
	bCommonSet := make(map[int]bool, len(bCommon))
	for _, idx := range bCommon {
		bCommonSet[idx] = true
	}
	var bKeep []int
	for i := range b.attrs {
		if !bCommonSet[i] {
			bKeep = append(bKeep, i)
		}
	}

	attrs := make([]Attribute, 0, len(a.attrs)+len(bKeep))
	attrs = append(attrs, a.attrs...)
	for _, idx := range bKeep {
		attrs = append(attrs, b.attrs[idx])
	}

	// Build phase: multi-map from join key to b-tuples sharing it
	index := NewTupleKeyMapWithCapacity(b.Size())
	for _, tuple := range b.tuples {
		key := NewTupleKey(tuple, bCommon)
		if existing, ok := index.Get(key); ok {
			index.Put(key, append(existing.([]Tuple), tuple))
		} else {
			index.Put(key, []Tuple{tuple})
		}
	}

	// Probe phase
	seen := NewTupleSetWithCapacity(a.Size())
	var results []Tuple
	for _, ta := range a.tuples {
		key := NewTupleKey(ta, aCommon)
		matchesVal, ok := index.Get(key)
		if !ok {
			continue
		}
		for _, tb := range matchesVal.([]Tuple) {
			joined := make(Tuple, 0, len(ta)+len(bKeep))
			joined = append(joined, ta...)
			for _, idx := range bKeep {
				joined = append(joined, tb[idx])
			}
			if seen.Add(joined) {
				results = append(results, joined)
			}
		}
	}

	return newRelationNoDedupe(a.name+"_JOIN_"+b.name, attrs, results)
}
