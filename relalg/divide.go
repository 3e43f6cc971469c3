package relalg

import (
	"fmt"
)

// divideGroup records, for one distinct projection of a onto the non-b
// attributes, the set of b-attribute values seen paired with it
type divideGroup struct {
	x  Tuple
	ys *TupleSet
}

// Divide computes relational division a / b: the largest relation R over
// attributes(a) - attributes(b) such that R x b is contained in a.
//
// Preconditions: every attribute of b must also appear in a
// (ErrAttributeSubset otherwise), and the remaining attribute set must be
// non-empty (ErrEmptySchema otherwise).
//
// Algorithm: partition a's tuples by their projection onto the non-b
// attributes ("x"), recording for each x the set of b-attribute values
// ("y") seen with it; the result holds exactly the x values whose y-set is
// a superset of b's tuples. O(|a| + |b| + |distinct x| * |b|).
func Divide(a, b *Relation) (*Relation, error) {
	aIndex := a.attributeIndexMap()

	for _, attr := range b.attrs {
		if _, ok := aIndex[attr]; !ok {
			return nil, fmt.Errorf("%w: %q of %q is not in %q (attributes %v)",
				ErrAttributeSubset, attr, b.name, a.name, a.attrs)
		}
	}

	bAttrSet := make(map[Attribute]bool, len(b.attrs))
	for _, attr := range b.attrs {
		bAttrSet[attr] = true
	}

	// Result attributes: a's schema minus b's, order preserved from a.
	// y positions follow b's attribute order so grouped values line up
	// with b's own tuples for the superset check.
	var resultAttrs []Attribute
	var xPositions []int
	for i, attr := range a.attrs {
		if !bAttrSet[attr] {
			resultAttrs = append(resultAttrs, attr)
			xPositions = append(xPositions, i)
		}
	}
	if len(resultAttrs) == 0 {
		return nil, fmt.Errorf("%w: dividing %q by %q", ErrEmptySchema, a.name, b.name)
	}

	yPositions := make([]int, len(b.attrs))
	for i, attr := range b.attrs {
		yPositions[i] = aIndex[attr]
	}

	// Group a by x
	groups := NewTupleKeyMapWithCapacity(a.Size())
	for _, tuple := range a.tuples {
		x := make(Tuple, len(xPositions))
		for i, idx := range xPositions {
			x[i] = tuple[idx]
		}
		y := make(Tuple, len(yPositions))
		for i, idx := range yPositions {
			y[i] = tuple[idx]
		}

		key := NewTupleKeyFull(x)
		if existing, ok := groups.Get(key); ok {
			existing.(*divideGroup).ys.Add(y)
		} else {
			ys := NewTupleSet()
			ys.Add(y)
			groups.Put(key, &divideGroup{x: x, ys: ys})
		}
	}

	// Keep the x values whose y-set covers all of b
	var results []Tuple
	groups.Range(func(value interface{}) bool {
		group := value.(*divideGroup)
		for _, tb := range b.tuples {
			if !group.ys.Contains(tb) {
				return true
			}
		}
		results = append(results, group.x)
		return true
	})

	return newRelationNoDedupe(a.name+"_DIV_"+b.name, resultAttrs, results), nil
}
