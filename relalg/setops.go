package relalg

import (
	"fmt"
)

// The binary set operators require the two inputs to have identical
// attribute sequences (same names, same order). Semantics are exactly set
// union/intersection/difference over the tuple collections; the output
// schema equals the shared input schema.

// Union returns a relation holding every tuple present in either input.
// Fails with ErrSchemaMismatch unless the schemas are identical.
func Union(a, b *Relation) (*Relation, error) {
	if !sameSchema(a, b) {
		return nil, schemaMismatch("union", a, b)
	}

	tuples := make([]Tuple, 0, a.Size()+b.Size())
	tuples = append(tuples, a.tuples...)
	tuples = append(tuples, b.tuples...)

	return newRelation(a.name+"_UNION_"+b.name, a.attrs, tuples), nil
}

// Intersect returns a relation holding the tuples present in both inputs.
// Fails with ErrSchemaMismatch unless the schemas are identical.
func Intersect(a, b *Relation) (*Relation, error) {
	if !sameSchema(a, b) {
		return nil, schemaMismatch("intersection", a, b)
	}

	inB := NewTupleSetWithCapacity(b.Size())
	for _, tuple := range b.tuples {
		inB.Add(tuple)
	}

	var tuples []Tuple
	for _, tuple := range a.tuples {
		if inB.Contains(tuple) {
			tuples = append(tuples, tuple)
		}
	}

	return newRelationNoDedupe(a.name+"_INTERSECT_"+b.name, a.attrs, tuples), nil
}

// Difference returns a relation holding the tuples of a that are absent
// from b. Fails with ErrSchemaMismatch unless the schemas are identical.
func Difference(a, b *Relation) (*Relation, error) {
	if !sameSchema(a, b) {
		return nil, schemaMismatch("difference", a, b)
	}

	inB := NewTupleSetWithCapacity(b.Size())
	for _, tuple := range b.tuples {
		inB.Add(tuple)
	}

	var tuples []Tuple
	for _, tuple := range a.tuples {
		if !inB.Contains(tuple) {
			tuples = append(tuples, tuple)
		}
	}

	return newRelationNoDedupe(a.name+"_MINUS_"+b.name, a.attrs, tuples), nil
}

func schemaMismatch(op string, a, b *Relation) error {
	return fmt.Errorf("%w: %s requires identical schemas, got %v and %v",
		ErrSchemaMismatch, op, a.attrs, b.attrs)
}
