package relalg

// Predicate decides whether a tuple belongs in a selection. Access is
// positional, not by attribute name: the predicate must know the schema
// order of the relation it is applied to. Predicates must be pure; the
// engine holds them only for the duration of one Select call.
type Predicate func(Tuple) bool

// Select filters a relation by a predicate. The output schema is
// unchanged. A predicate that rejects everything yields an empty
// relation, not an error.
func Select(r *Relation, pred Predicate) *Relation {
	var tuples []Tuple
	for _, tuple := range r.tuples {
		if pred(tuple) {
			tuples = append(tuples, tuple)
		}
	}

	return newRelationNoDedupe(r.name+"_SELECT", r.attrs, tuples)
}
