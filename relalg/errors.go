package relalg

import (
	"errors"
)

// All errors are deterministic functions of the operator inputs; there are
// no transient failure modes. Operators wrap these sentinels with context
// via fmt.Errorf("%w: ..."), so callers match them with errors.Is.
var (
	// ErrArityMismatch is returned by NewRelation when a tuple's length
	// disagrees with the declared attribute count.
	ErrArityMismatch = errors.New("relalg: tuple arity does not match attribute count")

	// ErrAttributeNotFound is returned by Rename and Project when a
	// referenced attribute is absent from the relation's schema.
	ErrAttributeNotFound = errors.New("relalg: attribute not found")

	// ErrSchemaMismatch is returned by Union, Intersect, and Difference
	// when the two relations' attribute sequences are not identical.
	ErrSchemaMismatch = errors.New("relalg: relation schemas do not match")

	// ErrAttributeSubset is returned by Divide when the divisor's
	// attributes are not a subset of the dividend's.
	ErrAttributeSubset = errors.New("relalg: divisor attributes are not a subset of dividend attributes")

	// ErrEmptySchema is returned by Divide when no attributes would
	// remain in the result.
	ErrEmptySchema = errors.New("relalg: division leaves no attributes in the result")
)
