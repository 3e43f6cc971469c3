// Package sets implements basic set-theory operations over comparable
// element types: union, intersection, difference, symmetric difference,
// complement against a universe, and cartesian product. All operations
// are pure and return new sets.
package sets

// Set is an unordered collection of distinct elements
type Set[T comparable] map[T]struct{}

// New creates a set holding the given elements
func New[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Add inserts an element
func (s Set[T]) Add(e T) {
	s[e] = struct{}{}
}

// Contains reports whether e is in the set
func (s Set[T]) Contains(e T) bool {
	_, ok := s[e]
	return ok
}

// Len returns the number of elements
func (s Set[T]) Len() int {
	return len(s)
}

// Elements returns the elements in unspecified order
func (s Set[T]) Elements() []T {
	out := make([]T, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	return out
}

// Clone returns an independent copy of the set
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for e := range s {
		out[e] = struct{}{}
	}
	return out
}

// Equal reports whether two sets hold exactly the same elements
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for e := range s {
		if !other.Contains(e) {
			return false
		}
	}
	return true
}

// IsSubset reports whether every element of s is in other
func (s Set[T]) IsSubset(other Set[T]) bool {
	for e := range s {
		if !other.Contains(e) {
			return false
		}
	}
	return true
}

// Union returns the set of elements present in either a or b
func Union[T comparable](a, b Set[T]) Set[T] {
	out := a.Clone()
	for e := range b {
		out[e] = struct{}{}
	}
	return out
}

// Intersection returns the set of elements present in both a and b
func Intersection[T comparable](a, b Set[T]) Set[T] {
	// Iterate the smaller side
	if len(b) < len(a) {
		a, b = b, a
	}
	out := make(Set[T])
	for e := range a {
		if b.Contains(e) {
			out[e] = struct{}{}
		}
	}
	return out
}

// Difference returns the elements of a that are absent from b
func Difference[T comparable](a, b Set[T]) Set[T] {
	out := make(Set[T])
	for e := range a {
		if !b.Contains(e) {
			out[e] = struct{}{}
		}
	}
	return out
}

// SymmetricDifference returns the elements present in exactly one of a and b
func SymmetricDifference[T comparable](a, b Set[T]) Set[T] {
	out := make(Set[T])
	for e := range a {
		if !b.Contains(e) {
			out[e] = struct{}{}
		}
	}
	for e := range b {
		if !a.Contains(e) {
			out[e] = struct{}{}
		}
	}
	return out
}

// Complement returns the elements of the universe not in subset
func Complement[T comparable](universe, subset Set[T]) Set[T] {
	return Difference(universe, subset)
}

// Pair is an ordered pair of elements from two sets
type Pair[A, B comparable] struct {
	First  A
	Second B
}

// CartesianProduct returns the set of all ordered pairs (a, b)
func CartesianProduct[A, B comparable](a Set[A], b Set[B]) Set[Pair[A, B]] {
	out := make(Set[Pair[A, B]], len(a)*len(b))
	for ea := range a {
		for eb := range b {
			out[Pair[A, B]{ea, eb}] = struct{}{}
		}
	}
	return out
}
