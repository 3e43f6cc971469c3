package sets

import (
	"sort"
	"testing"
)

func sortedInts(s Set[int]) []int {
	out := s.Elements()
	sort.Ints(out)
	return out
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestUnion(t *testing.T) {
	a := New(1, 2, 3, 4)
	b := New(3, 4, 5, 6)

	got := sortedInts(Union(a, b))
	if !intsEqual(got, []int{1, 2, 3, 4, 5, 6}) {
		t.Errorf("unexpected union: %v", got)
	}
}

func TestIntersection(t *testing.T) {
	a := New(1, 2, 3, 4)
	b := New(3, 4, 5, 6)

	got := sortedInts(Intersection(a, b))
	if !intsEqual(got, []int{3, 4}) {
		t.Errorf("unexpected intersection: %v", got)
	}
}

func TestDifference(t *testing.T) {
	a := New(1, 2, 3, 4)
	b := New(3, 4, 5, 6)

	got := sortedInts(Difference(a, b))
	if !intsEqual(got, []int{1, 2}) {
		t.Errorf("unexpected difference: %v", got)
	}
}

func TestSymmetricDifference(t *testing.T) {
	a := New(1, 2, 3, 4)
	b := New(3, 4, 5, 6)

	got := sortedInts(SymmetricDifference(a, b))
	if !intsEqual(got, []int{1, 2, 5, 6}) {
		t.Errorf("unexpected symmetric difference: %v", got)
	}
}

func TestComplement(t *testing.T) {
	universe := New(1, 2, 3, 4, 5, 6, 7, 8)
	a := New(1, 2, 3, 4)

	got := sortedInts(Complement(universe, a))
	if !intsEqual(got, []int{5, 6, 7, 8}) {
		t.Errorf("unexpected complement: %v", got)
	}
}

func TestCartesianProduct(t *testing.T) {
	a := New(1, 2)
	b := New("x", "y")

	p := CartesianProduct(a, b)
	if p.Len() != 4 {
		t.Errorf("expected 4 pairs, got %d", p.Len())
	}
	if !p.Contains(Pair[int, string]{1, "x"}) || !p.Contains(Pair[int, string]{2, "y"}) {
		t.Error("missing expected pair")
	}
}

func TestEqualAndSubset(t *testing.T) {
	a := New(1, 2, 3)

	if !a.Equal(New(3, 2, 1)) {
		t.Error("expected order-independent equality")
	}
	if a.Equal(New(1, 2)) {
		t.Error("sets of different size must not be equal")
	}
	if !New(1, 2).IsSubset(a) {
		t.Error("expected {1,2} to be a subset of {1,2,3}")
	}
	if a.IsSubset(New(1, 2)) {
		t.Error("did not expect {1,2,3} to be a subset of {1,2}")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := New(1)
	c := a.Clone()
	c.Add(2)

	if a.Contains(2) {
		t.Error("clone mutation leaked into source")
	}
}
