package relalg

import (
	"errors"
	"testing"
)

func studentsFixture() *Relation {
	return MustNewRelation("Students",
		[]Attribute{"id", "name", "group_id"},
		[]Tuple{
			{1, "Ivan", 101},
			{2, "Maria", 102},
			{3, "Petr", 101},
		})
}

func groupsFixture() *Relation {
	return MustNewRelation("Groups",
		[]Attribute{"group_id", "course", "faculty"},
		[]Tuple{
			{101, 2, "IT"},
			{102, 3, "IT"},
		})
}

func TestNewRelation(t *testing.T) {
	rel := studentsFixture()

	if rel.Size() != 3 {
		t.Errorf("expected size 3, got %d", rel.Size())
	}
	if rel.IsEmpty() {
		t.Error("expected non-empty relation")
	}
	if rel.Arity() != 3 {
		t.Errorf("expected arity 3, got %d", rel.Arity())
	}

	attrs := rel.Attributes()
	if len(attrs) != 3 || attrs[0] != "id" || attrs[1] != "name" || attrs[2] != "group_id" {
		t.Errorf("unexpected attributes: %v", attrs)
	}
}

func TestNewRelationArityMismatch(t *testing.T) {
	_, err := NewRelation("Broken",
		[]Attribute{"a", "b"},
		[]Tuple{
			{1, 2},
			{3, 4, 5},
		})
	if err == nil {
		t.Fatal("expected arity error")
	}
	if !errors.Is(err, ErrArityMismatch) {
		t.Errorf("expected ErrArityMismatch, got %v", err)
	}
}

func TestNewRelationDeduplicates(t *testing.T) {
	rel := MustNewRelation("Dups",
		[]Attribute{"x", "y"},
		[]Tuple{
			{1, "a"},
			{2, "b"},
			{1, "a"},
			{1, "a"},
		})

	if rel.Size() != 2 {
		t.Errorf("expected duplicates collapsed to 2 tuples, got %d", rel.Size())
	}
}

func TestEmptyRelation(t *testing.T) {
	rel := MustNewRelation("Empty", []Attribute{"x", "y"}, nil)

	if !rel.IsEmpty() {
		t.Error("expected empty relation")
	}
	if rel.Size() != 0 {
		t.Errorf("expected size 0, got %d", rel.Size())
	}
	if rel.Get(0) != nil {
		t.Error("expected nil tuple for out-of-range index")
	}
}

func TestContains(t *testing.T) {
	rel := studentsFixture()

	if !rel.Contains(Tuple{1, "Ivan", 101}) {
		t.Error("expected relation to contain (1, Ivan, 101)")
	}
	if rel.Contains(Tuple{4, "Olga", 103}) {
		t.Error("did not expect relation to contain (4, Olga, 103)")
	}
	if rel.Contains(Tuple{1, "Ivan"}) {
		t.Error("did not expect relation to contain a short tuple")
	}
}

func TestAttributeIndex(t *testing.T) {
	rel := studentsFixture()

	tests := []struct {
		attr     Attribute
		expected int
	}{
		{"id", 0},
		{"name", 1},
		{"group_id", 2},
		{"missing", -1},
	}

	for _, tt := range tests {
		if got := rel.AttributeIndex(tt.attr); got != tt.expected {
			t.Errorf("AttributeIndex(%q) = %d, expected %d", tt.attr, got, tt.expected)
		}
	}
}

func TestSorted(t *testing.T) {
	rel := MustNewRelation("Unordered",
		[]Attribute{"n", "s"},
		[]Tuple{
			{3, "c"},
			{1, "a"},
			{2, "b"},
			{1, "b"},
		})

	sorted := rel.Sorted()
	if len(sorted) != 4 {
		t.Fatalf("expected 4 tuples, got %d", len(sorted))
	}

	expected := []Tuple{
		{1, "a"},
		{1, "b"},
		{2, "b"},
		{3, "c"},
	}
	for i, tuple := range expected {
		if !tupleValuesEqual(sorted[i], tuple) {
			t.Errorf("position %d: expected %v, got %v", i, tuple, sorted[i])
		}
	}

	// Sorting must not disturb the relation itself
	if rel.Size() != 4 {
		t.Errorf("relation size changed after Sorted: %d", rel.Size())
	}
}
