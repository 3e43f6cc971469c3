package relalg

import (
	"errors"
	"testing"
)

func TestRename(t *testing.T) {
	students := studentsFixture()

	renamed, err := Rename(students, "name", "student_name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	attrs := renamed.Attributes()
	if attrs[0] != "id" || attrs[1] != "student_name" || attrs[2] != "group_id" {
		t.Errorf("unexpected attributes after rename: %v", attrs)
	}
	if renamed.Size() != students.Size() {
		t.Errorf("rename changed tuple count: %d vs %d", renamed.Size(), students.Size())
	}
	if !renamed.Contains(Tuple{1, "Ivan", 101}) {
		t.Error("rename must leave data unchanged")
	}
	if renamed.Name() != "Students_renamed" {
		t.Errorf("unexpected derived name: %q", renamed.Name())
	}

	// Source schema is untouched
	if students.Attributes()[1] != "name" {
		t.Error("rename mutated its input schema")
	}
}

func TestRenameAttributeNotFound(t *testing.T) {
	students := studentsFixture()

	_, err := Rename(students, "nonexistent", "x")
	if err == nil {
		t.Fatal("expected error for missing attribute")
	}
	if !errors.Is(err, ErrAttributeNotFound) {
		t.Errorf("expected ErrAttributeNotFound, got %v", err)
	}
}

func TestAssign(t *testing.T) {
	students := studentsFixture()

	copied := Assign(students, "Enrolled")
	if copied.Name() != "Enrolled" {
		t.Errorf("expected name Enrolled, got %q", copied.Name())
	}
	if copied.Size() != students.Size() {
		t.Errorf("assign changed tuple count: %d vs %d", copied.Size(), students.Size())
	}
	for _, tuple := range students.Tuples() {
		if !copied.Contains(tuple) {
			t.Errorf("copy is missing tuple %v", tuple)
		}
	}
}

func TestAssignIsDeepCopy(t *testing.T) {
	src := MustNewRelation("Blobs",
		[]Attribute{"id", "payload"},
		[]Tuple{{1, []byte{0xde, 0xad}}})

	copied := Assign(src, "BlobsCopy")

	// Mutate the source's byte slice through the shared backing view;
	// the copy must not see it
	src.Tuples()[0][1].([]byte)[0] = 0x00

	payload := copied.Get(0)[1].([]byte)
	if payload[0] != 0xde {
		t.Errorf("assign did not deep-copy byte values: got 0x%x", payload[0])
	}
}
