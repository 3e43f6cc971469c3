package relalg

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// CompareValues compares two values and returns:
//
//	-1 if left < right
//	 0 if left == right
//	 1 if left > right
//
// It handles all tuple value types (string, int, int64, float64, bool,
// time.Time, []byte), nil (less than any non-nil value), and conversions
// between numeric types. Unknown types fall back to string comparison so
// that the ordering is total, which Sorted relies on for determinism.
func CompareValues(left, right Value) int {
	// Handle nil
	if left == nil && right == nil {
		return 0
	}
	if left == nil {
		return -1
	}
	if right == nil {
		return 1
	}

	switch l := left.(type) {
	case int:
		return compareNumeric(int64(l), right)
	case int64:
		return compareNumeric(l, right)
	case float64:
		return compareFloat(l, right)
	case string:
		if r, ok := right.(string); ok {
			return strings.Compare(l, r)
		}
		// String vs non-string: type mismatch
		return -1
	case bool:
		if r, ok := right.(bool); ok {
			if !l && r {
				return -1
			} else if l && !r {
				return 1
			}
			return 0
		}
		// Bool vs non-bool: type mismatch
		return -1
	case time.Time:
		if r, ok := right.(time.Time); ok {
			if l.Before(r) {
				return -1
			} else if l.After(r) {
				return 1
			}
			return 0
		}
		// Time vs non-time: type mismatch
		return -1
	case []byte:
		if r, ok := right.([]byte); ok {
			return bytes.Compare(l, r)
		}
		// Bytes vs non-bytes: type mismatch
		return -1
	}

	// Fall back to string comparison for unknown types
	return strings.Compare(stringValue(left), stringValue(right))
}

// compareNumeric compares an int64 with another numeric value
func compareNumeric(left int64, right Value) int {
	switch r := right.(type) {
	case int:
		return compareInt64s(left, int64(r))
	case int64:
		return compareInt64s(left, r)
	case float64:
		return compareFloats(float64(left), r)
	}
	// Non-numeric: type mismatch
	return -1
}

// compareFloat compares a float64 with another numeric value
func compareFloat(left float64, right Value) int {
	switch r := right.(type) {
	case int:
		return compareFloats(left, float64(r))
	case int64:
		return compareFloats(left, float64(r))
	case float64:
		return compareFloats(left, r)
	}
	// Non-numeric: type mismatch
	return -1
}

func compareInt64s(a, b int64) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

func compareFloats(a, b float64) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// ValuesEqual checks if two values are equal.
func ValuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	// Non-comparable and location-sensitive types first
	switch av := a.(type) {
	case []byte:
		bv, ok := b.([]byte)
		return ok && bytes.Equal(av, bv)
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	case int:
		// int and int64 hash identically, so they must compare equal too
		switch bv := b.(type) {
		case int:
			return av == bv
		case int64:
			return int64(av) == bv
		}
		return false
	case int64:
		switch bv := b.(type) {
		case int:
			return av == int64(bv)
		case int64:
			return av == bv
		}
		return false
	case float64, string, bool:
		return a == b
	}

	// Fall back to string comparison for unknown types
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

// stringValue converts any value to a string for comparison
func stringValue(v Value) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
