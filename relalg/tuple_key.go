package relalg

import (
	"math"
	"time"
)

// TupleKey represents a hashable key for a tuple or subset of tuple values.
// It avoids string allocations by directly hashing the underlying data.
type TupleKey struct {
	// We'll store a hash of the tuple values
	hash uint64
	// And keep references to the values for equality checking
	values []Value
}

// NewTupleKey creates a key from specific tuple positions
func NewTupleKey(tuple Tuple, indices []int) TupleKey {
	// Special case for single column - avoid allocation
	if len(indices) == 1 {
		val := tuple[indices[0]]
		return TupleKey{
			hash:   hashValue(val),
			values: []Value{val},
		}
	}

	values := make([]Value, len(indices))
	for i, idx := range indices {
		values[i] = tuple[idx]
	}
	return TupleKey{
		hash:   hashValues(values),
		values: values,
	}
}

// NewTupleKeyFull creates a key from an entire tuple.
// The tuple is referenced, not copied; it must not be mutated afterwards.
func NewTupleKeyFull(tuple Tuple) TupleKey {
	return TupleKey{
		hash:   hashValues(tuple),
		values: tuple,
	}
}

// hashValues computes a hash for a slice of values without string conversion
func hashValues(values []Value) uint64 {
	// FNV-1a hash
	const prime = 1099511628211
	hash := uint64(14695981039346656037)

	for _, v := range values {
		hash ^= hashValue(v)
		hash *= prime
	}

	return hash
}

// hashValue hashes a single value without string conversion
func hashValue(v Value) uint64 {
	switch val := v.(type) {
	case string:
		return hashString(val)

	case int:
		return uint64(val)

	case int64:
		return uint64(val)

	case float64:
		return math.Float64bits(val)

	case bool:
		if val {
			return 1
		}
		return 0

	case time.Time:
		return uint64(val.UnixNano())

	case []byte:
		return hashBytes(val)

	case nil:
		return 0

	default:
		// Fallback: hash the printed form, consistent with ValuesEqual
		return hashString(stringValue(v))
	}
}

// hashBytes hashes a byte slice
func hashBytes(b []byte) uint64 {
	const prime = 1099511628211
	hash := uint64(14695981039346656037)

	for _, byte := range b {
		hash ^= uint64(byte)
		hash *= prime
	}

	return hash
}

// hashString hashes a string without allocation
func hashString(s string) uint64 {
	const prime = 1099511628211
	hash := uint64(14695981039346656037)

	for i := 0; i < len(s); i++ {
		hash ^= uint64(s[i])
		hash *= prime
	}

	return hash
}

// Equal checks if two keys are equal
func (k TupleKey) Equal(other TupleKey) bool {
	// Quick hash check first
	if k.hash != other.hash {
		return false
	}

	// Then check actual values
	if len(k.values) != len(other.values) {
		return false
	}

	for i, v1 := range k.values {
		v2 := other.values[i]
		if !ValuesEqual(v1, v2) {
			return false
		}
	}

	return true
}

// TupleKeyMap wraps a simple Go map for better performance.
// We use the hash directly as the key and handle collisions.
type TupleKeyMap struct {
	m map[uint64][]mapEntry
}

type mapEntry struct {
	values []Value     // The actual tuple values for collision checking
	value  interface{} // The stored value
}

// NewTupleKeyMap creates a new TupleKeyMap
func NewTupleKeyMap() *TupleKeyMap {
	return &TupleKeyMap{
		m: make(map[uint64][]mapEntry),
	}
}

// NewTupleKeyMapWithCapacity creates a new TupleKeyMap pre-sized to hold
// expectedSize entries
func NewTupleKeyMapWithCapacity(expectedSize int) *TupleKeyMap {
	return &TupleKeyMap{
		m: make(map[uint64][]mapEntry, expectedSize),
	}
}

// Put adds or updates a key-value pair
func (m *TupleKeyMap) Put(key TupleKey, value interface{}) {
	entries := m.m[key.hash]

	// Check if key already exists by comparing values
	for i := range entries {
		if tupleValuesEqual(entries[i].values, key.values) {
			entries[i].value = value
			return
		}
	}

	// Add new entry
	m.m[key.hash] = append(entries, mapEntry{
		values: key.values,
		value:  value,
	})
}

// Get retrieves a value by key
func (m *TupleKeyMap) Get(key TupleKey) (interface{}, bool) {
	entries, ok := m.m[key.hash]
	if !ok {
		return nil, false
	}

	for _, entry := range entries {
		if tupleValuesEqual(entry.values, key.values) {
			return entry.value, true
		}
	}

	return nil, false
}

// Exists checks if a key exists
func (m *TupleKeyMap) Exists(key TupleKey) bool {
	entries, ok := m.m[key.hash]
	if !ok {
		return false
	}

	for _, entry := range entries {
		if tupleValuesEqual(entry.values, key.values) {
			return true
		}
	}

	return false
}

// Len returns the number of distinct keys
func (m *TupleKeyMap) Len() int {
	n := 0
	for _, entries := range m.m {
		n += len(entries)
	}
	return n
}

// Range calls fn for each key's stored value until fn returns false.
// Iteration order is unspecified.
func (m *TupleKeyMap) Range(fn func(value interface{}) bool) {
	for _, entries := range m.m {
		for _, entry := range entries {
			if !fn(entry.value) {
				return
			}
		}
	}
}

// tupleValuesEqual checks if two value slices are equal
func tupleValuesEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ValuesEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// TupleSet is a hash set of tuples built on TupleKeyMap. It is the
// backbone of the engine's set semantics: relation construction, output
// deduplication, and the membership checks in division all go through it.
type TupleSet struct {
	m *TupleKeyMap
}

// NewTupleSet creates an empty TupleSet
func NewTupleSet() *TupleSet {
	return &TupleSet{m: NewTupleKeyMap()}
}

// NewTupleSetWithCapacity creates an empty TupleSet pre-sized for
// expectedSize tuples
func NewTupleSetWithCapacity(expectedSize int) *TupleSet {
	return &TupleSet{m: NewTupleKeyMapWithCapacity(expectedSize)}
}

// Add inserts a tuple and reports whether it was not already present
func (s *TupleSet) Add(tuple Tuple) bool {
	key := NewTupleKeyFull(tuple)
	if s.m.Exists(key) {
		return false
	}
	s.m.Put(key, tuple)
	return true
}

// Contains reports whether a tuple is in the set
func (s *TupleSet) Contains(tuple Tuple) bool {
	return s.m.Exists(NewTupleKeyFull(tuple))
}

// Len returns the number of tuples in the set
func (s *TupleSet) Len() int {
	return s.m.Len()
}
