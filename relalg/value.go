package relalg

import (
	"time"
)

// Value represents any value that can be stored in a tuple.
// Attributes are opaque value slots: no type homogeneity across a column
// is enforced, so we use interface{} with direct Go types.
type Value interface{}

// Valid value types:
// - string
// - int
// - int64
// - float64
// - bool
// - time.Time
// - []byte
// - nil

// Helper functions for creating typed values
func String(s string) Value  { return s }
func Int(i int64) Value      { return i }
func Float(f float64) Value  { return f }
func Bool(b bool) Value      { return b }
func Time(t time.Time) Value { return t }
func Bytes(b []byte) Value   { return b }
