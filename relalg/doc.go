// Package relalg implements an in-memory relational algebra engine.
//
// A Relation is a named table: an ordered list of attributes plus a
// duplicate-free set of fixed-arity tuples. The operator layer (Union,
// Intersect, Difference, Assign, CrossProduct, Select, Project, Rename,
// NaturalJoin, Divide) consists of pure functions that take one or two
// Relations and return a new Relation, never mutating their inputs.
// Callers compose operators into expression trees that are evaluated
// eagerly, one fully materialized intermediate Relation at a time.
//
// The engine has no I/O, no persistence, and no shared mutable state.
// Relations are immutable values, so independent expressions over shared
// inputs may be evaluated concurrently without locking.
package relalg
