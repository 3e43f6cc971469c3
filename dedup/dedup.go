// Package dedup implements three deduplication strategies over synthetic
// datasets and times them against each other. All strategies keep the
// first occurrence of each distinct row and preserve input order.
package dedup

import (
	"crypto/md5"
	"encoding/json"
	"time"

	"github.com/akulagin/relalg/dataset"
)

// Strategy is a named deduplication implementation
type Strategy struct {
	Name string
	Run  func([]dataset.Record) []dataset.Record
}

// Result is the outcome of one timed strategy run
type Result struct {
	Strategy string
	Input    int
	Unique   []dataset.Record
	Elapsed  time.Duration
}

// Strategies lists the implementations in slowest-first order
var Strategies = []Strategy{
	{Name: "naive", Run: Naive},
	{Name: "md5-hash", Run: Hash},
	{Name: "tuple-set", Run: TupleSet},
}

// Naive removes duplicates with a quadratic linear scan. It exists as the
// worst-case baseline for the comparison; never use it on real data.
func Naive(records []dataset.Record) []dataset.Record {
	var unique []dataset.Record
	for _, r := range records {
		found := false
		for _, u := range unique {
			if u == r {
				found = true
				break
			}
		}
		if !found {
			unique = append(unique, r)
		}
	}
	return unique
}

// Hash removes duplicates by hashing a canonical JSON serialization of
// each record with MD5 and tracking seen digests
func Hash(records []dataset.Record) []dataset.Record {
	seen := make(map[[md5.Size]byte]struct{}, len(records))
	unique := make([]dataset.Record, 0, len(records))

	for _, r := range records {
		// Struct field order is fixed, so the serialization is canonical
		buf, err := json.Marshal(r)
		if err != nil {
			// Record is a plain struct of ints and strings; Marshal
			// cannot fail on it
			panic(err)
		}
		digest := md5.Sum(buf)
		if _, ok := seen[digest]; ok {
			continue
		}
		seen[digest] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}

// TupleSet removes duplicates through a native map keyed on the record
// value itself. This is the fast path: no serialization, one map probe
// per row.
func TupleSet(records []dataset.Record) []dataset.Record {
	seen := make(map[dataset.Record]struct{}, len(records))
	unique := make([]dataset.Record, 0, len(records))

	for _, r := range records {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}

// RunAll times every strategy on the same input
func RunAll(records []dataset.Record) []Result {
	results := make([]Result, 0, len(Strategies))
	for _, s := range Strategies {
		start := time.Now()
		unique := s.Run(records)
		results = append(results, Result{
			Strategy: s.Name,
			Input:    len(records),
			Unique:   unique,
			Elapsed:  time.Since(start),
		})
	}
	return results
}
