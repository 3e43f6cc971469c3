package dedup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akulagin/relalg/dataset"
)

func TestStrategiesAgree(t *testing.T) {
	records := dataset.Generate(500, 0.4, 11)

	var expected []dataset.Record
	for _, s := range Strategies {
		unique := s.Run(records)
		if expected == nil {
			expected = unique
			continue
		}
		assert.Equal(t, expected, unique,
			"strategy %q disagrees with %q", s.Name, Strategies[0].Name)
	}
}

func TestDedupRemovesDuplicates(t *testing.T) {
	records := []dataset.Record{
		{ID: 1, Name: "a", Email: "a@x", Value: 10},
		{ID: 2, Name: "b", Email: "b@x", Value: 20},
		{ID: 1, Name: "a", Email: "a@x", Value: 10},
		{ID: 3, Name: "c", Email: "c@x", Value: 30},
		{ID: 2, Name: "b", Email: "b@x", Value: 20},
	}

	for _, s := range Strategies {
		unique := s.Run(records)
		require.Len(t, unique, 3, "strategy %q", s.Name)
		// First occurrence order is preserved
		assert.Equal(t, 1, unique[0].ID, "strategy %q", s.Name)
		assert.Equal(t, 2, unique[1].ID, "strategy %q", s.Name)
		assert.Equal(t, 3, unique[2].ID, "strategy %q", s.Name)
	}
}

func TestDedupNoDuplicates(t *testing.T) {
	records := dataset.Generate(100, 0, 5)

	for _, s := range Strategies {
		unique := s.Run(records)
		assert.Len(t, unique, len(records), "strategy %q", s.Name)
	}
}

func TestRunAll(t *testing.T) {
	records := dataset.Generate(300, 0.3, 2)

	results := RunAll(records)
	require.Len(t, results, len(Strategies))

	for _, r := range results {
		assert.Equal(t, 300, r.Input)
		assert.Equal(t, len(results[0].Unique), len(r.Unique),
			"strategy %q found a different unique count", r.Strategy)
		assert.GreaterOrEqual(t, r.Elapsed, time.Duration(0))
	}
}
