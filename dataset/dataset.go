// Package dataset generates and loads the synthetic user records used to
// exercise the deduplication strategies and the relational engine. A
// generated dataset contains a configurable share of exact-duplicate rows.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/akulagin/relalg/relalg"
)

// Record is one synthetic user row
type Record struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Value int    `json:"value"`
}

// duplicatePool bounds the prefix of unique rows that duplicates are
// copied from, so duplicate runs cluster on a small, hot subset
const duplicatePool = 100

// Generate produces n records of which roughly n*duplicateRatio are exact
// copies of earlier rows, shuffled into random positions. The same seed
// yields the same dataset.
func Generate(n int, duplicateRatio float64, seed int64) []Record {
	rng := rand.New(rand.NewSource(seed))

	unique := n - int(float64(n)*duplicateRatio)
	if unique < 1 {
		unique = 1
	}

	records := make([]Record, 0, n)
	for i := 0; i < unique; i++ {
		records = append(records, Record{
			ID:    i,
			Name:  fmt.Sprintf("User_%d", i),
			Email: fmt.Sprintf("user%d@example.com", i),
			Value: rng.Intn(1000) + 1,
		})
	}

	pool := duplicatePool
	if pool > unique {
		pool = unique
	}
	for i := unique; i < n; i++ {
		records = append(records, records[rng.Intn(pool)])
	}

	rng.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})

	return records
}

var csvHeader = []string{"id", "name", "email", "value"}

// WriteCSV writes records to a CSV file with a header row
func WriteCSV(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			r.Name,
			r.Email,
			strconv.Itoa(r.Value),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}

// ReadCSV loads records from a CSV file written by WriteCSV,
// converting the numeric columns back to ints
func ReadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] { // skip header
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("row %d: expected %d fields, got %d", i+1, len(csvHeader), len(row))
		}
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad id %q: %w", i+1, row[0], err)
		}
		value, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad value %q: %w", i+1, row[3], err)
		}
		records = append(records, Record{
			ID:    id,
			Name:  row[1],
			Email: row[2],
			Value: value,
		})
	}
	return records, nil
}

// WriteJSON writes records to a JSON array file
func WriteJSON(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// ReadJSON loads records from a JSON array file
func ReadJSON(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []Record
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return records, nil
}

// Attributes is the schema of relations built by ToRelation
var Attributes = []relalg.Attribute{"id", "name", "email", "value"}

// ToRelation materializes records into a Relation. Duplicate rows collapse
// under the relation's set semantics.
func ToRelation(name string, records []Record) (*relalg.Relation, error) {
	tuples := make([]relalg.Tuple, len(records))
	for i, r := range records {
		tuples[i] = relalg.Tuple{r.ID, r.Name, r.Email, r.Value}
	}
	return relalg.NewRelation(name, Attributes, tuples)
}
