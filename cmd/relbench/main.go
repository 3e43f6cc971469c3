// relbench generates a synthetic dataset with duplicate rows, times the
// deduplication strategies against each other, then loads the clean rows
// into the relational engine and compares a nested-loop equi-join with the
// engine's hash-based natural join.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/akulagin/relalg/dataset"
	"github.com/akulagin/relalg/dedup"
	"github.com/akulagin/relalg/relalg"
)

var (
	rows      = kingpin.Flag("rows", "Number of rows to generate.").Default("10000").Int()
	dupRatio  = kingpin.Flag("dup-ratio", "Share of rows that are duplicates.").Default("0.3").Float64()
	seed      = kingpin.Flag("seed", "Random seed for the generator.").Default("1").Int64()
	outDir    = kingpin.Flag("out", "Directory for the generated files.").Default("").String()
	writeJSON = kingpin.Flag("json", "Also write the dataset as JSON.").Bool()
	sample    = kingpin.Flag("sample", "Rows of the loaded relation to display.").Default("5").Int()
)

func main() {
	kingpin.Parse()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	if err := run(logger); err != nil {
		level.Error(logger).Log("msg", "relbench failed", "err", err)
		os.Exit(1)
	}
}

func run(logger log.Logger) error {
	dir := *outDir
	if dir == "" {
		var err error
		dir, err = os.MkdirTemp("", "relbench")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)
	}

	// 1. Generate and persist the dataset
	records := dataset.Generate(*rows, *dupRatio, *seed)
	csvPath := filepath.Join(dir, "users.csv")
	if err := dataset.WriteCSV(csvPath, records); err != nil {
		return err
	}
	level.Info(logger).Log("msg", "generated dataset",
		"rows", humanize.Comma(int64(len(records))),
		"dup_ratio", *dupRatio,
		"path", csvPath)

	if *writeJSON {
		jsonPath := filepath.Join(dir, "users.json")
		if err := dataset.WriteJSON(jsonPath, records); err != nil {
			return err
		}
		level.Info(logger).Log("msg", "wrote JSON copy", "path", jsonPath)
	}

	// 2. Load it back, as a consumer would
	loaded, err := dataset.ReadCSV(csvPath)
	if err != nil {
		return err
	}

	// 3. Race the deduplication strategies
	results := dedup.RunAll(loaded)
	printDedupReport(results)

	// 4. Load the clean rows into the engine and compare join strategies
	users, err := dataset.ToRelation("Users", results[len(results)-1].Unique)
	if err != nil {
		return err
	}
	tiers := tierRelation()
	level.Info(logger).Log("msg", "built relations",
		"users", humanize.Comma(int64(users.Size())),
		"tiers", humanize.Comma(int64(tiers.Size())))

	if err := compareJoins(users, tiers); err != nil {
		return err
	}

	// 5. Show a sample of the joined relation
	joined := relalg.NaturalJoin(users, tiers)
	printSample(joined, *sample)

	return nil
}

// tierRelation maps every possible value 1..1000 to a coarse tier,
// sharing the "value" attribute with the users relation
func tierRelation() *relalg.Relation {
	tuples := make([]relalg.Tuple, 0, 1000)
	for v := 1; v <= 1000; v++ {
		tuples = append(tuples, relalg.Tuple{v, fmt.Sprintf("tier_%d", (v-1)/100)})
	}
	return relalg.MustNewRelation("Tiers",
		[]relalg.Attribute{"value", "tier"}, tuples)
}

// nestedLoopJoin is the strawman: an equi-join done by comparing every
// pair of tuples. Kept here, outside the engine, purely for the timing
// comparison against NaturalJoin's hash join.
func nestedLoopJoin(a, b *relalg.Relation, on relalg.Attribute) (*relalg.Relation, error) {
	ai := a.AttributeIndex(on)
	bi := b.AttributeIndex(on)
	if ai < 0 || bi < 0 {
		return nil, fmt.Errorf("join attribute %q missing from an input", on)
	}

	attrs := make([]relalg.Attribute, 0, a.Arity()+b.Arity()-1)
	attrs = append(attrs, a.Attributes()...)
	for i, attr := range b.Attributes() {
		if i != bi {
			attrs = append(attrs, attr)
		}
	}

	var tuples []relalg.Tuple
	for _, ta := range a.Tuples() {
		for _, tb := range b.Tuples() {
			if !relalg.ValuesEqual(ta[ai], tb[bi]) {
				continue
			}
			joined := make(relalg.Tuple, 0, len(attrs))
			joined = append(joined, ta...)
			for i, v := range tb {
				if i != bi {
					joined = append(joined, v)
				}
			}
			tuples = append(tuples, joined)
		}
	}

	return relalg.NewRelation(a.Name()+"_NLJOIN_"+b.Name(), attrs, tuples)
}

func compareJoins(users, tiers *relalg.Relation) error {
	start := time.Now()
	nested, err := nestedLoopJoin(users, tiers, "value")
	if err != nil {
		return err
	}
	nestedElapsed := time.Since(start)

	start = time.Now()
	hashed := relalg.NaturalJoin(users, tiers)
	hashedElapsed := time.Since(start)

	if nested.Size() != hashed.Size() {
		return fmt.Errorf("join strategies disagree: nested-loop %d tuples, hash %d",
			nested.Size(), hashed.Size())
	}

	fmt.Println()
	color.New(color.Bold).Println("Join strategies (identical results)")
	printTimingChart([]timing{
		{"nested-loop", nestedElapsed},
		{"hash natural join", hashedElapsed},
	})
	return nil
}

func printDedupReport(results []dedup.Result) {
	fmt.Println()
	color.New(color.Bold).Println("Deduplication strategies")

	timings := make([]timing, 0, len(results))
	for _, r := range results {
		fmt.Printf("  %-12s %s rows -> %s unique in %v\n",
			r.Strategy,
			humanize.Comma(int64(r.Input)),
			humanize.Comma(int64(len(r.Unique))),
			r.Elapsed)
		timings = append(timings, timing{r.Strategy, r.Elapsed})
	}
	printTimingChart(timings)
}

type timing struct {
	label   string
	elapsed time.Duration
}

// printTimingChart draws a terminal bar chart, bars scaled to the slowest
// entry, fastest bar in green and slowest in red
func printTimingChart(timings []timing) {
	const width = 40

	var min, max time.Duration
	for i, t := range timings {
		if i == 0 || t.elapsed > max {
			max = t.elapsed
		}
		if i == 0 || t.elapsed < min {
			min = t.elapsed
		}
	}
	if max == 0 {
		max = 1
	}

	for _, t := range timings {
		n := int(int64(width) * int64(t.elapsed) / int64(max))
		if n < 1 {
			n = 1
		}
		bar := strings.Repeat("█", n)
		switch t.elapsed {
		case min:
			bar = color.GreenString(bar)
		case max:
			bar = color.RedString(bar)
		}
		fmt.Printf("  %-18s %s %v\n", t.label, bar, t.elapsed)
	}
}

func printSample(rel *relalg.Relation, n int) {
	if n <= 0 {
		return
	}

	sorted := rel.Sorted()
	if n > len(sorted) {
		n = len(sorted)
	}
	head := relalg.MustNewRelation(rel.Name()+"_head", rel.Attributes(), sorted[:n])

	fmt.Println()
	fmt.Printf("%s (first %d of %s tuples)\n",
		rel.String(), n, humanize.Comma(int64(rel.Size())))
	fmt.Println(head.Table())
}
