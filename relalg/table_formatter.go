package relalg

import (
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// TableFormatter provides utilities for formatting Relations as tables
type TableFormatter struct {
	// MaxWidth is the maximum width for a column
	MaxWidth int
	// TruncateString is the string to append when truncating
	TruncateString string
}

// NewTableFormatter creates a new table formatter with default settings
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		MaxWidth:       50,
		TruncateString: "...",
	}
}

// FormatRelation formats a Relation as a markdown table, rows in Sorted
// order so the rendering is deterministic
func (tf *TableFormatter) FormatRelation(rel *Relation) string {
	if rel == nil || rel.IsEmpty() {
		return "_Empty relation_"
	}

	return tf.formatTable(rel.Attributes(), rel.Sorted())
}

// formatTable formats attributes and tuples as a markdown table
func (tf *TableFormatter) formatTable(attrs []Attribute, tuples []Tuple) string {
	if len(tuples) == 0 {
		return fmt.Sprintf("_Attributes: %v_\n\n_No rows_", attrs)
	}

	tableString := &strings.Builder{}

	// Create alignment array with all columns using AlignNone for simple separators
	alignment := make([]tw.Align, len(attrs))
	for i := range alignment {
		alignment[i] = tw.AlignNone
	}

	table := tablewriter.NewTable(tableString,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)

	// Set headers
	headers := make([]string, len(attrs))
	for i, attr := range attrs {
		headers[i] = string(attr)
	}
	table.Header(headers)

	// Append rows
	for _, tuple := range tuples {
		row := make([]string, len(tuple))
		for j, val := range tuple {
			row[j] = tf.formatValue(val)
		}
		table.Append(row)
	}

	// Render the table
	table.Render()

	// Add row count
	tableString.WriteString(fmt.Sprintf("\n_%d rows_\n", len(tuples)))

	return tableString.String()
}

// formatValue converts a value to a string representation
func (tf *TableFormatter) formatValue(val Value) string {
	if val == nil {
		return "nil"
	}

	switch v := val.(type) {
	case string:
		return v
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%.2f", v)
	case bool:
		return fmt.Sprintf("%t", v)
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	case []byte:
		return fmt.Sprintf("0x%x", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// PrintRelation prints a relation to stdout
func PrintRelation(rel *Relation) {
	formatter := NewTableFormatter()
	fmt.Println(formatter.FormatRelation(rel))
}

// RelationString returns a string representation of a relation
func RelationString(rel *Relation) string {
	formatter := NewTableFormatter()
	return formatter.FormatRelation(rel)
}
