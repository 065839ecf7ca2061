package query

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ssargent/logmacster/pkg/adif"
	"github.com/ssargent/logmacster/pkg/logbook"
)

// Engine filters and orders store rows
type Engine struct {
	extractor FieldExtractor
}

// NewEngine creates a query engine. A nil extractor reads record fields
// directly.
func NewEngine(extractor FieldExtractor) *Engine {
	if extractor == nil {
		extractor = &RecordExtractor{}
	}
	return &Engine{extractor: extractor}
}

// Match reports whether rec satisfies q. A missing field compares as the
// empty string.
func (e *Engine) Match(rec adif.Record, q FieldQuery) bool {
	value, _ := e.extractor.Extract(rec, q.Field)

	if q.Operator == "~" {
		return strings.Contains(strings.ToLower(value), strings.ToLower(q.Value))
	}

	c := compare(q.Field, value, q.Value)
	switch q.Operator {
	case "=":
		return c == 0
	case "!=":
		return c != 0
	case ">":
		return c > 0
	case "<":
		return c < 0
	case ">=":
		return c >= 0
	case "<=":
		return c <= 0
	}
	return false
}

// Filter returns the rows that satisfy every query, in their original
// order
func (e *Engine) Filter(rows []logbook.Row, queries ...FieldQuery) []logbook.Row {
	out := make([]logbook.Row, 0, len(rows))
next:
	for _, row := range rows {
		for _, q := range queries {
			if !e.Match(row.Record, q) {
				continue next
			}
		}
		out = append(out, row)
	}
	return out
}

// Sort orders rows by field in place. Rows with equal values keep their
// relative order.
func (e *Engine) Sort(rows []logbook.Row, field string, descending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, _ := e.extractor.Extract(rows[i].Record, field)
		b, _ := e.extractor.Extract(rows[j].Record, field)
		if descending {
			return compare(field, a, b) > 0
		}
		return compare(field, a, b) < 0
	})
}

// Filter keeps the rows that satisfy every query
func Filter(rows []logbook.Row, queries ...FieldQuery) []logbook.Row {
	return NewEngine(nil).Filter(rows, queries...)
}

// Sort orders rows by field, stable
func Sort(rows []logbook.Row, field string, descending bool) {
	NewEngine(nil).Sort(rows, field, descending)
}

// compare orders two values of field. Numeric fields compare as numbers
// when both sides parse; everything else compares case-insensitively.
// Dates and times sort correctly as text because of their fixed width.
func compare(field, a, b string) int {
	if spec, ok := adif.Lookup(field); ok && spec.Type == adif.TypeNumber {
		x, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
		y, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
		if errA == nil && errB == nil {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
