package query

import (
	"fmt"
	"strings"

	"github.com/ssargent/logmacster/pkg/adif"
)

// FieldExtractor defines how to extract a field value from a record
type FieldExtractor interface {
	Extract(rec adif.Record, field string) (string, bool)
}

// RecordExtractor reads fields straight from the record
type RecordExtractor struct{}

// Extract implements FieldExtractor for ADIF records
func (e *RecordExtractor) Extract(rec adif.Record, field string) (string, bool) {
	return rec.Get(field)
}

// Operators in the order they are tried when parsing; two-character
// operators come first so ">=" is not read as ">".
var operators = []string{"!=", ">=", "<=", "=", ">", "<", "~"}

// FieldQuery represents a single field-based query condition
type FieldQuery struct {
	Field    string `json:"field"`    // Field name to query (e.g., "CALL", "BAND")
	Operator string `json:"operator"` // One of "=", "!=", ">", "<", ">=", "<=", "~"
	Value    string `json:"value"`    // Value to compare against
}

// Validate checks if the query is properly formed
func (q *FieldQuery) Validate() error {
	if q.Field == "" {
		return fmt.Errorf("field name cannot be empty")
	}
	if q.Operator == "" {
		return fmt.Errorf("operator cannot be empty")
	}
	for _, op := range operators {
		if q.Operator == op {
			return nil
		}
	}
	return fmt.Errorf("invalid operator: %s", q.Operator)
}

// String renders the query in the form ParseFieldQuery accepts
func (q FieldQuery) String() string {
	return q.Field + q.Operator + q.Value
}

// ParseFieldQuery parses "FIELD<op>VALUE", for example "CALL~W1" or
// "QSO_DATE>=20240101". The field name is upper-cased and surrounding
// white space is dropped from both sides.
func ParseFieldQuery(s string) (FieldQuery, error) {
	pos, op := -1, ""
	for i := 0; i < len(s) && pos < 0; i++ {
		for _, candidate := range operators {
			if strings.HasPrefix(s[i:], candidate) {
				pos, op = i, candidate
				break
			}
		}
	}
	if pos < 0 {
		return FieldQuery{}, fmt.Errorf("no operator in query %q", s)
	}

	q := FieldQuery{
		Field:    strings.ToUpper(strings.TrimSpace(s[:pos])),
		Operator: op,
		Value:    strings.TrimSpace(s[pos+len(op):]),
	}
	if err := q.Validate(); err != nil {
		return FieldQuery{}, fmt.Errorf("invalid query %q: %w", s, err)
	}
	return q, nil
}

// ParseFieldQueries parses a comma separated list of queries
func ParseFieldQueries(s string) ([]FieldQuery, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var queries []FieldQuery
	for _, part := range strings.Split(s, ",") {
		q, err := ParseFieldQuery(part)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
	return queries, nil
}
