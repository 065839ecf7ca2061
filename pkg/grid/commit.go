package grid

import (
	"fmt"

	"github.com/ssargent/logmacster/pkg/adif"
)

// Setter stores a validated value in a row. logbook.Store implements it.
type Setter interface {
	Set(id, field, value string) (adif.ValidationResult, error)
}

// CommitError reports a cell edit rejected by the validator
type CommitError struct {
	Field   string
	Header  string
	Message string
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("Invalid %s: %s", e.Header, e.Message)
}

// Commit converts raw cell text and stores it in row id. A value rejected
// by the validator is returned as a *CommitError and the row keeps its
// previous value. The stored value is returned on success.
func Commit(s Setter, id, field, raw string) (string, error) {
	value := ParseInput(field, raw)

	res, err := s.Set(id, field, value)
	if err != nil {
		return "", err
	}
	if !res.Valid {
		return "", &CommitError{
			Field:   field,
			Header:  HeaderName(field),
			Message: res.Message,
		}
	}
	return value, nil
}
