package logbook

import (
	"time"

	"github.com/ssargent/logmacster/pkg/adif"
)

// Row is one QSO in the store together with its stable identifier
type Row struct {
	ID     string      `json:"id"`
	Record adif.Record `json:"record"`
}

// Options holds configuration for a Store
type Options struct {
	Now         func() time.Time // clock used for blank records (default time.Now)
	ProgramName string           // generator name for documents without a header
}

// Errors
var (
	ErrRowNotFound = &LogbookError{"row not found"}
)

// LogbookError represents a record store error
type LogbookError struct {
	Message string
}

func (e *LogbookError) Error() string {
	return e.Message
}
