package logbook

import (
	"fmt"
	"sync"
	"time"

	"github.com/brunoga/deep"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/logmacster/pkg/adif"
)

// Store holds the records of the open log, the header they were read with
// and the file they belong to. Rows are addressed by an ID assigned when
// they enter the store.
type Store struct {
	options  Options
	codec    *adif.Codec
	rows     []Row
	header   string
	path     string
	modified bool
	mutex    sync.RWMutex
}

// New creates an empty store
func New(opts Options) *Store {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	codec := adif.NewCodec()
	if opts.ProgramName != "" {
		codec.ProgramName = opts.ProgramName
	}
	return &Store{
		options: opts,
		codec:   codec,
		rows:    []Row{},
	}
}

// Load replaces the store content with doc and clears the modified flag
func (s *Store) Load(doc *adif.Document) {
	rows := make([]Row, 0, len(doc.Records))
	for _, rec := range doc.Records {
		rows = append(rows, Row{ID: newID(), Record: rec.Clone()})
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.rows = rows
	s.header = doc.Header
	s.path = doc.Path
	s.modified = false
}

// Rows returns a copy of every row in order
func (s *Store) Rows() []Row {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return deep.MustCopy(s.rows)
}

// Row returns a copy of the row with the given ID
func (s *Store) Row(id string) (Row, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Row{}, fmt.Errorf("row %s: %w", id, ErrRowNotFound)
	}
	return deep.MustCopy(s.rows[i]), nil
}

// Len returns the number of rows
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.rows)
}

// Header returns the header text the log was loaded with
func (s *Store) Header() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.header
}

// Path returns the file the log was loaded from or last saved to
func (s *Store) Path() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.path
}

// Modified reports whether there are unsaved changes
func (s *Store) Modified() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.modified
}

// Add appends a blank record and returns it
func (s *Store) Add() Row {
	row := Row{ID: newID(), Record: adif.NewEmptyQSO(s.options.Now())}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.rows = append(s.rows, row)
	s.modified = true
	return deep.MustCopy(row)
}

// Set validates value for field and stores it in the row with the given
// ID. An invalid value is not stored and the row keeps its previous value.
func (s *Store) Set(id, field, value string) (adif.ValidationResult, error) {
	res := adif.Validate(field, value)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return res, fmt.Errorf("row %s: %w", id, ErrRowNotFound)
	}
	if !res.Valid {
		return res, nil
	}

	s.rows[i].Record.Set(field, value)
	s.modified = true
	return res, nil
}

// Delete removes every row whose ID is listed and reports how many were
// removed. Unknown IDs are ignored.
func (s *Store) Delete(ids ...string) int {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	kept := s.rows[:0]
	removed := 0
	for _, row := range s.rows {
		if _, ok := drop[row.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	// release references held past the new length
	for i := len(kept); i < len(s.rows); i++ {
		s.rows[i] = Row{}
	}
	s.rows = kept

	if removed > 0 {
		s.modified = true
	}
	return removed
}

// Document returns a snapshot of the store as an ADIF document
func (s *Store) Document() *adif.Document {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	records := make([]adif.Record, len(s.rows))
	for i, row := range s.rows {
		records[i] = row.Record.Clone()
	}
	return &adif.Document{
		Header:  s.header,
		Records: records,
		Path:    s.path,
	}
}

// ADIF generates the text that saving the store would write
func (s *Store) ADIF() string {
	doc := s.Document()
	return s.codec.Encode(doc.Records, doc.Header)
}

// MarkSaved records a successful save to path
func (s *Store) MarkSaved(path string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.path = path
	s.modified = false
}

// IDAt returns the ID of the row at the zero-based position
func (s *Store) IDAt(pos int) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if pos < 0 || pos >= len(s.rows) {
		return "", fmt.Errorf("position %d of %d: %w", pos+1, len(s.rows), ErrRowNotFound)
	}
	return s.rows[pos].ID, nil
}

func (s *Store) indexOf(id string) int {
	for i, row := range s.rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

func newID() string {
	return ksuid.New().String()
}
