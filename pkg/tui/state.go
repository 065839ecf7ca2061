// Package tui is the terminal grid editor. Key handling only touches
// AppState and reports an Action; App carries the actions out against the
// store and draws the state with tcell.
package tui

import (
	"fmt"

	"github.com/ssargent/logmacster/pkg/grid"
	"github.com/ssargent/logmacster/pkg/logbook"
)

// Mode is what keystrokes currently act on
type Mode int

const (
	ModeBrowse Mode = iota
	ModeEdit
	ModeFilter
	ModeConfirmDelete
)

// Action is work a keystroke asks the application to do
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionCommit
	ActionDelete
	ActionNew
	ActionSave
	ActionOpen
	ActionFilter
	ActionSort
)

// AppState is everything the grid shows
type AppState struct {
	columns []grid.Column
	rows    []logbook.Row

	row, col  int // cursor
	top, left int // first visible row and column
	pageSize  int

	selected map[string]bool
	pending  []string // rows awaiting delete confirmation

	mode   Mode
	input  []rune
	cursor int

	status    string
	filter    string
	sortField string
	sortDesc  bool
	followEnd bool
}

// NewState creates an empty grid state
func NewState() *AppState {
	return &AppState{
		columns:  grid.Columns(),
		selected: map[string]bool{},
		pageSize: 10,
	}
}

// SetRows replaces the visible rows, keeping the cursor in range and
// dropping selections of rows that are gone
func (s *AppState) SetRows(rows []logbook.Row) {
	s.rows = rows

	present := make(map[string]bool, len(rows))
	for _, r := range rows {
		present[r.ID] = true
	}
	for id := range s.selected {
		if !present[id] {
			delete(s.selected, id)
		}
	}

	if s.followEnd && len(rows) > 0 {
		s.row = len(rows) - 1
		s.col = 0
		s.followEnd = false
	}
	s.clamp()
}

// CurrentRow returns the row under the cursor
func (s *AppState) CurrentRow() (logbook.Row, bool) {
	if s.row < 0 || s.row >= len(s.rows) {
		return logbook.Row{}, false
	}
	return s.rows[s.row], true
}

// CurrentColumn returns the column under the cursor
func (s *AppState) CurrentColumn() grid.Column {
	return s.columns[s.col]
}

// SelectedIDs returns the selected row IDs in display order
func (s *AppState) SelectedIDs() []string {
	var ids []string
	for _, r := range s.rows {
		if s.selected[r.ID] {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// Input returns the text being typed in edit or filter mode
func (s *AppState) Input() string {
	return string(s.input)
}

// Mode returns the current mode
func (s *AppState) Mode() Mode {
	return s.mode
}

// Status returns the status line message
func (s *AppState) Status() string {
	return s.status
}

// SetStatus replaces the status line message
func (s *AppState) SetStatus(format string, args ...any) {
	s.status = fmt.Sprintf(format, args...)
}

// SetPageSize sets how many rows fit on screen
func (s *AppState) SetPageSize(n int) {
	if n < 1 {
		n = 1
	}
	s.pageSize = n
	s.clamp()
}

// Pending returns the rows awaiting delete confirmation
func (s *AppState) Pending() []string {
	return s.pending
}

// Filter returns the active filter text
func (s *AppState) Filter() string {
	return s.filter
}

// Sort returns the active sort field and direction
func (s *AppState) Sort() (string, bool) {
	return s.sortField, s.sortDesc
}

func (s *AppState) clamp() {
	if s.row >= len(s.rows) {
		s.row = len(s.rows) - 1
	}
	if s.row < 0 {
		s.row = 0
	}
	if s.col >= len(s.columns) {
		s.col = len(s.columns) - 1
	}
	if s.col < 0 {
		s.col = 0
	}

	if s.row < s.top {
		s.top = s.row
	}
	if s.row >= s.top+s.pageSize {
		s.top = s.row - s.pageSize + 1
	}
	if s.top < 0 {
		s.top = 0
	}
	if s.col < s.left {
		s.left = s.col
	}
}

func (s *AppState) startInput(mode Mode, text string) {
	s.mode = mode
	s.input = []rune(text)
	s.cursor = len(s.input)
}

func (s *AppState) endInput() {
	s.mode = ModeBrowse
	s.input = nil
	s.cursor = 0
}
