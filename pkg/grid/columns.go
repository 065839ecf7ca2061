// Package grid describes how log records are laid out and edited as a
// table: the column model, the conversion of typed-in text to stored ADIF
// values, display formatting, and validated cell commits.
package grid

import "strings"

// EditorKind selects how a cell is edited
type EditorKind string

const (
	EditorText      EditorKind = "text"
	EditorSelect    EditorKind = "select"
	EditorLargeText EditorKind = "largeText"
)

// Option is one entry of a pick list
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Column is the display definition of one field
type Column struct {
	Field   string     `json:"field"`
	Header  string     `json:"header"`
	Width   int        `json:"width"`
	Editor  EditorKind `json:"editor"`
	Options []Option   `json:"options,omitempty"`
	Numeric bool       `json:"numeric,omitempty"`
	Pinned  bool       `json:"pinned,omitempty"`
}

// Bands is the band pick list
var Bands = []string{
	"160m", "80m", "60m", "40m", "30m", "20m", "17m", "15m", "12m", "10m",
	"6m", "4m", "2m", "1.25m", "70cm", "33cm", "23cm",
}

// Modes is the mode pick list
var Modes = []string{
	"SSB", "CW", "FM", "AM", "RTTY", "PSK31", "PSK63", "FT8", "FT4", "JS8",
	"MFSK", "OLIVIA", "JT65", "JT9", "MSK144", "VARA",
}

// QSLStatuses is the QSL status pick list
var QSLStatuses = []Option{
	{Value: "Y", Label: "Yes"},
	{Value: "N", Label: "No"},
	{Value: "R", Label: "Requested"},
	{Value: "Q", Label: "Queued"},
}

var columns = []Column{
	{Field: "CALL", Header: "Call Sign", Width: 120, Editor: EditorText, Pinned: true},
	{Field: "QSO_DATE", Header: "Date", Width: 110, Editor: EditorText},
	{Field: "TIME_ON", Header: "Time On", Width: 100, Editor: EditorText},
	{Field: "TIME_OFF", Header: "Time Off", Width: 100, Editor: EditorText},
	{Field: "BAND", Header: "Band", Width: 80, Editor: EditorSelect, Options: plainOptions(Bands)},
	{Field: "FREQ", Header: "Frequency", Width: 100, Editor: EditorText, Numeric: true},
	{Field: "MODE", Header: "Mode", Width: 80, Editor: EditorSelect, Options: plainOptions(Modes)},
	{Field: "RST_SENT", Header: "RST Sent", Width: 100, Editor: EditorText},
	{Field: "RST_RCVD", Header: "RST Rcvd", Width: 100, Editor: EditorText},
	{Field: "NAME", Header: "Name", Width: 120, Editor: EditorText},
	{Field: "QTH", Header: "QTH", Width: 150, Editor: EditorText},
	{Field: "STATE", Header: "State", Width: 80, Editor: EditorText},
	{Field: "COUNTRY", Header: "Country", Width: 120, Editor: EditorText},
	{Field: "GRIDSQUARE", Header: "Grid Square", Width: 110, Editor: EditorText},
	{Field: "LAT", Header: "Latitude", Width: 120, Editor: EditorText, Numeric: true},
	{Field: "LON", Header: "Longitude", Width: 120, Editor: EditorText, Numeric: true},
	{Field: "POWER", Header: "Power (W)", Width: 100, Editor: EditorText, Numeric: true},
	{Field: "QSL_SENT", Header: "QSL Sent", Width: 100, Editor: EditorSelect, Options: QSLStatuses},
	{Field: "QSL_RCVD", Header: "QSL Rcvd", Width: 100, Editor: EditorSelect, Options: QSLStatuses},
	{Field: "COMMENT", Header: "Comment", Width: 200, Editor: EditorLargeText},
}

func plainOptions(values []string) []Option {
	opts := make([]Option, len(values))
	for i, v := range values {
		opts[i] = Option{Value: v, Label: v}
	}
	return opts
}

// Columns returns the column model in display order
func Columns() []Column {
	out := make([]Column, len(columns))
	for i, c := range columns {
		c.Options = append([]Option(nil), c.Options...)
		out[i] = c
	}
	return out
}

// ColumnFor returns the column showing field
func ColumnFor(field string) (Column, bool) {
	for _, c := range columns {
		if strings.EqualFold(c.Field, field) {
			return c, true
		}
	}
	return Column{}, false
}

// HeaderName returns the column header for field, or the field name
// itself when no column shows it
func HeaderName(field string) string {
	if c, ok := ColumnFor(field); ok {
		return c.Header
	}
	return strings.ToUpper(field)
}
