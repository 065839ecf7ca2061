package grid

import (
	"strconv"
	"strings"

	"github.com/ssargent/logmacster/pkg/adif"
)

// ParseInput converts text typed into a cell to the value stored in the
// record: dates lose their dashes, times their colons, grid squares are
// upper-cased and coordinates lose the degree sign.
func ParseInput(field, raw string) string {
	switch strings.ToUpper(field) {
	case "LAT", "LON":
		cleaned := strings.TrimSpace(strings.ReplaceAll(raw, "°", ""))
		if v, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
		return cleaned
	case "GRIDSQUARE", "MY_GRIDSQUARE":
		return strings.ToUpper(raw)
	}

	spec, ok := adif.Lookup(field)
	if !ok {
		return raw
	}
	switch spec.Type {
	case adif.TypeDate:
		return strings.ReplaceAll(raw, "-", "")
	case adif.TypeTime:
		return strings.ReplaceAll(raw, ":", "")
	}
	return raw
}

// Format renders a stored value for display
func Format(field, value string) string {
	switch strings.ToUpper(field) {
	case "LAT":
		if v, ok := coordinate(value); ok {
			return strconv.FormatFloat(v, 'f', 6, 64)
		}
		return value
	case "LON":
		if v, ok := coordinate(value); ok {
			return strconv.FormatFloat(v, 'f', 6, 64) + "°"
		}
		return value
	case "QSL_SENT", "QSL_RCVD":
		for _, o := range QSLStatuses {
			if o.Value == value {
				return o.Label
			}
		}
		return value
	}

	spec, ok := adif.Lookup(field)
	if !ok {
		return value
	}
	switch spec.Type {
	case adif.TypeDate:
		if len(value) == 8 {
			return value[:4] + "-" + value[4:6] + "-" + value[6:]
		}
	case adif.TypeTime:
		if len(value) == 6 {
			return value[:2] + ":" + value[2:4] + ":" + value[4:]
		}
	}
	return value
}

// Highlight reports whether a stored value should be shown as out of range.
// Only coordinates are checked.
func Highlight(field, value string) bool {
	v, ok := coordinate(value)
	if !ok {
		return false
	}
	switch strings.ToUpper(field) {
	case "LAT":
		return v < -90 || v > 90
	case "LON":
		return v < -180 || v > 180
	}
	return false
}

func coordinate(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
