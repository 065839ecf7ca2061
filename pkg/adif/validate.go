package adif

import (
	"regexp"
	"strconv"
	"strings"
)

// ValidationResult is the outcome of checking one field value
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

var (
	datePattern = regexp.MustCompile(`^[0-9]{8}$`)
	timePattern = regexp.MustCompile(`^[0-9]{6}$`)
	gridPattern = regexp.MustCompile(`(?i)^[A-R]{2}[0-9]{2}([A-X]{2})?$`)
)

// Validate checks value against the schema type of field. Unknown fields
// and empty values are always valid. Only the shape is checked: 20240230
// is a valid date here.
func Validate(field, value string) ValidationResult {
	spec, ok := Lookup(field)
	if !ok || value == "" {
		return ValidationResult{Valid: true}
	}

	var errs []string
	switch spec.Type {
	case TypeDate:
		if !datePattern.MatchString(value) {
			errs = append(errs, "Date must be in YYYYMMDD format")
		}
	case TypeTime:
		if !timePattern.MatchString(value) {
			errs = append(errs, "Time must be in HHMMSS format")
		}
	case TypeNumber:
		if !IsNumber(value) {
			errs = append(errs, "Must be a valid number")
		}
	case TypeGridSquare:
		if !gridPattern.MatchString(value) {
			errs = append(errs, "Invalid grid square format")
		}
	}

	return ValidationResult{
		Valid:   len(errs) == 0,
		Message: strings.Join(errs, ", "),
	}
}

// IsNumber reports whether s reads as a number: decimal or scientific
// notation, Infinity, or an unsigned 0x, 0o or 0b integer. Surrounding
// white space is ignored and a blank string counts as zero.
func IsNumber(s string) bool {
	s = trimSpace(s)
	if s == "" {
		return true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return isUnsignedInt(s[2:], base)
		}
	}

	unsigned := strings.TrimLeft(s, "+-")
	if len(s)-len(unsigned) > 1 {
		return false
	}
	if unsigned == "Infinity" {
		return true
	}
	// ParseFloat is more permissive than a plain decimal literal
	for _, r := range unsigned {
		if !strings.ContainsRune("0123456789.eE+-", r) {
			return false
		}
	}

	_, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return true
	}
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return true
	}
	return false
}

func isUnsignedInt(digits string, base int) bool {
	if digits == "" {
		return false
	}
	for _, r := range digits {
		var v int
		switch {
		case r >= '0' && r <= '9':
			v = int(r - '0')
		case r >= 'a' && r <= 'f':
			v = int(r-'a') + 10
		case r >= 'A' && r <= 'F':
			v = int(r-'A') + 10
		default:
			return false
		}
		if v >= base {
			return false
		}
	}
	return true
}
