//go:build fuzz
// +build fuzz

package adif

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzParse checks that arbitrary input never panics and never yields
// empty values or empty records
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("<EOH><CALL:4>W1AW<EOR>")
	f.Add("<COMMENT:11>Hello>World<EOR>")
	f.Add("<A:4x><B:4:><C:99999999999999999999>x<EOR>")
	f.Add("\uFEFF<eoh><call>  <eor><EOR>")

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 100000 {
			t.Skip("input too large")
		}

		doc := Parse(input)
		for _, rec := range doc.Records {
			if rec.Len() == 0 {
				t.Fatalf("empty record from %q", input)
			}
			for _, fld := range rec.Fields {
				if fld.Value == "" {
					t.Fatalf("empty value for %s from %q", fld.Name, input)
				}
				if fld.Name != strings.ToUpper(fld.Name) {
					t.Fatalf("name %q not upper-cased", fld.Name)
				}
			}
		}
	})
}

// FuzzRoundTrip checks that generated text parses back to the same record
func FuzzRoundTrip(f *testing.F) {
	f.Add("CALL", "W1AW")
	f.Add("COMMENT", "a<b>c<EOR>")
	f.Add("NAME", "Jürgen")

	f.Fuzz(func(t *testing.T, name, value string) {
		if !utf8.ValidString(name) || !utf8.ValidString(value) {
			t.Skip("invalid utf-8")
		}
		if name == "" || strings.ContainsAny(name, "<>: \t\r\n") || !isPlainASCII(name) {
			t.Skip("name is not a tag name")
		}
		if strings.ContainsRune(value, '<') && strings.Contains(strings.ToUpper(value), "<EOR>") {
			t.Skip("value contains a record marker")
		}
		value = trimSpace(value)
		if value == "" {
			t.Skip("blank value")
		}

		rec := NewRecord(name, value)
		doc := Parse(Generate([]Record{rec}, ""))

		if len(doc.Records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(doc.Records))
		}
		if got := doc.Records[0].Value(name); got != value {
			t.Errorf("value mismatch: got %q, want %q", got, value)
		}
	})
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x21 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
