package adif

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// Field is a single named value of a QSO record
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Record represents one QSO. Field names are unique and kept in the order
// they were first set.
type Record struct {
	Fields []Field
}

// NewRecord creates a record from alternating name, value pairs
func NewRecord(pairs ...string) Record {
	if len(pairs)%2 != 0 {
		panic("adif: NewRecord requires name/value pairs")
	}
	var r Record
	for i := 0; i < len(pairs); i += 2 {
		r.Set(pairs[i], pairs[i+1])
	}
	return r
}

// Get returns the value stored under name
func (r Record) Get(name string) (string, bool) {
	if i := r.index(name); i >= 0 {
		return r.Fields[i].Value, true
	}
	return "", false
}

// Value returns the value stored under name, or "" when absent
func (r Record) Value(name string) string {
	v, _ := r.Get(name)
	return v
}

// Has reports whether the record carries a field called name
func (r Record) Has(name string) bool {
	return r.index(name) >= 0
}

// Set stores value under the upper-cased name. An existing field keeps its
// position.
func (r *Record) Set(name, value string) {
	name = strings.ToUpper(name)
	if i := r.index(name); i >= 0 {
		r.Fields[i].Value = value
		return
	}
	r.Fields = append(r.Fields, Field{Name: name, Value: value})
}

// Delete removes the field called name and reports whether it was present
func (r *Record) Delete(name string) bool {
	i := r.index(name)
	if i < 0 {
		return false
	}
	r.Fields = append(r.Fields[:i], r.Fields[i+1:]...)
	return true
}

// Names returns the field names in record order
func (r Record) Names() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}
	return names
}

// Len returns the number of fields
func (r Record) Len() int {
	return len(r.Fields)
}

// Clone returns a copy that shares no storage with r
func (r Record) Clone() Record {
	if r.Fields == nil {
		return Record{}
	}
	fields := make([]Field, len(r.Fields))
	copy(fields, r.Fields)
	return Record{Fields: fields}
}

// Equal reports whether both records hold the same fields, ignoring order
func (r Record) Equal(other Record) bool {
	if len(r.Fields) != len(other.Fields) {
		return false
	}
	for _, f := range r.Fields {
		v, ok := other.Get(f.Name)
		if !ok || v != f.Value {
			return false
		}
	}
	return true
}

// Map returns the fields as a plain map
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r.Fields))
	for _, f := range r.Fields {
		m[f.Name] = f.Value
	}
	return m
}

// OrderedMap returns the fields as an ordered map, preserving record order
func (r Record) OrderedMap() *orderedmap.OrderedMap {
	om := orderedmap.New()
	om.SetEscapeHTML(false)
	for _, f := range r.Fields {
		om.Set(f.Name, f.Value)
	}
	return om
}

// MarshalJSON encodes the record as a JSON object in field order
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.OrderedMap())
}

// UnmarshalJSON decodes a JSON object of string values, keeping key order
func (r *Record) UnmarshalJSON(data []byte) error {
	om := orderedmap.New()
	if err := json.Unmarshal(data, om); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	r.Fields = nil
	for _, k := range om.Keys() {
		v, _ := om.Get(k)
		switch val := v.(type) {
		case string:
			r.Set(k, val)
		case float64:
			r.Set(k, fmt.Sprint(val))
		case nil:
			r.Set(k, "")
		default:
			return fmt.Errorf("field %s: unsupported value type %T", k, v)
		}
	}
	return nil
}

func (r Record) index(name string) int {
	for i, f := range r.Fields {
		if strings.EqualFold(f.Name, name) {
			return i
		}
	}
	return -1
}

// Document is the parsed content of an ADIF file
type Document struct {
	Header  string   `json:"header"`
	Records []Record `json:"records"`
	Path    string   `json:"path,omitempty"`
}

// HeaderFields returns the tags found in the header text before its <EOH>
// marker. The header itself is never rewritten.
func (d *Document) HeaderFields() Record {
	text := d.Header
	if i := indexFold(text, eohMarker); i >= 0 {
		text = text[:i]
	}
	return scanFields(text)
}

// ADIF generates the document's text using the default codec
func (d *Document) ADIF() string {
	return Generate(d.Records, d.Header)
}
