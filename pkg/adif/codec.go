package adif

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultProgramName is written into the header of documents generated
// without one
const DefaultProgramName = "LogMacster"

// Codec handles parsing and generation of ADIF text
type Codec struct {
	// ProgramName names the generator in default headers
	ProgramName string
}

// NewCodec creates a new codec instance
func NewCodec() *Codec {
	return &Codec{ProgramName: DefaultProgramName}
}

// Decode parses ADIF text into a Document
func (c *Codec) Decode(content string) *Document {
	return Parse(content)
}

// DecodeBytes parses ADIF bytes into a Document
func (c *Codec) DecodeBytes(data []byte) *Document {
	return Parse(string(data))
}

// Encode generates ADIF text for records under header. An empty header is
// replaced by a generated-by line.
func (c *Codec) Encode(records []Record, header string) string {
	var b strings.Builder

	switch {
	case header != "":
		b.WriteString(header)
		if indexFold(header, eohMarker) < 0 {
			b.WriteString(eohMarker + "\n")
		}
	default:
		name := c.ProgramName
		if name == "" {
			name = DefaultProgramName
		}
		b.WriteString("Generated by " + name + "\n" + eohMarker + "\n")
	}

	for _, rec := range records {
		writeRecord(&b, rec)
	}

	return b.String()
}

// Generate produces ADIF text with the default codec
func Generate(records []Record, header string) string {
	return NewCodec().Encode(records, header)
}

func writeRecord(b *strings.Builder, rec Record) {
	for _, f := range rec.Fields {
		value := trimSpace(f.Value)
		if value == "" {
			continue
		}
		b.WriteByte('<')
		b.WriteString(strings.ToUpper(f.Name))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(utf8.RuneCountInString(value)))
		b.WriteByte('>')
		b.WriteString(value)
	}
	b.WriteString(eorMarker + "\n")
}
