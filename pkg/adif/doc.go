// Package adif parses and generates ADIF (Amateur Data Interchange Format)
// text for LogMacster.
//
// The adif package implements the text codec that every other part of the
// editor is built on: it turns the contents of an .adi file into a Document
// of QSO records and turns records back into ADIF text.
//
// # Text Format
//
// An ADIF file is an optional free-text header terminated by <EOH>, followed
// by records terminated by <EOR>. Each record is a run of field tags:
//
//	<NAME>value
//	<NAME:LENGTH>value
//	<NAME:LENGTH:TYPE>value
//
// When LENGTH is present and positive it is authoritative: the value is
// exactly the next LENGTH characters, which may contain spaces, line breaks
// or '<' and '>' characters. Without a usable LENGTH the value runs up to
// the next '<' and is trimmed. The TYPE code is informational and ignored.
//
// Markers and field names are case-insensitive; stored names are always
// upper case.
//
// # Usage
//
//	codec := adif.NewCodec()
//
//	doc := codec.Decode(content)
//	for _, rec := range doc.Records {
//	    fmt.Println(rec.Get("CALL"))
//	}
//
//	text := codec.Encode(doc.Records, doc.Header)
//
// # Error Handling
//
// Decoding never fails. ADIF found in the wild is loosely conformant, so the
// parser extracts what it can:
//   - tag-like text that does not match the tag grammar is skipped
//   - a LENGTH running past the end of a record yields a truncated value
//   - fields with empty values are dropped, and so are records left empty
//
// Field values are checked separately with Validate, which consults the
// fixed schema in Fields and reports a human readable message.
//
// # Round Trip
//
// For any document whose records hold no empty values, decoding the output
// of Encode yields the same records field for field, and the original header
// is a prefix of the decoded header.
//
// # Thread Safety
//
// Codec instances hold no mutable state and are safe for concurrent use.
// Every call allocates and returns fresh records.
package adif
