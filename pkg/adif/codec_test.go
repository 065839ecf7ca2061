package adif

import (
	"strings"
	"testing"
)

func TestCodec_EncodeDefaultHeader(t *testing.T) {
	out := Generate([]Record{NewRecord("CALL", "W1AW")}, "")

	want := "Generated by LogMacster\n<EOH>\n<CALL:4>W1AW<EOR>\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestCodec_EncodeProgramName(t *testing.T) {
	c := &Codec{ProgramName: "TestLogger"}
	out := c.Encode(nil, "")

	if out != "Generated by TestLogger\n<EOH>\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestCodec_EncodeHeader(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "header with marker",
			header: "My log\n<EOH>",
			want:   "My log\n<EOH><CALL:4>W1AW<EOR>\n",
		},
		{
			name:   "header without marker",
			header: "My log\n",
			want:   "My log\n<EOH>\n<CALL:4>W1AW<EOR>\n",
		},
		{
			name:   "lower case marker",
			header: "My log <eoh>",
			want:   "My log <eoh><CALL:4>W1AW<EOR>\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Generate([]Record{NewRecord("CALL", "W1AW")}, tc.header)
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCodec_EncodeTrimsAndSkipsEmpty(t *testing.T) {
	rec := NewRecord("call", "  W1AW ", "NAME", "   ", "COMMENT", "", "BAND", "20m")
	out := Generate([]Record{rec}, "h<EOH>")

	if out != "h<EOH><CALL:4>W1AW<BAND:3>20m<EOR>\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestCodec_EncodeEmptyRecord(t *testing.T) {
	out := Generate([]Record{{}}, "h<EOH>")

	if out != "h<EOH><EOR>\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestCodec_EncodeRuneLength(t *testing.T) {
	out := Generate([]Record{NewRecord("NAME", "Zoë")}, "h<EOH>")

	if !strings.Contains(out, "<NAME:3>Zoë") {
		t.Errorf("length should count characters: %q", out)
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	testCases := []struct {
		name    string
		records []Record
	}{
		{
			name: "single record",
			records: []Record{
				NewRecord("CALL", "W1AW", "QSO_DATE", "20240115", "TIME_ON", "143000", "BAND", "20m"),
			},
		},
		{
			name: "values with markup",
			records: []Record{
				NewRecord("CALL", "K1AB", "COMMENT", "Hello>World <EOR> inside"),
				NewRecord("CALL", "N0CALL", "NOTES", "line one\nline two"),
			},
		},
		{
			name: "unicode",
			records: []Record{
				NewRecord("CALL", "DL1ABC", "NAME", "Jürgen", "QTH", "München"),
			},
		},
		{
			name: "unknown fields",
			records: []Record{
				NewRecord("CALL", "VE3XYZ", "APP_LOGGER_CUSTOM", "xyz"),
			},
		},
	}

	codec := NewCodec()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			text := codec.Encode(tc.records, "")
			doc := codec.Decode(text)

			if len(doc.Records) != len(tc.records) {
				t.Fatalf("expected %d records, got %d", len(tc.records), len(doc.Records))
			}
			for i := range tc.records {
				if !doc.Records[i].Equal(tc.records[i]) {
					t.Errorf("record %d: got %v, want %v", i, doc.Records[i].Map(), tc.records[i].Map())
				}
			}
		})
	}
}

func TestCodec_RoundTripHeader(t *testing.T) {
	header := "Exported by test\n<ADIF_VER:5>3.1.4\n<EOH>"
	recs := []Record{NewRecord("CALL", "W1AW")}

	doc := Parse(Generate(recs, header))
	if doc.Header != header {
		t.Errorf("header = %q, want %q", doc.Header, header)
	}
}

func TestCodec_DecodeBytes(t *testing.T) {
	doc := NewCodec().DecodeBytes([]byte("<CALL:4>W1AW<EOR>"))

	if len(doc.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(doc.Records))
	}
}

func TestDocument_ADIF(t *testing.T) {
	doc := &Document{
		Header:  "h<EOH>",
		Records: []Record{NewRecord("CALL", "W1AW")},
	}

	if got := doc.ADIF(); got != "h<EOH><CALL:4>W1AW<EOR>\n" {
		t.Errorf("unexpected output %q", got)
	}
}
