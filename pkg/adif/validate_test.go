package adif

import "testing"

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		field   string
		value   string
		valid   bool
		message string
	}{
		{name: "date ok", field: "QSO_DATE", value: "20240115", valid: true},
		{name: "date shape only", field: "QSO_DATE", value: "20240230", valid: true},
		{name: "date dashes", field: "QSO_DATE", value: "2024-02-30", message: "Date must be in YYYYMMDD format"},
		{name: "date short", field: "QSO_DATE", value: "2024011", message: "Date must be in YYYYMMDD format"},
		{name: "time ok", field: "TIME_ON", value: "143000", valid: true},
		{name: "time colons", field: "TIME_OFF", value: "14:30:00", message: "Time must be in HHMMSS format"},
		{name: "time four digits", field: "TIME_ON", value: "1430", message: "Time must be in HHMMSS format"},
		{name: "number decimal", field: "FREQ", value: "14.250", valid: true},
		{name: "number integer", field: "DXCC", value: "291", valid: true},
		{name: "number exponent", field: "POWER", value: "1e2", valid: true},
		{name: "number letters", field: "FREQ", value: "abc", message: "Must be a valid number"},
		{name: "number two points", field: "FREQ", value: "14.2.5", message: "Must be a valid number"},
		{name: "grid four", field: "GRIDSQUARE", value: "FN20", valid: true},
		{name: "grid six", field: "GRIDSQUARE", value: "FN20xa", valid: true},
		{name: "grid lower case", field: "MY_GRIDSQUARE", value: "fn20XA", valid: true},
		{name: "grid three", field: "GRIDSQUARE", value: "FN2", message: "Invalid grid square format"},
		{name: "grid out of range", field: "GRIDSQUARE", value: "ZZ20", message: "Invalid grid square format"},
		{name: "grid five", field: "GRIDSQUARE", value: "FN20x", message: "Invalid grid square format"},
		{name: "empty value", field: "QSO_DATE", value: "", valid: true},
		{name: "unknown field", field: "MY_CUSTOM", value: "anything", valid: true},
		{name: "string field", field: "CALL", value: "!!!", valid: true},
		{name: "enum field", field: "BAND", value: "not-a-band", valid: true},
		{name: "lower case name", field: "qso_date", value: "bad", message: "Date must be in YYYYMMDD format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Validate(tc.field, tc.value)
			if tc.message != "" && res.Valid {
				t.Fatalf("expected %s=%q to be invalid", tc.field, tc.value)
			}
			if tc.valid != res.Valid && tc.message == "" {
				t.Fatalf("Valid = %v, want %v", res.Valid, tc.valid)
			}
			if res.Message != tc.message {
				t.Errorf("Message = %q, want %q", res.Message, tc.message)
			}
		})
	}
}

func TestIsNumber(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"0", true},
		{"  7  ", true},
		{"", true},
		{"-3.5", true},
		{"+3.5", true},
		{".5", true},
		{"5.", true},
		{"1E-3", true},
		{"Infinity", true},
		{"-Infinity", true},
		{"0x1F", true},
		{"0b101", true},
		{"0o17", true},
		{"1e999", true},
		{"--1", false},
		{"0x", false},
		{"0b2", false},
		{"-0x1F", false},
		{"1,000", false},
		{"NaN", false},
		{"inf", false},
		{"14.250 MHz", false},
		{"e5", false},
	}

	for _, tc := range testCases {
		if got := IsNumber(tc.input); got != tc.want {
			t.Errorf("IsNumber(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestLookup(t *testing.T) {
	spec, ok := Lookup("gridsquare")
	if !ok {
		t.Fatal("GRIDSQUARE should be known")
	}
	if spec.Name != "GRIDSQUARE" || spec.Type != TypeGridSquare {
		t.Errorf("unexpected spec %+v", spec)
	}

	if _, ok := Lookup("NOT_A_FIELD"); ok {
		t.Error("unknown field reported as known")
	}
}

func TestFields_Sorted(t *testing.T) {
	specs := Fields()
	if len(specs) != 41 {
		t.Fatalf("expected 41 fields, got %d", len(specs))
	}
	for i := 1; i < len(specs); i++ {
		if specs[i-1].Name >= specs[i].Name {
			t.Errorf("fields out of order at %d: %s >= %s", i, specs[i-1].Name, specs[i].Name)
		}
	}
	for _, s := range specs {
		if s.Description == "" {
			t.Errorf("%s has no description", s.Name)
		}
	}
}
