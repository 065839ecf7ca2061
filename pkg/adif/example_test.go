package adif_test

import (
	"fmt"

	"github.com/ssargent/logmacster/pkg/adif"
)

// ExampleParse demonstrates reading records from ADIF text
func ExampleParse() {
	doc := adif.Parse("Exported log\n<EOH>\n<call:4>W1AW<BAND:3>20m<COMMENT:11>Hello>World<EOR>\n")

	fmt.Printf("Header: %q\n", doc.Header)
	for _, rec := range doc.Records {
		for _, f := range rec.Fields {
			fmt.Printf("%s=%s\n", f.Name, f.Value)
		}
	}

	// Output:
	// Header: "Exported log\n<EOH>"
	// CALL=W1AW
	// BAND=20m
	// COMMENT=Hello>World
}

// ExampleGenerate demonstrates writing records without a header
func ExampleGenerate() {
	rec := adif.NewRecord("CALL", "K1AB", "FREQ", " 14.250 ", "NAME", "")

	fmt.Print(adif.Generate([]adif.Record{rec}, ""))

	// Output:
	// Generated by LogMacster
	// <EOH>
	// <CALL:4>K1AB<FREQ:6>14.250<EOR>
}

// ExampleValidate shows the messages reported for malformed values
func ExampleValidate() {
	for _, check := range [][2]string{
		{"QSO_DATE", "2024-01-15"},
		{"GRIDSQUARE", "FN20"},
		{"FREQ", "abc"},
	} {
		res := adif.Validate(check[0], check[1])
		fmt.Printf("%s %q valid=%v", check[0], check[1], res.Valid)
		if !res.Valid {
			fmt.Printf(" (%s)", res.Message)
		}
		fmt.Println()
	}

	// Output:
	// QSO_DATE "2024-01-15" valid=false (Date must be in YYYYMMDD format)
	// GRIDSQUARE "FN20" valid=true
	// FREQ "abc" valid=false (Must be a valid number)
}
