package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ssargent/logmacster/pkg/adif"
	"github.com/ssargent/logmacster/pkg/grid"
	"github.com/ssargent/logmacster/pkg/logbook"
)

// tableColumns is how many grid columns show prints
const tableColumns = 10

// listedRow is a row together with its 1-based position in the file
type listedRow struct {
	Index  int         `json:"index"`
	ID     string      `json:"id"`
	Record adif.Record `json:"record"`
}

// outputRows displays rows in the requested format
func outputRows(w io.Writer, format string, rows []listedRow) error {
	switch format {
	case "json":
		return outputRowsJSON(w, rows)
	case "table", "":
		return outputRowsTable(w, rows)
	default:
		return fmt.Errorf("unknown output format %q (use table or json)", format)
	}
}

// outputRowsTable displays rows using the first grid columns
func outputRowsTable(w io.Writer, rows []listedRow) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No QSOs found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	columns := grid.Columns()[:tableColumns]

	fmt.Fprint(tw, "#")
	for _, col := range columns {
		fmt.Fprintf(tw, "\t%s", col.Header)
	}
	fmt.Fprintln(tw)

	for _, row := range rows {
		fmt.Fprintf(tw, "%d", row.Index)
		for _, col := range columns {
			value := grid.Format(col.Field, row.Record.Value(col.Field))
			if r := []rune(value); len(r) > 30 {
				value = string(r[:27]) + "..."
			}
			fmt.Fprintf(tw, "\t%s", value)
		}
		fmt.Fprintln(tw)
	}

	return nil
}

// outputRowsJSON displays rows as JSON with fields in file order
func outputRowsJSON(w io.Writer, rows []listedRow) error {
	if rows == nil {
		rows = []listedRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// outputFields displays the field schema
func outputFields(w io.Writer, fields []adif.FieldSpec) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "FIELD\tTYPE\tDESCRIPTION")
	for _, f := range fields {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Name, f.Type, f.Description)
	}
	return nil
}

// listRows pairs each row with its position in the store
func listRows(store *logbook.Store, rows []logbook.Row) []listedRow {
	positions := make(map[string]int, store.Len())
	for i, row := range store.Rows() {
		positions[row.ID] = i + 1
	}

	listed := make([]listedRow, 0, len(rows))
	for _, row := range rows {
		listed = append(listed, listedRow{
			Index:  positions[row.ID],
			ID:     row.ID,
			Record: row.Record,
		})
	}
	return listed
}
