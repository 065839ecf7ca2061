/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ssargent/logmacster/pkg/adif"
	"github.com/ssargent/logmacster/pkg/grid"
)

var errInvalidLog = errors.New("log contains invalid values")

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check every field of every QSO",
	Long: `Check every value in an ADIF log against the field types LogMacster
knows: dates, times, numbers and grid squares. Exits non-zero when any value
is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.Context(), cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(ctx context.Context, w io.Writer, path string) error {
	ctrl, err := openLog(ctx, path)
	if err != nil {
		return err
	}

	problems, bad := 0, 0
	for i, row := range ctrl.Store().Rows() {
		rowBad := false
		for _, f := range row.Record.Fields {
			res := adif.Validate(f.Name, f.Value)
			if res.Valid {
				continue
			}
			fmt.Fprintf(w, "QSO %d (%s): %s %q: %s\n",
				i+1, row.Record.Value("CALL"), grid.HeaderName(f.Name), f.Value, res.Message)
			problems++
			rowBad = true
		}
		if rowBad {
			bad++
		}
	}

	if problems > 0 {
		fmt.Fprintf(w, "%d invalid value(s) in %d of %d QSO(s)\n", problems, bad, ctrl.Store().Len())
		return errInvalidLog
	}
	fmt.Fprintf(w, "All %d QSO(s) valid\n", ctrl.Store().Len())
	return nil
}
