/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/logmacster/pkg/grid"
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <file> <qso> <FIELD> <value>",
	Short: "Change one field of a QSO",
	Long: `Change one field of the QSO at the given position (as printed by
show). The value is validated first; an invalid value leaves the file
untouched. An empty value removes the field when the log is written.

Examples:
  logmacster set contest.adi 3 GRIDSQUARE fn31pr
  logmacster set contest.adi 3 COMMENT ""`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSet(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], args[2], args[3])
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(ctx context.Context, w io.Writer, path, position, field, raw string) error {
	ctrl, err := openLog(ctx, path)
	if err != nil {
		return err
	}
	store := ctrl.Store()

	ids, err := rowIDs(store, []string{position})
	if err != nil {
		return err
	}

	field = strings.ToUpper(field)
	value, err := grid.Commit(store, ids[0], field, raw)
	if err != nil {
		return err
	}

	if err := ctrl.Save(ctx); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s set to %q in QSO %s\n", grid.HeaderName(field), value, position)
	return nil
}
