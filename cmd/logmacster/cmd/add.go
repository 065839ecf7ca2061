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

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <file> [FIELD=value...]",
	Short: "Append a new QSO to a log",
	Long: `Append a blank QSO stamped with the current UTC date and time, then
fill in any FIELD=value pairs given. Every value is validated; nothing is
written when one is rejected.

Examples:
  logmacster add contest.adi CALL=W1AW BAND=20m MODE=SSB FREQ=14.250
  logmacster add contest.adi CALL=K1AB QSO_DATE=2024-01-15 TIME_ON=14:30:00`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd.Context(), cmd.OutOrStdout(), args[0], args[1:])
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(ctx context.Context, w io.Writer, path string, assignments []string) error {
	ctrl, err := openLog(ctx, path)
	if err != nil {
		return err
	}
	store := ctrl.Store()

	row := store.Add()
	for _, a := range assignments {
		field, value, ok := strings.Cut(a, "=")
		if !ok || strings.TrimSpace(field) == "" {
			return fmt.Errorf("expected FIELD=value, got %q", a)
		}
		if _, err := grid.Commit(store, row.ID, strings.TrimSpace(field), value); err != nil {
			return err
		}
	}

	if err := ctrl.Save(ctx); err != nil {
		return err
	}
	fmt.Fprintf(w, "Added QSO %d to %s\n", store.Len(), store.Path())
	return nil
}
