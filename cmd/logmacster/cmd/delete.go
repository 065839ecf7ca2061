/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <file> <qso...>",
	Short: "Delete QSOs from a log",
	Long: `Delete the QSOs at the given positions (as printed by show) and
write the log back.

Example:
  logmacster delete contest.adi 2 5 7`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDelete(cmd.Context(), cmd.OutOrStdout(), args[0], args[1:])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(ctx context.Context, w io.Writer, path string, positions []string) error {
	ctrl, err := openLog(ctx, path)
	if err != nil {
		return err
	}
	store := ctrl.Store()

	ids, err := rowIDs(store, positions)
	if err != nil {
		return err
	}

	n := store.Delete(ids...)
	if err := ctrl.Save(ctx); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted %d QSO(s), %d remaining\n", n, store.Len())
	return nil
}
