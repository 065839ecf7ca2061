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

// fmtCmd represents the fmt command
var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Rewrite a log in normalized ADIF",
	Long: `Parse an ADIF log and generate it again: field names upper-cased,
lengths recomputed, empty values dropped and one record per line. The
header is kept as it is.

The result is printed unless -w is given, in which case the file is
rewritten in place.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		write, _ := cmd.Flags().GetBool("write")
		return runFmt(cmd.Context(), cmd.OutOrStdout(), args[0], write)
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolP("write", "w", false, "Write the result back to the file")
}

func runFmt(ctx context.Context, w io.Writer, path string, write bool) error {
	ctrl, err := openLog(ctx, path)
	if err != nil {
		return err
	}

	if !write {
		_, err := io.WriteString(w, ctrl.Store().ADIF())
		return err
	}

	if err := ctrl.SaveAs(ctrl.Store().Path()); err != nil {
		return err
	}
	fmt.Fprintf(w, "Formatted %d QSO(s) in %s\n", ctrl.Store().Len(), ctrl.Store().Path())
	return nil
}
