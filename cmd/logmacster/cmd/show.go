/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/ssargent/logmacster/pkg/query"
)

type showOptions struct {
	Format string
	Filter string
	Sort   string
	Desc   bool
}

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "List the QSOs in a log",
	Long: `List the QSOs in an ADIF log. The number in the first column is the
QSO's position in the file, as used by set and delete.

Filters are comma separated conditions using =, !=, >, <, >=, <= or ~
(contains). Numeric fields compare as numbers.

Examples:
  logmacster show contest.adi
  logmacster show contest.adi --filter "BAND=20m,CALL~W1" --sort QSO_DATE --desc
  logmacster show contest.adi --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts showOptions
		opts.Format, _ = cmd.Flags().GetString("format")
		opts.Filter, _ = cmd.Flags().GetString("filter")
		opts.Sort, _ = cmd.Flags().GetString("sort")
		opts.Desc, _ = cmd.Flags().GetBool("desc")
		return runShow(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("format", "f", "table", "Output format: table or json")
	showCmd.Flags().String("filter", "", "Only show QSOs matching these conditions")
	showCmd.Flags().String("sort", "", "Field to sort by")
	showCmd.Flags().Bool("desc", false, "Sort in descending order")
}

func runShow(ctx context.Context, w io.Writer, path string, opts showOptions) error {
	queries, err := query.ParseFieldQueries(opts.Filter)
	if err != nil {
		return err
	}

	ctrl, err := openLog(ctx, path)
	if err != nil {
		return err
	}
	store := ctrl.Store()

	rows := query.Filter(store.Rows(), queries...)
	if opts.Sort != "" {
		query.Sort(rows, opts.Sort, opts.Desc)
	}

	return outputRows(w, opts.Format, listRows(store, rows))
}
