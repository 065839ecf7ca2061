/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/logmacster/pkg/adif"
)

// fieldsCmd represents the fields command
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the ADIF fields LogMacster knows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return outputFields(cmd.OutOrStdout(), adif.Fields())
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
