/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ssargent/logmacster/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a LogMacster configuration file",
	Long: `Create a configuration file with default settings and a freshly
generated API key for the HTTP server.

Examples:
  logmacster init
  logmacster init --config ./logmacster.yaml --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return runInit(cmd.OutOrStdout(), configPathFrom(cmd.Context()), force)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration")
}

func runInit(w io.Writer, configPath string, force bool) error {
	if config.ConfigExists(configPath) && !force {
		fmt.Fprintf(w, "Configuration already exists at %s. Use --force to overwrite.\n", configPath)
		return nil
	}

	cfg, err := config.BootstrapConfig(configPath, "")
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Configuration written to %s\n", configPath)
	fmt.Fprintf(w, "API key: %s\n", cfg.Security.APIKey)
	fmt.Fprintf(w, "\nStart the HTTP API with:\n  logmacster serve --config %s --file <log.adi>\n", configPath)
	return nil
}
