/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ssargent/logmacster/pkg/config"
	"github.com/ssargent/logmacster/pkg/log"
	"github.com/ssargent/logmacster/pkg/shell"
	"github.com/ssargent/logmacster/pkg/tui"
)

// menuBuffer is how many File menu notifications may wait for the editor
const menuBuffer = 8

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Edit a log in the terminal grid",
	Long: `Open the terminal grid editor, optionally loading a log first.

Keys:
  arrows/hjkl  move          Enter  edit cell      Space  select row
  n            new QSO       d      delete         /      filter
  s            sort          ^S     save           ^O     open
  q            quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return runEdit(cmd.Context(), cmd.OutOrStdout(), path)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(ctx context.Context, w io.Writer, path string) error {
	c, err := requireContainer()
	if err != nil {
		return err
	}
	cfg := configFrom(ctx)
	logger := log.FromContext(ctx)

	ctrl, err := newController(cfg, c.GetDialogs(), logger)
	if err != nil {
		return err
	}
	if path != "" {
		if _, err := ctrl.Open(path); err != nil {
			return err
		}
	}

	menu := shell.NewMenu(ctrl.Shell(), menuBuffer)
	app := tui.New(ctrl, menu, logger)

	runErr := c.GetEditorRunner()(ctx, app)
	menu.Close()

	if err := rememberRecent(ctx, cfg, ctrl.Shell().Recent()); err != nil {
		logger.Warn("failed to save recent files", "error", err)
	}
	if runErr != nil {
		return runErr
	}
	if ctrl.Store().Modified() {
		fmt.Fprintln(w, "Unsaved changes were discarded")
	}
	return nil
}

// rememberRecent stores the recent file list in an existing config file
func rememberRecent(ctx context.Context, cfg *config.Config, recent *shell.Recent) error {
	configPath := configPathFrom(ctx)
	if recent == nil || !config.ConfigExists(configPath) {
		return nil
	}
	cfg.Files.Recent = recent.Paths()
	return config.SaveConfig(cfg, configPath)
}
