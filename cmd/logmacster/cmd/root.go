/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/logmacster/pkg/config"
	"github.com/ssargent/logmacster/pkg/di"
	"github.com/ssargent/logmacster/pkg/log"
)

type contextKey string

const (
	configKey     contextKey = "config"
	configPathKey contextKey = "config-path"
)

var container *di.Container

// SetContainer injects the dependency container used by the commands
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "logmacster",
	Short: "LogMacster - ADIF Log Editor",
	Long: `LogMacster reads, edits and writes amateur radio contact logs in the
ADIF text format. Logs can be inspected and changed from the command line,
edited in a terminal grid, or served over an HTTP API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		cfg := config.DefaultConfig()
		if config.ConfigExists(configPath) {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}

		logger := log.New(log.Options{
			Level:      cfg.Logging.Level,
			Dir:        cfg.Logging.Dir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
		})
		logger.Debug("command started", "command", cmd.CommandPath(), "config", configPath)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = context.WithValue(ctx, configKey, cfg)
		ctx = context.WithValue(ctx, configPathKey, configPath)
		cmd.SetContext(log.NewContext(ctx, logger))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.FromContext(cmd.Context()).Close()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/logmacster/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
}

func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

func configPathFrom(ctx context.Context) string {
	if path, ok := ctx.Value(configPathKey).(string); ok {
		return path
	}
	return config.GetDefaultConfigPath()
}

func requireContainer() (*di.Container, error) {
	if container == nil {
		return nil, fmt.Errorf("dependency container not initialized")
	}
	return container, nil
}
