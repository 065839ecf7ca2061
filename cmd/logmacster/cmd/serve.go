/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ssargent/logmacster/pkg/api"
	"github.com/ssargent/logmacster/pkg/config"
	"github.com/ssargent/logmacster/pkg/log"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP grid API",
	Long: `Start the LogMacster REST API. Requests to /api/v1 need the
X-API-Key header. When no key is configured one is generated and printed.

Examples:
  logmacster serve --file contest.adi
  logmacster serve --port 9000 --bind 0.0.0.0 --api-key mysecretkey`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *configFrom(cmd.Context())
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("bind") {
			cfg.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("api-key") {
			cfg.Security.APIKey, _ = cmd.Flags().GetString("api-key")
		}
		file, _ := cmd.Flags().GetString("file")
		return runServe(cmd.Context(), cmd.OutOrStdout(), &cfg, file)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to listen on")
	serveCmd.Flags().String("api-key", "", "API key for authentication")
	serveCmd.Flags().String("file", "", "Log to open on start")
}

func runServe(ctx context.Context, w io.Writer, cfg *config.Config, file string) error {
	c, err := requireContainer()
	if err != nil {
		return err
	}
	logger := log.FromContext(ctx)

	apiKey := cfg.Security.APIKey
	if apiKey == "" || apiKey == "auto" {
		apiKey, err = config.GenerateSecureKey(16)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Generated API key: %s\n", apiKey)
	}

	ctrl, err := newController(cfg, nil, logger)
	if err != nil {
		return err
	}
	if file != "" {
		n, err := ctrl.Open(file)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Loaded %d QSO(s) from %s\n", n, ctrl.Store().Path())
	}

	serverConfig := api.ServerConfig{
		Port:   cfg.Port,
		Bind:   cfg.Bind,
		APIKey: apiKey,
	}
	starter := c.GetServerFactory().CreateServerStarter()

	fmt.Fprintf(w, "Serving LogMacster REST API on %s:%d\n", cfg.Bind, cfg.Port)
	fmt.Fprintf(w, "Metrics available at: http://%s:%d/metrics\n", cfg.Bind, cfg.Port)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return starter.StartServer(gctx, ctrl, serverConfig, logger)
	})

	g.Go(func() error {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(signals)

		select {
		case sig := <-signals:
			logger.Info("received signal, shutting down", "signal", sig.String())
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	if ctrl.Store().Modified() {
		fmt.Fprintln(w, "Unsaved changes were discarded")
	}
	return nil
}
