package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-composer/internal/server"
	"github.com/rezonia/invoice-composer/pkg/config"
	"github.com/rezonia/invoice-composer/pkg/logger"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for rendering invoices.

The API provides endpoints for:
  - POST /api/v1/invoices/pdf  - Render an invoice to PDF (JSON or multipart with logo)
  - GET  /api/v1/currencies    - List supported currencies
  - GET  /health               - Health check

Configuration is read from COMPOSER_* environment variables and an
optional composer.yaml; flags override both.

Examples:
  # Start server on default port
  invoice-composer serve

  # Start on a custom address in debug mode
  invoice-composer serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", "", "Server listen address (default from config)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 0, "HTTP read timeout (default from config)")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 0, "HTTP write timeout (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: level})

	serverCfg := &server.Config{
		Address:      cfg.HTTP.Addr(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		Debug:        serverDebug,
	}
	if serverAddr != "" {
		serverCfg.Address = serverAddr
	}
	if readTimeout > 0 {
		serverCfg.ReadTimeout = readTimeout
	}
	if writeTimeout > 0 {
		serverCfg.WriteTimeout = writeTimeout
	}

	srv := server.NewServer(serverCfg, log)

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
