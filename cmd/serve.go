package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smartcalc/calcd/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the calculator HTTP API",
	Long: `Serves the JSON evaluation API until interrupted.
Example) calcd serve --addr :9090`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := server.LoadConfig(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := server.New(cfg, logger)
		if err := srv.Run(ctx); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
		logger.Info("server stopped")
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides the config file)")
}
