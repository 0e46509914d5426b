package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/diogo/gemichat/internal/gateway"
	"github.com/diogo/gemichat/internal/logger"
	"github.com/diogo/gemichat/internal/models"
	"github.com/diogo/gemichat/internal/session"
	"github.com/diogo/gemichat/internal/web"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chatbot web UI",
	Long: `Start the web UI. Each browser session gets its own transcript and
settings; nothing is persisted across restarts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addrFlag != "" {
			cfg.Addr = addrFlag
		}

		defaults := models.DefaultSessionConfig(cfg.APIKey, cfg.DefaultModel, cfg.DefaultTemperature)
		store := session.NewStore(defaults, cfg.SessionTTL)
		store.StartSweeper()
		defer store.Stop()

		client := gateway.NewClient(gateway.WithTimeout(cfg.RequestTimeout))
		srv := web.NewServer(store, client, cfg)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.Info("starting gemichat", "version", Version, "model", cfg.DefaultModel)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&addrFlag, "addr", "a", "", "Listen address (overrides GEMICHAT_ADDR)")
}
