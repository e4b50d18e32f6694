package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nfrund/techhub/internal/app"
	"github.com/nfrund/techhub/internal/config"
	"github.com/nfrund/techhub/internal/content"
	"github.com/nfrund/techhub/internal/rendering"
	"github.com/nfrund/techhub/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Serves the landing page at / until interrupted.

Configuration is read from the environment and an optional .env file:
APP_ADDR, APP_BASE_URL, PAGE_TTL, PAGE_SWEEP_INTERVAL, ACTION_RATE_LIMIT,
CONTENT_PATH and STATIC_DIR.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New()

		cat, err := content.Embedded()
		if err != nil {
			return fmt.Errorf("embedded content: %w", err)
		}

		s := server.New(cfg, app.Dependencies{
			Renderer: rendering.NewUniversalRenderer(),
			Content:  content.NewSource(cat),
		})
		s.RegisterRoutes()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return s.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
