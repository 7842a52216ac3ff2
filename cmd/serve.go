package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/playlist-chat/internal/proxy"
	"github.com/sells-group/playlist-chat/pkg/ai"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the credential-attaching proxy server",
	Long:  "Serves /api/youtube-proxy and /api/ai, attaching the configured upstream keys so clients never hold secrets.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		backend := serveBackend()
		handler := proxy.NewHandler(cfg.YouTube.Key, cfg.YouTube.BaseURL, backend)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: proxy.NewRouter(handler),
		}

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			zap.L().Info("starting proxy server", zap.Int("port", port))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return eris.Wrap(err, "server listen")
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			zap.L().Info("shutting down proxy server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

// serveBackend builds the server-side AI client, or nil when no key is
// configured so the handler can report the missing provider.
func serveBackend() ai.Client {
	switch cfg.AI.Provider {
	case ai.ProviderGemini:
		if cfg.AI.Gemini.Key == "" {
			return nil
		}
		return ai.NewGemini(cfg.AI.Gemini.Key, cfg.AI.Gemini.Model,
			ai.WithGeminiBaseURL(cfg.AI.Gemini.BaseURL))
	default:
		if cfg.AI.Anthropic.Key == "" {
			return nil
		}
		return ai.NewAnthropic(cfg.AI.Anthropic.Key, cfg.AI.Anthropic.Model,
			cfg.AI.Anthropic.MaxTokens)
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
