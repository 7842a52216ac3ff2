package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/playlist-chat/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "playlist-chat",
	Short: "Load a YouTube playlist and chat about it",
	Long:  "Aggregates a YouTube playlist page by page, enriches every video with statistics, and answers questions about the collection through an LLM backend.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
