package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/playlist-chat/internal/model"
	"github.com/sells-group/playlist-chat/internal/probe"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe the proxy and report the connection mode",
	RunE: func(cmd *cobra.Command, _ []string) error {
		p := probe.New(cfg.Proxy.LocalURL, cfg.Proxy.RemoteURL)
		mode := p.Run(cmd.Context())

		fmt.Printf("Connection mode: %s\n", mode)
		switch mode {
		case model.ModeProxyLocal:
			fmt.Printf("Local proxy reachable at %s; upstream keys stay on the server.\n", cfg.Proxy.LocalURL)
		case model.ModeProxyRemote:
			fmt.Printf("Using remote proxy at %s.\n", cfg.Proxy.RemoteURL)
		default:
			fmt.Println("No proxy reachable. Calls go directly upstream and need youtube.key and an AI provider key configured locally.")
			if cfg.YouTube.Key == "" {
				fmt.Println("Warning: youtube.key is not set; playlist loads will fail.")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
