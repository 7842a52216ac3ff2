package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sells-group/playlist-chat/internal/chat"
)

var askCmd = &cobra.Command{
	Use:   "ask <playlist-url> <question...>",
	Short: "Load a playlist and ask a single question",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		pl, err := env.loader.Load(ctx, args[0])
		if err != nil {
			return err
		}

		session := chat.NewSession(env.backend, cfg.Chat.MaxContextItems)
		session.Reset(pl.Title, pl.Videos)

		reply := session.Submit(ctx, strings.Join(args[1:], " "))
		if reply == nil {
			return nil
		}
		fmt.Println(reply.Content)
		return nil
	},
}

func init() {
	askCmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the playlist cache")
	rootCmd.AddCommand(askCmd)
}
