package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sells-group/playlist-chat/internal/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat <playlist-url>",
	Short: "Load a playlist and chat about it interactively",
	Args:  cobra.ExactArgs(1),
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

		greeting := session.Transcript()[0]
		fmt.Printf("assistant: %s\n", greeting.Content)
		fmt.Println(`Type a question, or "exit" to quit.`)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "exit" || line == "quit" {
				break
			}

			// Empty input is a no-op; the session enforces that too.
			reply := session.Submit(ctx, line)
			if reply == nil {
				continue
			}
			fmt.Printf("assistant: %s\n", reply.Content)
		}

		return scanner.Err()
	},
}

func init() {
	chatCmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the playlist cache")
	rootCmd.AddCommand(chatCmd)
}
