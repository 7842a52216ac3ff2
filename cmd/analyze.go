package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/playlist-chat/internal/chat"
	"github.com/sells-group/playlist-chat/internal/model"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <playlist-url>",
	Short: "Load a playlist and print its videos",
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

		printPlaylist(os.Stdout, pl)
		return nil
	},
}

func printPlaylist(out io.Writer, pl *model.Playlist) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(out, "%s — %d videos\n\n", pl.Title, len(pl.Videos))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTITLE\tCHANNEL\tDURATION\tVIEWS\tPUBLISHED")
	for _, v := range pl.Videos {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			v.Position,
			truncate(v.Title, 60),
			truncate(v.ChannelTitle, 30),
			chat.FormatDuration(v.Duration),
			chat.FormatViewCount(v.ViewCount),
			chat.FormatPublishDate(v.PublishedAt),
		)
	}
	w.Flush() //nolint:errcheck

	if total, ok := totalViews(pl.Videos); ok {
		p.Fprintf(out, "\nTotal views across playlist: %d\n", total)
	}
}

// totalViews sums the numeric view counts, skipping sentinel values. The
// second return value is false when no video had a usable count.
func totalViews(videos []model.Video) (int64, bool) {
	var total int64
	counted := false
	for _, v := range videos {
		n, err := strconv.ParseInt(v.ViewCount, 10, 64)
		if err != nil {
			continue
		}
		total += n
		counted = true
	}
	return total, counted
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func init() {
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the playlist cache")
	rootCmd.AddCommand(analyzeCmd)
}
