package chat

import (
	"fmt"
	"strings"

	"github.com/sells-group/playlist-chat/internal/model"
)

// BuildContext renders the enriched playlist into the system instruction for
// the conversational backend. It is a pure function: identical input always
// produces identical output. When maxItems > 0 and the playlist is larger,
// only the first maxItems videos are listed and the preamble says so, keeping
// the prompt bounded for very large playlists.
func BuildContext(title string, videos []model.Video, maxItems int) string {
	listed := videos
	truncated := false
	if maxItems > 0 && len(videos) > maxItems {
		listed = videos[:maxItems]
		truncated = true
	}

	lines := make([]string, len(listed))
	for i, v := range listed {
		lines[i] = fmt.Sprintf("Position %d: %q by %s (Duration: %s, Views: %s, Published: %s)",
			v.Position,
			v.Title,
			v.ChannelTitle,
			FormatDuration(v.Duration),
			FormatViewCount(v.ViewCount),
			FormatPublishDate(v.PublishedAt),
		)
	}

	var sb strings.Builder
	sb.WriteString("You are an AI assistant analyzing a YouTube playlist")
	if title != "" {
		fmt.Fprintf(&sb, " titled %q", title)
	}
	if truncated {
		fmt.Fprintf(&sb, ". Here are the first %d of the %d videos in the playlist:\n\n", len(listed), len(videos))
	} else {
		fmt.Fprintf(&sb, ". Here are all %d videos in the playlist:\n\n", len(videos))
	}
	sb.WriteString(strings.Join(lines, "\n"))
	if truncated {
		fmt.Fprintf(&sb, "\n(%d more videos omitted from this list)", len(videos)-len(listed))
	}
	sb.WriteString("\n\nPlease answer the user's questions about this playlist. " +
		"You can analyze patterns, find specific content, calculate statistics, " +
		"and provide insights about the video collection.")

	return sb.String()
}
