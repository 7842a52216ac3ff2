package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/playlist-chat/internal/model"
)

func sampleVideos() []model.Video {
	return []model.Video{
		{
			Position:     1,
			Title:        "Intro to Go",
			ChannelTitle: "Gopher Academy",
			Duration:     "PT1H2M3S",
			ViewCount:    "1500000",
			PublishedAt:  "2024-03-01T12:00:00Z",
		},
		{
			Position:     2,
			Title:        "Advanced Concurrency",
			ChannelTitle: "Gopher Academy",
			Duration:     "PT5M9S",
			ViewCount:    "2500",
			PublishedAt:  "2024-04-15T09:30:00Z",
		},
	}
}

func TestBuildContext_Deterministic(t *testing.T) {
	videos := sampleVideos()
	first := BuildContext("Go Talks", videos, 0)
	second := BuildContext("Go Talks", videos, 0)
	assert.Equal(t, first, second)
}

func TestBuildContext_Content(t *testing.T) {
	out := BuildContext("Go Talks", sampleVideos(), 0)

	assert.Contains(t, out, `analyzing a YouTube playlist titled "Go Talks"`)
	assert.Contains(t, out, "Here are all 2 videos in the playlist:")
	assert.Contains(t, out, `Position 1: "Intro to Go" by Gopher Academy (Duration: 1:02:03, Views: 1.5M views, Published: 2024-03-01)`)
	assert.Contains(t, out, `Position 2: "Advanced Concurrency" by Gopher Academy (Duration: 5:09, Views: 2.5K views, Published: 2024-04-15)`)
	assert.Contains(t, out, "Please answer the user's questions about this playlist.")

	// Video lines come in position order.
	require.Less(t, strings.Index(out, "Position 1:"), strings.Index(out, "Position 2:"))
}

func TestBuildContext_NoTitle(t *testing.T) {
	out := BuildContext("", sampleVideos(), 0)
	assert.NotContains(t, out, "titled")
	assert.Contains(t, out, "analyzing a YouTube playlist. Here are all 2 videos")
}

func TestBuildContext_SentinelValuesRendered(t *testing.T) {
	videos := []model.Video{{
		Position:     1,
		Title:        "Ghost Video",
		ChannelTitle: "Chan",
		Duration:     model.Unavailable,
		ViewCount:    model.Unavailable,
		PublishedAt:  "",
	}}

	out := BuildContext("T", videos, 0)
	assert.Contains(t, out, `Position 1: "Ghost Video" by Chan (Duration: N/A, Views: N/A, Published: N/A)`)
}

func TestBuildContext_Truncation(t *testing.T) {
	videos := make([]model.Video, 10)
	for i := range videos {
		videos[i] = model.Video{Position: i + 1, Title: "V", ChannelTitle: "C"}
	}

	out := BuildContext("Big", videos, 4)
	assert.Contains(t, out, "Here are the first 4 of the 10 videos in the playlist:")
	assert.Contains(t, out, "(6 more videos omitted from this list)")
	assert.Contains(t, out, "Position 4:")
	assert.NotContains(t, out, "Position 5:")
}
