package playlist

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/playlist-chat/internal/model"
	"github.com/sells-group/playlist-chat/pkg/youtube"
)

func makeEntries(n int) []model.PlaylistEntry {
	entries := make([]model.PlaylistEntry, n)
	for i := range entries {
		entries[i] = model.PlaylistEntry{
			VideoID: vid(i + 1),
			Title:   title(i + 1),
		}
	}
	return entries
}

func detailsFor(ids []string) *youtube.VideoListResponse {
	resp := &youtube.VideoListResponse{}
	for _, id := range ids {
		resp.Items = append(resp.Items, youtube.VideoItem{
			ID:             id,
			ContentDetails: youtube.ContentDetails{Duration: "PT4M20S"},
			Statistics: youtube.Statistics{
				ViewCount:    "1000",
				LikeCount:    "10",
				CommentCount: "2",
			},
		})
	}
	return resp
}

func TestEnrich_MiddleBatchFails(t *testing.T) {
	var batchSizes []int
	call := 0
	client := &fakeYouTube{
		videosFn: func(_ context.Context, ids []string) (*youtube.VideoListResponse, error) {
			call++
			batchSizes = append(batchSizes, len(ids))
			if call == 2 {
				return nil, eris.New("batch exploded")
			}
			return detailsFor(ids), nil
		},
	}

	videos := Enrich(context.Background(), client, makeEntries(120))

	// 120 items ⇒ exactly three batches of 50, 50, 20.
	assert.Equal(t, []int{50, 50, 20}, batchSizes)
	require.Len(t, videos, 120)

	for i, v := range videos {
		// Density holds across batch boundaries regardless of failure.
		assert.Equal(t, i+1, v.Position, "position at index %d", i)
		// Primary attributes survive a failed batch.
		assert.Equal(t, title(i+1), v.Title)

		if i >= 50 && i < 100 {
			assert.Equal(t, model.Unavailable, v.Duration, "video %d", i+1)
			assert.Equal(t, model.Unavailable, v.ViewCount, "video %d", i+1)
			assert.Equal(t, model.Unavailable, v.LikeCount, "video %d", i+1)
			assert.Equal(t, model.Unavailable, v.CommentCount, "video %d", i+1)
		} else {
			assert.Equal(t, "PT4M20S", v.Duration, "video %d", i+1)
			assert.Equal(t, "1000", v.ViewCount, "video %d", i+1)
		}
	}
}

func TestEnrich_UnmatchedKeyGetsSentinel(t *testing.T) {
	client := &fakeYouTube{
		videosFn: func(_ context.Context, ids []string) (*youtube.VideoListResponse, error) {
			// Respond for every id except video-2.
			var kept []string
			for _, id := range ids {
				if id != "video-2" {
					kept = append(kept, id)
				}
			}
			return detailsFor(kept), nil
		},
	}

	videos := Enrich(context.Background(), client, makeEntries(3))
	require.Len(t, videos, 3)

	assert.Equal(t, "PT4M20S", videos[0].Duration)
	assert.Equal(t, model.Unavailable, videos[1].Duration)
	assert.Equal(t, model.Unavailable, videos[1].ViewCount)
	assert.Equal(t, "PT4M20S", videos[2].Duration)
	// Order and positions are unchanged by the sparse join.
	for i, v := range videos {
		assert.Equal(t, i+1, v.Position)
	}
}

func TestEnrich_EmptyStatisticsFieldsGetSentinel(t *testing.T) {
	client := &fakeYouTube{
		videosFn: func(_ context.Context, ids []string) (*youtube.VideoListResponse, error) {
			return &youtube.VideoListResponse{
				Items: []youtube.VideoItem{{
					ID:             ids[0],
					ContentDetails: youtube.ContentDetails{Duration: "PT1M"},
					// Likes hidden, comments disabled.
					Statistics: youtube.Statistics{ViewCount: "7"},
				}},
			}, nil
		},
	}

	videos := Enrich(context.Background(), client, makeEntries(1))
	require.Len(t, videos, 1)
	assert.Equal(t, "PT1M", videos[0].Duration)
	assert.Equal(t, "7", videos[0].ViewCount)
	assert.Equal(t, model.Unavailable, videos[0].LikeCount)
	assert.Equal(t, model.Unavailable, videos[0].CommentCount)
}

func TestEnrich_SingleBatchUnder50(t *testing.T) {
	calls := 0
	client := &fakeYouTube{
		videosFn: func(_ context.Context, ids []string) (*youtube.VideoListResponse, error) {
			calls++
			assert.Len(t, ids, 7)
			return detailsFor(ids), nil
		},
	}

	videos := Enrich(context.Background(), client, makeEntries(7))
	assert.Equal(t, 1, calls)
	require.Len(t, videos, 7)
	assert.Equal(t, 7, videos[6].Position)
}

func TestEnrich_Empty(t *testing.T) {
	client := &fakeYouTube{
		videosFn: func(_ context.Context, _ []string) (*youtube.VideoListResponse, error) {
			t.Fatal("no batch call expected for empty input")
			return nil, nil
		},
	}

	videos := Enrich(context.Background(), client, nil)
	assert.Empty(t, videos)
}
