package playlist

import (
	"context"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/sells-group/playlist-chat/pkg/youtube"
)

// fakeYouTube implements youtube.Client with per-method hooks.
type fakeYouTube struct {
	pingFn          func(ctx context.Context) error
	playlistInfoFn  func(ctx context.Context, id string) (*youtube.PlaylistListResponse, error)
	playlistItemsFn func(ctx context.Context, id, pageToken string) (*youtube.PlaylistItemsResponse, error)
	videosFn        func(ctx context.Context, ids []string) (*youtube.VideoListResponse, error)
}

func (f *fakeYouTube) Ping(ctx context.Context) error {
	if f.pingFn == nil {
		return nil
	}
	return f.pingFn(ctx)
}

func (f *fakeYouTube) PlaylistInfo(ctx context.Context, id string) (*youtube.PlaylistListResponse, error) {
	if f.playlistInfoFn == nil {
		return nil, eris.New("playlistInfo not stubbed")
	}
	return f.playlistInfoFn(ctx, id)
}

func (f *fakeYouTube) PlaylistItems(ctx context.Context, id, pageToken string) (*youtube.PlaylistItemsResponse, error) {
	if f.playlistItemsFn == nil {
		return nil, eris.New("playlistItems not stubbed")
	}
	return f.playlistItemsFn(ctx, id, pageToken)
}

func (f *fakeYouTube) Videos(ctx context.Context, ids []string) (*youtube.VideoListResponse, error) {
	if f.videosFn == nil {
		return nil, eris.New("videos not stubbed")
	}
	return f.videosFn(ctx, ids)
}

// makeItems builds n playlist items with sequential video ids starting at
// first.
func makeItems(first, n int) []youtube.PlaylistItem {
	items := make([]youtube.PlaylistItem, n)
	for i := range items {
		items[i] = youtube.PlaylistItem{
			Snippet: youtube.PlaylistItemSnippet{
				Title:        title(first + i),
				ChannelTitle: "Test Channel",
				PublishedAt:  "2024-03-01T12:00:00Z",
				ResourceID:   youtube.ResourceID{VideoID: vid(first + i)},
			},
		}
	}
	return items
}

func vid(i int) string {
	return "video-" + strconv.Itoa(i)
}

func title(i int) string {
	return "Video " + strconv.Itoa(i)
}
