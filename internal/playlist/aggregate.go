package playlist

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/playlist-chat/internal/model"
	"github.com/sells-group/playlist-chat/pkg/youtube"
)

// Aggregate walks the cursor-paginated playlistItems listing until exhausted
// and returns every entry in delivery order. Pages are fetched strictly
// sequentially (each cursor comes from the previous page) and are never
// retried: any page failure abandons the whole aggregation. A playlist that
// paginates to zero entries yields ErrEmptyPlaylist.
func Aggregate(ctx context.Context, client youtube.Client, playlistID string) ([]model.PlaylistEntry, error) {
	var entries []model.PlaylistEntry
	pageToken := ""
	pages := 0

	for {
		resp, err := client.PlaylistItems(ctx, playlistID, pageToken)
		if err != nil {
			return nil, eris.Wrapf(err, "playlist: fetch page %d of %s", pages+1, playlistID)
		}
		pages++

		for _, item := range resp.Items {
			entries = append(entries, model.PlaylistEntry{
				VideoID:      item.Snippet.ResourceID.VideoID,
				Title:        item.Snippet.Title,
				Description:  item.Snippet.Description,
				ChannelTitle: item.Snippet.ChannelTitle,
				PublishedAt:  item.Snippet.PublishedAt,
				Thumbnail:    item.Snippet.Thumbnails.URL(),
			})
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	if len(entries) == 0 {
		return nil, ErrEmptyPlaylist
	}

	zap.L().Info("playlist aggregated",
		zap.String("playlist_id", playlistID),
		zap.Int("pages", pages),
		zap.Int("videos", len(entries)),
	)

	return entries, nil
}
