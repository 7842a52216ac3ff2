package playlist

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/playlist-chat/internal/model"
	"github.com/sells-group/playlist-chat/pkg/youtube"
)

// Enrich joins per-video statistics onto the aggregated entries, batching the
// lookup in chunks of at most youtube.MaxBatchSize ids. A failed batch never
// aborts the operation: every video in that chunk keeps its primary
// attributes and gets the Unavailable sentinel for the secondary fields, and
// processing continues with the next chunk. The result has the same length
// and order as the input, with a dense 1-based position.
func Enrich(ctx context.Context, client youtube.Client, entries []model.PlaylistEntry) []model.Video {
	videos := make([]model.Video, 0, len(entries))

	for start := 0; start < len(entries); start += youtube.MaxBatchSize {
		end := min(start+youtube.MaxBatchSize, len(entries))
		chunk := entries[start:end]

		ids := make([]string, len(chunk))
		for i, e := range chunk {
			ids[i] = e.VideoID
		}

		details := make(map[string]youtube.VideoItem)
		resp, err := client.Videos(ctx, ids)
		if err != nil {
			zap.L().Warn("video batch lookup failed, degrading chunk",
				zap.Int("chunk_start", start),
				zap.Int("chunk_size", len(chunk)),
				zap.Error(err),
			)
		} else {
			for _, item := range resp.Items {
				details[item.ID] = item
			}
		}

		for i, e := range chunk {
			v := model.Video{
				Position:     start + i + 1,
				VideoID:      e.VideoID,
				Title:        e.Title,
				Description:  e.Description,
				ChannelTitle: e.ChannelTitle,
				PublishedAt:  e.PublishedAt,
				Thumbnail:    e.Thumbnail,
				Duration:     model.Unavailable,
				ViewCount:    model.Unavailable,
				LikeCount:    model.Unavailable,
				CommentCount: model.Unavailable,
			}
			// An id absent from a successful response is a valid outcome
			// (removed or sparse video), not an error.
			if d, ok := details[e.VideoID]; ok {
				if d.ContentDetails.Duration != "" {
					v.Duration = d.ContentDetails.Duration
				}
				if d.Statistics.ViewCount != "" {
					v.ViewCount = d.Statistics.ViewCount
				}
				if d.Statistics.LikeCount != "" {
					v.LikeCount = d.Statistics.LikeCount
				}
				if d.Statistics.CommentCount != "" {
					v.CommentCount = d.Statistics.CommentCount
				}
			}
			videos = append(videos, v)
		}
	}

	return videos
}
