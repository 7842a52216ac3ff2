package playlist

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/playlist-chat/internal/model"
	"github.com/sells-group/playlist-chat/internal/store"
	"github.com/sells-group/playlist-chat/pkg/youtube"
)

// Loader orchestrates one full playlist load: id extraction, metadata,
// pagination, enrichment, and the optional response cache.
type Loader struct {
	client youtube.Client
	store  store.Store // nil disables caching
	ttl    time.Duration
}

// NewLoader creates a Loader. A nil store disables caching.
func NewLoader(client youtube.Client, st store.Store, ttl time.Duration) *Loader {
	return &Loader{client: client, store: st, ttl: ttl}
}

// Load resolves rawURL to a fully enriched playlist. Identifier and
// pagination failures abort the load; metadata failure only degrades the
// title; enrichment failures degrade per batch.
func (l *Loader) Load(ctx context.Context, rawURL string) (*model.Playlist, error) {
	id, ok := ExtractID(rawURL)
	if !ok {
		return nil, ErrInvalidPlaylistURL
	}

	if l.store != nil {
		cached, err := l.store.GetPlaylist(ctx, id)
		if err != nil {
			zap.L().Warn("playlist cache read failed", zap.String("playlist_id", id), zap.Error(err))
		} else if cached != nil {
			zap.L().Info("playlist served from cache",
				zap.String("playlist_id", id),
				zap.Int("videos", len(cached.Videos)),
			)
			return cached, nil
		}
	}

	title := l.fetchTitle(ctx, id)

	entries, err := Aggregate(ctx, l.client, id)
	if err != nil {
		return nil, err
	}

	pl := &model.Playlist{
		ID:       id,
		Title:    title,
		Videos:   Enrich(ctx, l.client, entries),
		LoadedAt: time.Now().UTC(),
	}

	if l.store != nil {
		if err := l.store.SetPlaylist(ctx, pl, l.ttl); err != nil {
			zap.L().Warn("playlist cache write failed", zap.String("playlist_id", id), zap.Error(err))
		}
	}

	return pl, nil
}

// fetchTitle resolves the playlist title. Metadata failure is non-fatal: the
// title falls back to a synthesized placeholder.
func (l *Loader) fetchTitle(ctx context.Context, id string) string {
	resp, err := l.client.PlaylistInfo(ctx, id)
	if err != nil || len(resp.Items) == 0 {
		zap.L().Warn("could not fetch playlist title", zap.String("playlist_id", id), zap.Error(err))
		return fmt.Sprintf("Playlist %s", id)
	}
	return resp.Items[0].Snippet.Title
}
