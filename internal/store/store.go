package store

import (
	"context"
	"time"

	"github.com/sells-group/playlist-chat/internal/model"
)

// CacheStats summarizes the cache contents.
type CacheStats struct {
	Entries int `json:"entries"`
	Expired int `json:"expired"`
}

// Store is the playlist response cache. It memoizes enriched playlists so
// repeat loads don't spend upstream API quota; chat transcripts are never
// stored.
type Store interface {
	// GetPlaylist returns the cached playlist, or nil when absent or expired.
	GetPlaylist(ctx context.Context, playlistID string) (*model.Playlist, error)
	// SetPlaylist caches the playlist for ttl, replacing any previous entry.
	SetPlaylist(ctx context.Context, pl *model.Playlist, ttl time.Duration) error
	// PurgeExpired deletes expired entries and reports how many were removed.
	PurgeExpired(ctx context.Context) (int, error)
	// Stats reports entry counts.
	Stats(ctx context.Context) (CacheStats, error)

	Migrate(ctx context.Context) error
	Close() error
}
