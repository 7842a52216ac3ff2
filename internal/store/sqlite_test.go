package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/playlist-chat/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func samplePlaylist(id string) *model.Playlist {
	return &model.Playlist{
		ID:    id,
		Title: "Go Talks",
		Videos: []model.Video{
			{
				Position:  1,
				VideoID:   "video-1",
				Title:     "Video 1",
				Duration:  "PT4M20S",
				ViewCount: "1000",
			},
			{
				Position:  2,
				VideoID:   "video-2",
				Title:     "Video 2",
				Duration:  model.Unavailable,
				ViewCount: model.Unavailable,
			},
		},
		LoadedAt: time.Now().UTC(),
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetPlaylist(ctx, samplePlaylist("PLgo"), time.Hour))

	got, err := s.GetPlaylist(ctx, "PLgo")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "PLgo", got.ID)
	assert.Equal(t, "Go Talks", got.Title)
	require.Len(t, got.Videos, 2)
	assert.Equal(t, "video-1", got.Videos[0].VideoID)
	assert.Equal(t, model.Unavailable, got.Videos[1].ViewCount)
}

func TestSQLiteStore_MissReturnsNilNil(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetPlaylist(context.Background(), "PLmissing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteStore_ExpiredEntryIsAMiss(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetPlaylist(ctx, samplePlaylist("PLgo"), -time.Minute))

	got, err := s.GetPlaylist(ctx, "PLgo")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteStore_SetReplacesPriorEntry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetPlaylist(ctx, samplePlaylist("PLgo"), time.Hour))

	updated := samplePlaylist("PLgo")
	updated.Title = "Go Talks, refreshed"
	require.NoError(t, s.SetPlaylist(ctx, updated, time.Hour))

	got, err := s.GetPlaylist(ctx, "PLgo")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Go Talks, refreshed", got.Title)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Entries)
}

func TestSQLiteStore_PurgeExpired(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetPlaylist(ctx, samplePlaylist("PLfresh"), time.Hour))
	require.NoError(t, s.SetPlaylist(ctx, samplePlaylist("PLstale"), -time.Minute))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Entries)
	assert.Equal(t, 1, stats.Expired)

	purged, err := s.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	stats, err = s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, 0, stats.Expired)

	got, err := s.GetPlaylist(ctx, "PLfresh")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
