package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/playlist-chat/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS playlist_cache (
	id          TEXT PRIMARY KEY,
	playlist_id TEXT NOT NULL,
	title       TEXT NOT NULL,
	videos      TEXT NOT NULL,
	loaded_at   DATETIME NOT NULL,
	expires_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_playlist_cache_playlist_id ON playlist_cache(playlist_id);
CREATE INDEX IF NOT EXISTS idx_playlist_cache_expires_at ON playlist_cache(expires_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) GetPlaylist(ctx context.Context, playlistID string) (*model.Playlist, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT title, videos, loaded_at FROM playlist_cache
		 WHERE playlist_id = ? AND expires_at > ?
		 ORDER BY loaded_at DESC LIMIT 1`,
		playlistID, time.Now().UTC(),
	)

	var title, videosJSON string
	var loadedAt time.Time
	if err := row.Scan(&title, &videosJSON, &loadedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "sqlite: get playlist %s", playlistID)
	}

	var videos []model.Video
	if err := json.Unmarshal([]byte(videosJSON), &videos); err != nil {
		return nil, eris.Wrapf(err, "sqlite: unmarshal playlist %s", playlistID)
	}

	return &model.Playlist{
		ID:       playlistID,
		Title:    title,
		Videos:   videos,
		LoadedAt: loadedAt,
	}, nil
}

func (s *SQLiteStore) SetPlaylist(ctx context.Context, pl *model.Playlist, ttl time.Duration) error {
	videosJSON, err := json.Marshal(pl.Videos)
	if err != nil {
		return eris.Wrapf(err, "sqlite: marshal playlist %s", pl.ID)
	}

	now := time.Now().UTC()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM playlist_cache WHERE playlist_id = ?`, pl.ID,
	); err != nil {
		return eris.Wrapf(err, "sqlite: evict playlist %s", pl.ID)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO playlist_cache (id, playlist_id, title, videos, loaded_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), pl.ID, pl.Title, string(videosJSON), now, now.Add(ttl),
	); err != nil {
		return eris.Wrapf(err, "sqlite: insert playlist %s", pl.ID)
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit")
}

func (s *SQLiteStore) PurgeExpired(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM playlist_cache WHERE expires_at <= ?`, time.Now().UTC(),
	)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: purge expired")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: rows affected")
	}
	return int(n), nil
}

func (s *SQLiteStore) Stats(ctx context.Context) (CacheStats, error) {
	var stats CacheStats
	now := time.Now().UTC()

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM playlist_cache`,
	).Scan(&stats.Entries); err != nil {
		return stats, eris.Wrap(err, "sqlite: count entries")
	}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM playlist_cache WHERE expires_at <= ?`, now,
	).Scan(&stats.Expired); err != nil {
		return stats, eris.Wrap(err, "sqlite: count expired")
	}

	return stats, nil
}
