// Package localstore persists item collections on the device in a SQLite
// file. Each collection is one row holding a snappy-compressed JSON snapshot.
package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/golang/snappy"

	// Pure Go SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/heartmarshall/wardrobe-backend/internal/codec"
	"github.com/heartmarshall/wardrobe-backend/internal/config"
	"github.com/heartmarshall/wardrobe-backend/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	key        TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);`

// Store is the local key/value store for collection snapshots.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// Open opens (creating if needed) the SQLite file described by cfg.
func Open(ctx context.Context, cfg config.LocalConfig, logger *slog.Logger) (*Store, error) {
	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}

	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busy.Milliseconds()))
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "synchronous(NORMAL)")
	dsn := "file:" + cfg.Path + "?" + q.Encode()

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("localstore: open %s: %w", cfg.Path, err)
	}
	// A single writer keeps read-modify-write cycles serialised at the file level.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("localstore: init schema: %w", err)
	}

	return &Store{db: db, log: logger.With("component", "localstore")}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks that the file is still readable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Read returns the collection stored under key. A missing key or a snapshot
// that cannot be decoded yields an empty collection; only I/O failures are
// returned as errors.
func (s *Store) Read(ctx context.Context, key string) ([]domain.Item, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM collections WHERE key = ?`, key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return []domain.Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: read %s: %w", key, err)
	}

	raw, err := snappy.Decode(nil, blob)
	if err != nil {
		// Snapshots written before compression was introduced are plain JSON.
		raw = blob
	}

	items := codec.DecodeLocal(raw)
	if len(items) == 0 && len(raw) > 2 {
		s.log.WarnContext(ctx, "local snapshot unreadable, starting empty",
			slog.String("key", key), slog.Int("bytes", len(raw)))
	}
	return items, nil
}

// Write replaces the collection stored under key.
func (s *Store) Write(ctx context.Context, key string, items []domain.Item) error {
	raw, err := codec.EncodeLocal(items)
	if err != nil {
		return fmt.Errorf("localstore: encode %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, snappy.Encode(nil, raw), time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("localstore: write %s: %w", key, err)
	}
	return nil
}

// Keys lists the stored collection keys.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM collections ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("localstore: keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("localstore: scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
