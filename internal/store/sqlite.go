// Package store persists extracted tracks in a local SQLite database so
// repeat lookups skip re-extraction across restarts.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/couchcryptid/cyclone-track-service/internal/domain"
)

// Store is a SQLite-backed track cache keyed by dataset, storm identifier,
// and identifier mode. Tracks are stored as JSON blobs.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database file at path and ensures the schema
// exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS tracks (
		dataset      TEXT NOT NULL,
		storm_id     TEXT NOT NULL,
		id_mode      TEXT NOT NULL,
		extracted_at TEXT NOT NULL,
		payload      BLOB NOT NULL,
		PRIMARY KEY (dataset, storm_id, id_mode)
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tracks table: %w", err)
	}

	return &Store{db: db}, nil
}

// Put upserts a track. Re-extracting the same storm overwrites the prior
// row, so the store always holds the latest result.
func (s *Store) Put(ctx context.Context, mode domain.IDMode, track domain.Track) error {
	payload, err := json.Marshal(track)
	if err != nil {
		return fmt.Errorf("marshal track: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO tracks (dataset, storm_id, id_mode, extracted_at, payload)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (dataset, storm_id, id_mode) DO UPDATE SET
			extracted_at = excluded.extracted_at,
			payload      = excluded.payload`,
		track.Dataset, track.StormID, string(mode), track.ExtractedAt.Format(time.RFC3339), payload)
	if err != nil {
		return fmt.Errorf("upsert track: %w", err)
	}
	return nil
}

// Get loads a stored track. ok is false when no row exists.
func (s *Store) Get(ctx context.Context, dataset, stormID string, mode domain.IDMode) (domain.Track, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM tracks WHERE dataset = ? AND storm_id = ? AND id_mode = ?`,
		dataset, stormID, string(mode)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Track{}, false, nil
	}
	if err != nil {
		return domain.Track{}, false, fmt.Errorf("select track: %w", err)
	}

	var track domain.Track
	if err := json.Unmarshal(payload, &track); err != nil {
		return domain.Track{}, false, fmt.Errorf("unmarshal track: %w", err)
	}
	return track, true, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
