// Package closet persists the user-owned closet state (saved items and
// scan history) as keyed JSON blobs in a local SQLite database.
package closet

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/stylesnap/backend/internal/domain"
)

const (
	keySavedItems  = "savedItems"
	keyScanHistory = "scanHistory"
)

// Store is a ClosetRepository backed by a single key/value table
type Store struct {
	db *sql.DB
}

// Open opens (and initializes) the closet database at the given path.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening closet db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS blobs (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing closet db: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadSavedItems returns the saved items list. Missing or corrupt data
// degrades to an empty list, never an error.
func (s *Store) LoadSavedItems(ctx context.Context) ([]domain.SavedItem, error) {
	var items []domain.SavedItem
	if err := s.load(ctx, keySavedItems, &items); err != nil {
		return []domain.SavedItem{}, nil
	}
	if items == nil {
		items = []domain.SavedItem{}
	}
	return items, nil
}

// StoreSavedItems replaces the saved items list
func (s *Store) StoreSavedItems(ctx context.Context, items []domain.SavedItem) error {
	return s.store(ctx, keySavedItems, items)
}

// LoadScanHistory returns the scan history list. Missing or corrupt data
// degrades to an empty list, never an error.
func (s *Store) LoadScanHistory(ctx context.Context) ([]domain.ScanHistory, error) {
	var history []domain.ScanHistory
	if err := s.load(ctx, keyScanHistory, &history); err != nil {
		return []domain.ScanHistory{}, nil
	}
	if history == nil {
		history = []domain.ScanHistory{}
	}
	return history, nil
}

// StoreScanHistory replaces the scan history list
func (s *Store) StoreScanHistory(ctx context.Context, history []domain.ScanHistory) error {
	return s.store(ctx, keyScanHistory, history)
}

func (s *Store) load(ctx context.Context, key string, dest interface{}) error {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM blobs WHERE key = ?`, key,
	).Scan(&value)
	if err != nil {
		return fmt.Errorf("loading %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(value), dest); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

func (s *Store) store(ctx context.Context, key string, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO blobs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(encoded),
	)
	if err != nil {
		return fmt.Errorf("storing %s: %w", key, err)
	}
	return nil
}
