// Package cache provides a TTL key-value store for external API
// responses, backed by SQLite. Keys are request signatures; values
// are raw response payloads.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the SQLite-backed response cache.
type Store struct {
	db *sql.DB
}

// Open opens or creates the cache database. Use ":memory:" for an
// ephemeral cache.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS responses (
		key        TEXT PRIMARY KEY,
		payload    BLOB NOT NULL,
		expires_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_expires ON responses(expires_at);
	`

	_, err := s.db.Exec(schema)

	return err
}

// Get returns the cached payload for a key. The second return is
// false on a miss or when the entry has expired.
func (s *Store) Get(key string) ([]byte, bool) {
	var (
		payload   []byte
		expiresAt int64
	)

	err := s.db.QueryRow(
		"SELECT payload, expires_at FROM responses WHERE key = ?", key,
	).Scan(&payload, &expiresAt)
	if err != nil {
		return nil, false
	}

	if time.Now().Unix() >= expiresAt {
		return nil, false
	}

	return payload, true
}

// Set stores a payload under a key, fresh for ttl.
func (s *Store) Set(key string, payload []byte, ttl time.Duration) error {
	expiresAt := time.Now().Add(ttl).Unix()

	_, err := s.db.Exec(`
	INSERT INTO responses (key, payload, expires_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
		payload = excluded.payload,
		expires_at = excluded.expires_at
	`, key, payload, expiresAt)
	if err != nil {
		return fmt.Errorf("set cache entry: %w", err)
	}

	return nil
}

// Prune deletes expired entries and returns how many were removed.
func (s *Store) Prune() (int64, error) {
	res, err := s.db.Exec(
		"DELETE FROM responses WHERE expires_at <= ?", time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("prune cache: %w", err)
	}

	return res.RowsAffected()
}
