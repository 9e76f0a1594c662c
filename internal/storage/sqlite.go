// Package storage provides the durable key-value layer the tracker persists
// its state slices into. Each slice is one JSON document under a fixed key.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SliceStore implements durable slice persistence over a single SQLite file.
type SliceStore struct {
	db     *sql.DB
	dbPath string
}

// NewSliceStore opens (creating if needed) the database at dbPath.
func NewSliceStore(dbPath string) (*SliceStore, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SliceStore{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SliceStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *SliceStore) Path() string {
	return s.dbPath
}

// Save writes the JSON document for key, replacing any previous value.
func (s *SliceStore) Save(ctx context.Context, key string, value []byte) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slices (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to save slice %q: %w", key, err)
	}
	return nil
}

// Load reads the JSON document for key. Returns ErrNotFound when the key has
// never been written.
func (s *SliceStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(key, "key"); err != nil {
		return nil, err
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slices WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load slice %q: %w", key, err)
	}
	return []byte(value), nil
}

// Remove deletes the document for key. Removing an absent key is not an error.
func (s *SliceStore) Remove(ctx context.Context, key string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM slices WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to remove slice %q: %w", key, err)
	}
	return nil
}

// IsEmpty reports whether the key is absent or holds an empty collection
// ("[]" or "{}"). Used to decide whether to seed demo data on first run.
func (s *SliceStore) IsEmpty(ctx context.Context, key string) (bool, error) {
	value, err := s.Load(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	switch string(value) {
	case "", "[]", "{}", "null":
		return true, nil
	}
	return false, nil
}

// Wipe deletes every stored slice. Used by explicit data reset only.
func (s *SliceStore) Wipe(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM slices`); err != nil {
		return fmt.Errorf("failed to wipe slices: %w", err)
	}
	return nil
}
