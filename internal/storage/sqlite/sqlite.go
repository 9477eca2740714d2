// Package sqlite provides a SQLite-backed implementation of the storage.Slot interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/receiptbook/internal/storage"
)

// Ensure SlotStore implements storage.Slot
var _ storage.Slot = (*SlotStore)(nil)

// SlotStore implements storage.Slot using SQLite.
type SlotStore struct {
	db *sql.DB
}

// New creates a new SlotStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SlotStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps every write on one SQLite handle.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SlotStore{db: db}, nil
}

// Close closes the database connection.
func (s *SlotStore) Close() error {
	return s.db.Close()
}

// Get retrieves the value stored under key.
func (s *SlotStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM slots WHERE key = ?",
		key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrSlotNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}

	return []byte(value), nil
}

// Put replaces the value stored under key in a single statement.
func (s *SlotStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to write slot: %w", err)
	}

	return nil
}
