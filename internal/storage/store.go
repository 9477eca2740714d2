// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
)

// ErrSlotNotFound is returned by Slot.Get when nothing was ever written
// under the key.
var ErrSlotNotFound = errors.New("slot not found")

// Slot defines a durable key-value slot.
// The receipt ledger keeps its whole collection under one key and rewrites
// it on every change, so a slot only needs whole-value reads and writes.
// This abstraction allows swapping storage backends (SQLite, in-memory, etc.)
// without changing the ledger.
type Slot interface {
	// Get returns the value stored under key.
	// Returns ErrSlotNotFound if the key was never written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the value stored under key.
	Put(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the slot.
	Close() error
}
