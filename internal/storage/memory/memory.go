// Package memory provides an in-memory implementation of the storage.Slot
// interface. Values are lost when the process exits.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mmynk/receiptbook/internal/storage"
)

var _ storage.Slot = (*SlotStore)(nil)

// SlotStore is a map-backed storage.Slot.
type SlotStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// New creates an empty SlotStore.
func New() *SlotStore {
	return &SlotStore{slots: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (s *SlotStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrSlotNotFound, key)
	}
	return append([]byte(nil), value...), nil
}

// Put stores a copy of value under key.
func (s *SlotStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = append([]byte(nil), value...)
	return nil
}

// Close is a no-op.
func (s *SlotStore) Close() error {
	return nil
}
