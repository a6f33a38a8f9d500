package store

import (
	"context"
	"errors"
	"sync"

	"github.com/prawinrajulu/reclaim/internal/model"
)

// ErrItemNotFound is returned when an item ID resolves to nothing. It is
// distinct from eligibility failures: callers map it to "no such item"
// rather than "item exists but cannot be claimed".
var ErrItemNotFound = errors.New("item not found")

// ItemStore is the lookup boundary to the item collection. The production
// document store lives outside this repository; the advisory engine only
// ever reads through this interface.
type ItemStore interface {
	GetItem(ctx context.Context, id string) (*model.Item, error)
}

// MemoryStore is an in-memory ItemStore for the CLI and tests
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]model.Item
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]model.Item),
	}
}

// Put inserts or replaces an item
func (s *MemoryStore) Put(item model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = item
}

// GetItem retrieves an item by ID
func (s *MemoryStore) GetItem(ctx context.Context, id string) (*model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &item, nil
}
