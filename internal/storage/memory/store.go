package memory

import (
	"context"
	"sync"

	"github.com/tiwariParth/todo-json/internal/models"
	"github.com/tiwariParth/todo-json/internal/storage"
)

// MemoryStore implements storage.Storage in memory. When created with a base
// store it reads each path through to the base once and keeps every later
// change to itself, which makes it usable as a dry-run overlay.
type MemoryStore struct {
	lists map[string][]models.Item
	base  storage.Storage
	mu    sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		lists: make(map[string][]models.Item),
	}
}

// NewOverlay creates a store that loads unseen paths from base and never
// writes to it.
func NewOverlay(base storage.Storage) *MemoryStore {
	m := NewMemoryStore()
	m.base = base
	return m
}

// Load returns a copy of the list stored at path.
func (m *MemoryStore) Load(ctx context.Context, path string) ([]models.Item, error) {
	m.mu.RLock()
	items, ok := m.lists[path]
	m.mu.RUnlock()
	if ok {
		return clone(items), nil
	}

	if m.base == nil {
		return []models.Item{}, nil
	}

	items, err := m.base.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[path] = clone(items)
	return items, nil
}

// Save replaces the list stored at path with a copy of items.
func (m *MemoryStore) Save(ctx context.Context, path string, items []models.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lists[path] = clone(items)
	return nil
}

// Len returns the number of lists held in memory.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.lists)
}

func clone(items []models.Item) []models.Item {
	out := make([]models.Item, len(items))
	copy(out, items)
	return out
}
