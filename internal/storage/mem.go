package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemBackend is an in-memory storage backend. It is the default for
// sessions that do not persist the world between runs, and for tests.
type MemBackend struct {
	mu    sync.RWMutex
	items map[string][]byte
}

var _ Backend = (*MemBackend)(nil)

// NewMemBackend creates an empty in-memory backend.
func NewMemBackend() *MemBackend {
	return &MemBackend{items: make(map[string][]byte)}
}

// Get retrieves a value from the store.
func (m *MemBackend) Get(_ context.Context, key string, dst any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	if !ok {
		return ErrNotExist
	}
	return json.Unmarshal(v, dst)
}

// Update applies a batch of changes to the store.
func (m *MemBackend) Update(_ context.Context, req UpdateRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, set := range req.Sets {
		v, err := json.Marshal(set.Value)
		if err != nil {
			return fmt.Errorf("marshal [%d]: %w", i, err)
		}
		m.items[set.Key] = v
	}

	for _, key := range req.Deletes {
		delete(m.items, key)
	}

	return nil
}

// Keys lists keys under dir, relative to it, in sorted order.
func (m *MemBackend) Keys(_ context.Context, dir string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if dir != "" && !strings.HasSuffix(dir, "/") {
		dir += "/"
	}

	var keys []string
	for k := range m.items {
		if rest, ok := strings.CutPrefix(k, dir); ok {
			keys = append(keys, rest)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Clear removes all keys from the store.
func (m *MemBackend) Clear(context.Context, string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.items)
	return nil
}
