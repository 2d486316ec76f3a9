package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// FileBackend stores the world in a single JSON file on disk. The whole
// file is read on open and rewritten on every update; world data is
// small enough that this is simpler and safer than a page store.
type FileBackend struct {
	mu    sync.Mutex
	path  string
	items map[string]json.RawMessage
}

var _ Backend = (*FileBackend)(nil)

// OpenFileBackend opens or creates the store at path.
func OpenFileBackend(path string) (*FileBackend, error) {
	b := &FileBackend{
		path:  path,
		items: make(map[string]json.RawMessage),
	}

	bs, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// First run; the file is created on first write.
	case err != nil:
		return nil, fmt.Errorf("read store: %w", err)
	default:
		if err := json.Unmarshal(bs, &b.items); err != nil {
			return nil, fmt.Errorf("decode store %q: %w", path, err)
		}
	}

	return b, nil
}

// Get retrieves a value from the store.
func (b *FileBackend) Get(_ context.Context, key string, dst any) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	v, ok := b.items[key]
	if !ok {
		return ErrNotExist
	}
	return json.Unmarshal(v, dst)
}

// Update applies a batch of changes and flushes the file.
func (b *FileBackend) Update(_ context.Context, req UpdateRequest) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, set := range req.Sets {
		v, err := json.Marshal(set.Value)
		if err != nil {
			return fmt.Errorf("marshal [%d]: %w", i, err)
		}
		b.items[set.Key] = v
	}
	for _, key := range req.Deletes {
		delete(b.items, key)
	}

	return b.flush()
}

// Keys lists keys under dir, relative to it, in sorted order.
func (b *FileBackend) Keys(_ context.Context, dir string) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if dir != "" && !strings.HasSuffix(dir, "/") {
		dir += "/"
	}

	var keys []string
	for k := range b.items {
		if rest, ok := strings.CutPrefix(k, dir); ok {
			keys = append(keys, rest)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Clear removes all keys and flushes the file.
func (b *FileBackend) Clear(context.Context, string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	clear(b.items)
	return b.flush()
}

// flush writes the store to disk via a temporary file so that a crash
// mid-write cannot truncate the previous contents.
func (b *FileBackend) flush() error {
	bs, err := json.MarshalIndent(b.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, bs, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
