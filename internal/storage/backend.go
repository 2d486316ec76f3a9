// Package storage provides a key-value store for world data.
//
// Values are JSON-encoded. Keys use "/" separators to form directories;
// callers list a directory's keys with [DB.Keys].
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotExist is returned when a key is not present in the store.
var ErrNotExist = errors.New("does not exist")

// SetRequest is a single key-value pair to write.
type SetRequest struct {
	Key   string
	Value any // JSON-serializable
}

// UpdateRequest is a batch of changes applied atomically where the
// backend supports it.
type UpdateRequest struct {
	Sets    []SetRequest
	Deletes []string
	Message string // reason for the change, for backends that record it
}

// Backend is a raw storage backend.
type Backend interface {
	// Get retrieves the value at key into dst,
	// or returns [ErrNotExist].
	Get(ctx context.Context, key string, dst any) error

	// Update applies a batch of changes.
	Update(ctx context.Context, req UpdateRequest) error

	// Keys lists keys under the given directory in sorted order.
	Keys(ctx context.Context, dir string) ([]string, error)

	// Clear removes all keys from the store.
	Clear(ctx context.Context, msg string) error
}

// DB wraps a [Backend] with single-key convenience operations.
type DB struct {
	b Backend
}

// NewDB creates a DB backed by b.
func NewDB(b Backend) *DB {
	return &DB{b: b}
}

// Get retrieves the value at key into dst.
func (db *DB) Get(ctx context.Context, key string, dst any) error {
	return db.b.Get(ctx, key, dst)
}

// Set writes a single key.
func (db *DB) Set(ctx context.Context, key string, value any, msg string) error {
	err := db.b.Update(ctx, UpdateRequest{
		Sets:    []SetRequest{{Key: key, Value: value}},
		Message: msg,
	})
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes a single key. Deleting a missing key is not an error.
func (db *DB) Delete(ctx context.Context, key, msg string) error {
	err := db.b.Update(ctx, UpdateRequest{
		Deletes: []string{key},
		Message: msg,
	})
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Update applies a batch of changes.
func (db *DB) Update(ctx context.Context, req UpdateRequest) error {
	return db.b.Update(ctx, req)
}

// Keys lists keys under dir.
func (db *DB) Keys(ctx context.Context, dir string) ([]string, error) {
	return db.b.Keys(ctx, dir)
}

// Clear removes everything in the store.
func (db *DB) Clear(ctx context.Context, msg string) error {
	return db.b.Clear(ctx, msg)
}
