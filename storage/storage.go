// Package storage persists visitor state (cart, wishlist, current user) as
// JSON snapshots behind a small key-value interface.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("storage: key not found")
	ErrCorrupt  = errors.New("storage: stored value is corrupt")
)

// Store is a byte-oriented key-value backend. Delete of a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// SessionKey names the slot a session keeps one kind of state in.
func SessionKey(sessionID, name string) string {
	return "session:" + sessionID + ":" + name
}

// Repository stores a single JSON-encoded value of type T under one key.
type Repository[T any] struct {
	store Store
	key   string
}

func NewRepository[T any](store Store, key string) *Repository[T] {
	return &Repository[T]{store: store, key: key}
}

func (r *Repository[T]) Key() string { return r.key }

// Load returns ErrNotFound when nothing is stored and an error wrapping
// ErrCorrupt when the stored bytes do not decode.
func (r *Repository[T]) Load(ctx context.Context) (T, error) {
	var v T
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %s: %v", ErrCorrupt, r.key, err)
	}
	return v, nil
}

func (r *Repository[T]) Save(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}
	return r.store.Set(ctx, r.key, data)
}

func (r *Repository[T]) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, r.key)
}
