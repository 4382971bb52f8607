// Package storage defines the persistence contract the storefront engines
// write through: a flat set of string keys, each holding one JSON document.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Keys of the persisted state documents. This list is the whole storage
// contract; backends never see any other key.
const (
	KeyCart            = "cart"
	KeyCurrentUser     = "currentUser"
	KeyOrders          = "orders"
	KeyProducts        = "products"
	KeyTheme           = "theme"
	KeyLanguage        = "language"
	KeyContactMessages = "contactMessages"
)

// Store is the key-value persistence adapter. Get returns domain.ErrNotFound
// when the key has never been written. All operations are fallible; callers
// that write through are expected to keep their in-memory state on failure.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// ReadJSON fetches key and unmarshals it into v.
func ReadJSON(ctx context.Context, s Store, key string, v interface{}) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// WriteJSON marshals v and stores it under key.
func WriteJSON(ctx context.Context, s Store, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
