// Package redis provides a storage adapter over a Redis instance. Keys are
// namespaced so the storefront can share a database with other tenants.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"techstore/internal/domain"
)

const defaultNamespace = "techstore:state"

type Store struct {
	client    *redis.Client
	namespace string
}

// Open connects to the Redis URL (redis://host:port/db) and verifies the
// connection with a ping.
func Open(ctx context.Context, url string) (*Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewWithClient(client), nil
}

// NewWithClient wraps an existing client; used by tests with miniredis.
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client, namespace: defaultNamespace}
}

func (s *Store) key(key string) string {
	return s.namespace + ":" + key
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return raw, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

func (s *Store) Clear(ctx context.Context) error {
	keys, err := s.client.Keys(ctx, s.namespace+":*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
