// Package postgres provides a storage adapter over a single key/value table,
// kept for deployments that want storefront state to survive restarts in a
// shared database.
package postgres

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"techstore/internal/domain"
)

type Store struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func New(pool *pgxpool.Pool, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{pool: pool, logger: logger}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM storefront_state WHERE key = $1`
	var raw []byte
	if err := s.pool.QueryRow(ctx, q, key).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		s.logger.Printf("state repo: get key=%s error=%v", key, err)
		return nil, err
	}
	return raw, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO storefront_state (key, value)
VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
`
	if _, err := s.pool.Exec(ctx, q, key, value); err != nil {
		s.logger.Printf("state repo: set key=%s error=%v", key, err)
		return err
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	const q = `DELETE FROM storefront_state WHERE key = $1`
	if _, err := s.pool.Exec(ctx, q, key); err != nil {
		s.logger.Printf("state repo: remove key=%s error=%v", key, err)
		return err
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	const q = `DELETE FROM storefront_state`
	if _, err := s.pool.Exec(ctx, q); err != nil {
		s.logger.Printf("state repo: clear error=%v", err)
		return err
	}
	return nil
}
