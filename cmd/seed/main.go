package main

import (
	"context"
	"log"
	"os"

	"techstore/internal/config"
	"techstore/internal/db"
	"techstore/internal/seed"
	"techstore/internal/storage"
	filestore "techstore/internal/storage/file"
	pgstore "techstore/internal/storage/postgres"
	redisstore "techstore/internal/storage/redis"
)

func main() {
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	store, cleanup, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open %s storage: %v", cfg.StorageBackend, err)
	}
	defer cleanup()

	if err := seed.Apply(ctx, store); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}

func openStore(ctx context.Context, cfg config.Config, logger *log.Logger) (storage.Store, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		store, err := filestore.Open(cfg.StateFile)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	case config.BackendPostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			return nil, nil, err
		}
		return pgstore.New(pool, logger), pool.Close, nil
	case config.BackendRedis:
		store, err := redisstore.Open(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	default:
		// Seeding the in-memory backend would be lost on exit.
		logger.Fatalf("storage backend %q cannot be seeded", cfg.StorageBackend)
		return nil, nil, nil
	}
}
