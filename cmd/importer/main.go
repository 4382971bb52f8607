package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"techstore/internal/config"
	"techstore/internal/db"
	"techstore/internal/importer"
	"techstore/internal/storage"
	filestore "techstore/internal/storage/file"
	pgstore "techstore/internal/storage/postgres"
	redisstore "techstore/internal/storage/redis"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to product catalog CSV")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

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

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, importer.NewStoreWriter(store))

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d products in %s\n", count, time.Since(start).Truncate(time.Millisecond))
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
		logger.Fatalf("storage backend %q cannot be imported into", cfg.StorageBackend)
		return nil, nil, nil
	}
}
