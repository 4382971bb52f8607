package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"techstore/internal/cart"
	"techstore/internal/catalog"
	"techstore/internal/checkout"
	"techstore/internal/config"
	"techstore/internal/contact"
	"techstore/internal/db"
	"techstore/internal/httpserver"
	"techstore/internal/seed"
	"techstore/internal/session"
	"techstore/internal/settings"
	"techstore/internal/storage"
	filestore "techstore/internal/storage/file"
	"techstore/internal/storage/memory"
	pgstore "techstore/internal/storage/postgres"
	redisstore "techstore/internal/storage/redis"
)

func main() {
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	store, dbpool, cleanup, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open %s storage: %v", cfg.StorageBackend, err)
	}
	defer cleanup()

	products := catalog.New(seed.Catalog(), logger)
	if err := products.LoadOverride(ctx, store); err != nil {
		logger.Fatalf("load catalog: %v", err)
	}

	engine := cart.New(store, logger)
	if err := engine.Load(ctx); err != nil {
		logger.Fatalf("load cart: %v", err)
	}

	prefs := settings.New(store, logger)
	prefs.Load(ctx)

	sessions := session.New(seed.Users(), store, prefs, logger)

	checkoutSvc := checkout.New(engine, sessions, store, cfg.CheckoutDelay, logger)
	if err := checkoutSvc.Load(ctx, seed.Orders()); err != nil {
		logger.Fatalf("load orders: %v", err)
	}

	messages := contact.New(store, logger)
	if err := messages.Load(ctx); err != nil {
		logger.Fatalf("load contact messages: %v", err)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Catalog:  products,
		Cart:     engine,
		Sessions: sessions,
		Settings: prefs,
		Checkout: checkoutSvc,
		Contact:  messages,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (storage=%s)", cfg.HTTPAddr, cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

// openStore builds the configured storage backend. The returned pool is nil
// unless the backend is postgres; cleanup releases whatever was opened.
func openStore(ctx context.Context, cfg config.Config, logger *log.Logger) (storage.Store, *pgxpool.Pool, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return memory.New(), nil, func() {}, nil
	case config.BackendFile:
		store, err := filestore.Open(cfg.StateFile)
		if err != nil {
			return nil, nil, nil, err
		}
		return store, nil, func() {}, nil
	case config.BackendPostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			return nil, nil, nil, err
		}
		return pgstore.New(pool, logger), pool, pool.Close, nil
	case config.BackendRedis:
		store, err := redisstore.Open(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		return store, nil, func() {
			if err := store.Close(); err != nil {
				logger.Printf("close redis: %v", err)
			}
		}, nil
	default:
		return nil, nil, nil, errors.New("unknown storage backend " + string(cfg.StorageBackend))
	}
}
