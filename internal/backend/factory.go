// Package backend opens the storage.Store selected by configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/dongledger/internal/config"
	"github.com/mmynk/dongledger/internal/storage"
	"github.com/mmynk/dongledger/internal/storage/memory"
	"github.com/mmynk/dongledger/internal/storage/redis"
	"github.com/mmynk/dongledger/internal/storage/sqlite"
)

// Type names a storage backend.
type Type string

const (
	SQLite Type = "sqlite"
	Redis  Type = "redis"
	Memory Type = "memory"
)

// Open creates the backend named by cfg.Backend.
func Open(ctx context.Context, cfg config.Store) (storage.Store, error) {
	switch Type(cfg.Backend) {
	case SQLite:
		store, err := sqlite.New(cfg.DBPath, cfg.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite backend: %w", err)
		}
		slog.Info("Initialized SQLite backend", "db_path", cfg.DBPath, "key", cfg.Key)
		return store, nil

	case Redis:
		store, err := redis.New(ctx, redis.Config{
			Addr:     cfg.RedisURL,
			Password: cfg.Password,
			DB:       cfg.RedisDB,
			Key:      cfg.Key,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis backend: %w", err)
		}
		slog.Info("Initialized Redis backend", "addr", cfg.RedisURL, "db", cfg.RedisDB, "key", cfg.Key)
		return store, nil

	case Memory:
		slog.Warn("Using in-memory backend, state will not survive a restart")
		return memory.New(), nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Backend)
	}
}
