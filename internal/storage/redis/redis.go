// Package redis provides a Redis-backed implementation of storage.Store.
// The state is one JSON string value under a configurable key.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mmynk/dongledger/internal/models"
	"github.com/mmynk/dongledger/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Config selects the Redis server and key.
type Config struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// Store implements storage.Store on a Redis string key.
type Store struct {
	client *redis.Client
	key    string
}

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address required")
	}
	key := cfg.Key
	if key == "" {
		key = storage.DefaultKey
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Store{client: client, key: key}, nil
}

// Load reads and decodes the state.
func (s *Store) Load(ctx context.Context) (*models.State, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state: %w", err)
	}
	return storage.Decode(data)
}

// Save encodes and writes the state without expiry.
func (s *Store) Save(ctx context.Context, st models.State) error {
	data, err := storage.Encode(st)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// Close closes the client.
func (s *Store) Close() error {
	return s.client.Close()
}
