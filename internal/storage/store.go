// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mmynk/dongledger/internal/models"
)

// DefaultKey is the key the ledger state is stored under.
const DefaultKey = "expense-app-state"

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("state not found")

//go:generate mockgen -source=store.go -destination=storemock/store_mock.go -package=storemock

// Store defines the persistence boundary of the ledger: the whole state is
// loaded once at startup and saved after every change.
// This abstraction allows swapping storage backends (SQLite, Redis, memory)
// without changing the ledger.
type Store interface {
	// Load returns the last saved state, or ErrNotFound.
	Load(ctx context.Context) (*models.State, error)

	// Save replaces the stored state with s.
	Save(ctx context.Context, s models.State) error

	// Close releases any resources held by the store.
	Close() error
}

// Encode serializes a state for a key-value backend.
func Encode(s models.State) ([]byte, error) {
	data, err := json.Marshal(s.Normalize())
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

// Decode parses a state written by Encode.
func Decode(data []byte) (*models.State, error) {
	var s models.State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode state: %w", err)
	}
	return &s, nil
}
