// Package memory provides an in-process implementation of storage.Store.
// Nothing survives a restart; it backs tests and throwaway servers.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/dongledger/internal/models"
	"github.com/mmynk/dongledger/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps the encoded state in memory.
type Store struct {
	mu   sync.RWMutex
	data []byte
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Load decodes the last saved state.
func (s *Store) Load(ctx context.Context) (*models.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, storage.ErrNotFound
	}
	return storage.Decode(s.data)
}

// Save encodes and keeps st.
func (s *Store) Save(ctx context.Context, st models.State) error {
	data, err := storage.Encode(st)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
