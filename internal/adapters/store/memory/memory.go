// Package memory provides an in-memory Store for tests and ephemeral runs.
package memory

import (
	"context"
	"sync"

	"github.com/akerley/pocketledger/internal/core/ports/store"
)

// Store keeps records in a map. Reads return snapshot copies of the stored
// strings, so concurrent readers never observe partial writes.
type Store struct {
	mu      sync.RWMutex
	records map[string]string
}

var _ store.Store = (*Store)(nil)

// New returns an empty in-memory store.
func New() *Store {
	return &Store{records: make(map[string]string)}
}

// Seed pre-populates a key, bypassing context plumbing. Test helper.
func (s *Store) Seed(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = value
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.records[key]
	return v, ok, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = value
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}
