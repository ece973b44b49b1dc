// Package memory implements an in-memory key-value store, useful for tests
// and for embedding the note repository without touching disk.
package memory

import (
	"context"
	"sync"
)

// Store implements core.Store over a plain map.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

// Initialize is a no-op: a map needs no setup.
func (s *Store) Initialize(ctx context.Context) error {
	return nil
}

// Get retrieves the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

// Set overwrites the value stored under key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// ComponentType identifies the adapter for introspection.
func (s *Store) ComponentType() string {
	return "memory-store"
}
