// Package memory provides an in-process store.Store. It satisfies the same
// contract as the durable backends and is the default for tests and
// single-node deployments where entries may die with the process.
package memory

import (
	"context"
	"sync"

	"github.com/unkn0wn-root/clipvault/store"
)

// Store keeps entries in a mutex-guarded map. Insert-once is serialized by
// the write lock; lookups run concurrently under the read lock and return
// deep copies so callers never observe a partially-written or aliased entry.
type Store struct {
	mu      sync.RWMutex
	entries map[string]store.Entry
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{entries: make(map[string]store.Entry)}
}

func (s *Store) Insert(_ context.Context, e store.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[e.ID]; exists {
		return store.ErrDuplicate
	}
	s.entries[e.ID] = e.Clone()
	return nil
}

func (s *Store) Lookup(_ context.Context, id string) (store.Entry, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return store.Entry{}, false, nil
	}
	return e.Clone(), true, nil
}

func (s *Store) Close(context.Context) error { return nil }

// Len reports the number of stored entries. Test helper.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
