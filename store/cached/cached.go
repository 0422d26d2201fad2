// Package cached decorates any store.Store with a ristretto read-through
// lookup cache. Entries are immutable once stored, so a cached snapshot can
// never go stale and no invalidation path exists.
//
// Ristretto's admission policy may drop writes under pressure; that only
// costs a future cache miss, never correctness, which is why it serves as a
// lookup cache and not as a primary store (its lossy Set cannot honor the
// insert-once contract).
package cached

import (
	"context"
	"errors"

	rc "github.com/dgraph-io/ristretto"

	"github.com/unkn0wn-root/clipvault/store"
)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

type Store struct {
	inner store.Store
	c     *rc.Cache
}

var _ store.Store = (*Store)(nil)

func New(inner store.Store, cfg Config) (*Store, error) {
	if inner == nil {
		return nil, errors.New("cached store: nil inner store")
	}
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("cached store: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Store{inner: inner, c: c}, nil
}

func cost(e store.Entry) int64 {
	return int64(len(e.ID) + len(e.Content) + len(e.Key) + 1)
}

func (s *Store) Insert(ctx context.Context, e store.Entry) error {
	if err := s.inner.Insert(ctx, e); err != nil {
		return err
	}
	// Warm the cache best-effort; a dropped Set is just a later miss.
	s.c.Set(e.ID, e.Clone(), cost(e))
	return nil
}

func (s *Store) Lookup(ctx context.Context, id string) (store.Entry, bool, error) {
	if v, ok := s.c.Get(id); ok {
		if e, ok := v.(store.Entry); ok {
			return e.Clone(), true, nil
		}
		// self-heal: drop unexpected entry shape
		s.c.Del(id)
	}
	e, ok, err := s.inner.Lookup(ctx, id)
	if err != nil || !ok {
		return store.Entry{}, false, err
	}
	s.c.Set(id, e.Clone(), cost(e))
	return e, true, nil
}

func (s *Store) Close(ctx context.Context) error {
	s.c.Wait()
	s.c.Close()
	return s.inner.Close(ctx)
}

// Wait blocks until buffered cache writes are applied. Test helper.
func (s *Store) Wait() { s.c.Wait() }

// Metrics exposes ristretto metrics when enabled in Config.
func (s *Store) Metrics() *rc.Metrics { return s.c.Metrics }
