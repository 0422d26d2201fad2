// Package bigcache provides an ephemeral store.Store over allegro/bigcache.
// BigCache has no conditional set, so an insert mutex supplies the
// uniqueness check; lookups stay lock-free on bigcache's own shards.
//
// BigCache evicts entries after the configured LifeWindow (it has no
// per-entry TTL). That makes this backend a deliberately short-lived
// clipboard: an evicted id can be written again. Use the redis store when
// entries must outlive the window.
package bigcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/unkn0wn-root/clipvault/codec"
	"github.com/unkn0wn-root/clipvault/internal/wire"
	"github.com/unkn0wn-root/clipvault/store"
)

type Config struct {
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
	// Codec serializes entry records. Nil defaults to deterministic CBOR.
	Codec codec.Codec
}

type Store struct {
	insertMu sync.Mutex
	c        *bc.BigCache
	codec    codec.Codec
}

var _ store.Store = (*Store)(nil)

func New(cfg Config) (*Store, error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.NewBigCache(conf)
	if err != nil {
		return nil, err
	}
	cd := cfg.Codec
	if cd == nil {
		cb, err := codec.NewCBOR(true)
		if err != nil {
			return nil, err
		}
		cd = cb
	}
	return &Store{c: c, codec: cd}, nil
}

func (s *Store) Insert(_ context.Context, e store.Entry) error {
	payload, err := s.codec.Encode(e)
	if err != nil {
		return fmt.Errorf("bigcache store: encode %q: %w", e.ID, err)
	}

	s.insertMu.Lock()
	defer s.insertMu.Unlock()
	if _, err := s.c.Get(e.ID); err == nil {
		return store.ErrDuplicate
	}
	return s.c.Set(e.ID, wire.Encode(payload))
}

func (s *Store) Lookup(_ context.Context, id string) (store.Entry, bool, error) {
	b, err := s.c.Get(id)
	if err == bc.ErrEntryNotFound {
		return store.Entry{}, false, nil
	}
	if err != nil {
		return store.Entry{}, false, err
	}
	payload, err := wire.Decode(b)
	if err != nil {
		return store.Entry{}, false, fmt.Errorf("bigcache store: %q: %w", id, err)
	}
	e, err := s.codec.Decode(payload)
	if err != nil {
		return store.Entry{}, false, fmt.Errorf("bigcache store: decode %q: %w", id, err)
	}
	return e, true, nil
}

func (s *Store) Close(context.Context) error { return s.c.Close() }
