// Package redis provides a store.Store backed by Redis. SETNX supplies the
// atomic insert-once check, so uniqueness holds across replicas sharing the
// same Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/clipvault/codec"
	"github.com/unkn0wn-root/clipvault/internal/wire"
	"github.com/unkn0wn-root/clipvault/store"
)

var ErrNilClient = errors.New("redis store: nil client")

// Config for the Redis-backed store.
type Config struct {
	Client goredis.UniversalClient
	// Namespace isolates this store's keys: "entry:<ns>:<id>".
	Namespace string
	// Codec serializes entry records. Nil defaults to deterministic CBOR.
	Codec codec.Codec
	// CloseClient: set true only if this store exclusively owns the client.
	CloseClient bool
}

type Store struct {
	rdb         goredis.UniversalClient
	ns          string
	codec       codec.Codec
	closeClient bool
}

var _ store.Store = (*Store)(nil)

func New(cfg Config) (*Store, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	c := cfg.Codec
	if c == nil {
		cb, err := codec.NewCBOR(true)
		if err != nil {
			return nil, err
		}
		c = cb
	}
	return &Store{rdb: cfg.Client, ns: cfg.Namespace, codec: c, closeClient: cfg.CloseClient}, nil
}

func (s *Store) key(id string) string { return "entry:" + s.ns + ":" + id }

func (s *Store) Insert(ctx context.Context, e store.Entry) error {
	payload, err := s.codec.Encode(e)
	if err != nil {
		return fmt.Errorf("redis store: encode %q: %w", e.ID, err)
	}
	// 0 TTL: entries are immutable and never expire at this layer.
	ok, err := s.rdb.SetNX(ctx, s.key(e.ID), wire.Encode(payload), 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrDuplicate
	}
	return nil
}

func (s *Store) Lookup(ctx context.Context, id string) (store.Entry, bool, error) {
	b, err := s.rdb.Get(ctx, s.key(id)).Bytes()
	if err == goredis.Nil {
		return store.Entry{}, false, nil // miss
	}
	if err != nil {
		return store.Entry{}, false, err // transport/server error
	}
	payload, err := wire.Decode(b)
	if err != nil {
		// Foreign write under our prefix or torn value. Surface it; a
		// clipboard must not silently treat a stored entry as missing.
		return store.Entry{}, false, fmt.Errorf("redis store: %q: %w", id, err)
	}
	e, err := s.codec.Decode(payload)
	if err != nil {
		return store.Entry{}, false, fmt.Errorf("redis store: decode %q: %w", id, err)
	}
	return e, true, nil
}

// Close releases the underlying redis client only when this store owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (s *Store) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
