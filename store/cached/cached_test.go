package cached

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/unkn0wn-root/clipvault/store"
	"github.com/unkn0wn-root/clipvault/store/memory"
)

// countingStore counts lookups reaching the inner store.
type countingStore struct {
	store.Store
	lookups atomic.Int64
}

func (c *countingStore) Lookup(ctx context.Context, id string) (store.Entry, bool, error) {
	c.lookups.Add(1)
	return c.Store.Lookup(ctx, id)
}

func testConfig() Config {
	return Config{NumCounters: 1000, MaxCost: 1 << 20, BufferItems: 64}
}

func TestReadThrough(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Store: memory.New()}
	s, err := New(inner, testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	e := store.Entry{ID: "a", Content: []byte("hello"), Protected: true, Key: []byte("world")}
	if err := s.Insert(ctx, e); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	// Correctness never depends on a cache hit.
	got, ok, err := s.Lookup(ctx, "a")
	if err != nil || !ok {
		t.Fatalf("Lookup: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got.Content, e.Content) || !bytes.Equal(got.Key, e.Key) || !got.Protected {
		t.Errorf("Lookup returned wrong entry: %+v", got)
	}

	// Once the buffered cache write lands, further lookups stop reaching
	// the inner store.
	s.Wait()
	before := inner.lookups.Load()
	for i := 0; i < 10; i++ {
		if _, ok, err := s.Lookup(ctx, "a"); err != nil || !ok {
			t.Fatalf("cached Lookup: ok=%v err=%v", ok, err)
		}
	}
	if after := inner.lookups.Load(); after != before {
		t.Errorf("expected cache hits, inner lookups grew %d -> %d", before, after)
	}
}

func TestMissAndErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Store: memory.New()}
	s, err := New(inner, testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, ok, err := s.Lookup(ctx, "missing"); err != nil || ok {
		t.Errorf("miss: ok=%v err=%v", ok, err)
	}
	if inner.lookups.Load() == 0 {
		t.Errorf("miss should consult the inner store")
	}

	if err := s.Insert(ctx, store.Entry{ID: "a", Content: []byte("x")}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := s.Insert(ctx, store.Entry{ID: "a", Content: []byte("y")}); !errors.Is(err, store.ErrDuplicate) {
		t.Errorf("duplicate must pass through, got %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	if _, err := New(nil, testConfig()); err == nil {
		t.Errorf("nil inner store should be rejected")
	}
	if _, err := New(memory.New(), Config{}); err == nil {
		t.Errorf("zero config should be rejected")
	}
}
