package memory

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/unkn0wn-root/clipvault/store"
)

func TestInsertLookup(t *testing.T) {
	ctx := context.Background()
	s := New()

	e := store.Entry{ID: "a", Content: []byte("hello"), Protected: true, Key: []byte("world")}
	if err := s.Insert(ctx, e); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, ok, err := s.Lookup(ctx, "a")
	if err != nil || !ok {
		t.Fatalf("Lookup: ok=%v err=%v", ok, err)
	}
	if got.ID != "a" || !got.Protected || !bytes.Equal(got.Content, e.Content) || !bytes.Equal(got.Key, e.Key) {
		t.Errorf("Lookup returned wrong entry: %+v", got)
	}

	if _, ok, err := s.Lookup(ctx, "missing"); err != nil || ok {
		t.Errorf("Lookup of missing id: ok=%v err=%v", ok, err)
	}
}

func TestInsertDuplicate(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.Insert(ctx, store.Entry{ID: "a", Content: []byte("one")}); err != nil {
		t.Fatalf("first Insert: %v", err)
	}
	err := s.Insert(ctx, store.Entry{ID: "a", Content: []byte("two")})
	if !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("second Insert: want ErrDuplicate, got %v", err)
	}

	// Store state equals the state after the first insert alone.
	got, ok, _ := s.Lookup(ctx, "a")
	if !ok || string(got.Content) != "one" {
		t.Errorf("duplicate insert disturbed stored entry: ok=%v content=%q", ok, got.Content)
	}
	if s.Len() != 1 {
		t.Errorf("want 1 entry, got %d", s.Len())
	}
}

// TestConcurrentInsertSameID: of N racing inserts for one id, exactly one
// may win.
func TestConcurrentInsertSameID(t *testing.T) {
	ctx := context.Background()
	s := New()

	const concurrency = 50
	results := make(chan error, concurrency)
	for i := 0; i < concurrency; i++ {
		go func(n int) {
			results <- s.Insert(ctx, store.Entry{ID: "race", Content: []byte(fmt.Sprintf("writer-%d", n))})
		}(i)
	}

	successes := 0
	for i := 0; i < concurrency; i++ {
		err := <-results
		switch {
		case err == nil:
			successes++
		case errors.Is(err, store.ErrDuplicate):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Errorf("want exactly 1 successful insert, got %d", successes)
	}
}

// TestSnapshotIsolation: mutating a returned entry must not affect the
// stored one.
func TestSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.Insert(ctx, store.Entry{ID: "a", Content: []byte("hello")}); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, _, _ := s.Lookup(ctx, "a")
	got.Content[0] = 'X'

	again, _, _ := s.Lookup(ctx, "a")
	if string(again.Content) != "hello" {
		t.Errorf("stored entry was aliased by a Lookup result: %q", again.Content)
	}
}
