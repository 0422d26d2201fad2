package asynchook

import (
	"sync"
	"testing"

	"github.com/unkn0wn-root/clipvault"
)

type countingHooks struct {
	mu   sync.Mutex
	dups int
	keys int
}

var _ clipvault.Hooks = (*countingHooks)(nil)

func (c *countingHooks) DuplicateRejected(string) {
	c.mu.Lock()
	c.dups++
	c.mu.Unlock()
}
func (c *countingHooks) KeyRejected(string) {
	c.mu.Lock()
	c.keys++
	c.mu.Unlock()
}
func (c *countingHooks) DecodeFailure(string, error) {}
func (c *countingHooks) LookupError(string, error)   {}

func TestDeliveryBeforeClose(t *testing.T) {
	inner := &countingHooks{}
	h := New(inner, 2, 100)

	for i := 0; i < 10; i++ {
		h.DuplicateRejected("a")
		h.KeyRejected("b")
	}
	h.Close() // drains the queue

	inner.mu.Lock()
	defer inner.mu.Unlock()
	if inner.dups != 10 || inner.keys != 10 {
		t.Errorf("want 10/10 events delivered, got dups=%d keys=%d", inner.dups, inner.keys)
	}
}

func TestCloseIdempotent(t *testing.T) {
	h := New(&countingHooks{}, 1, 10)
	h.Close()
	h.Close() // must not panic
}
