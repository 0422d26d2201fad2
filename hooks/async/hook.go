// Package asynchook decouples hook consumers from the service's hot path.
// Events are queued to a small worker pool; when the queue is full they are
// dropped rather than blocking a request.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    KeyRejectEvery: 10, // sample: ~every 10th rejected key
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cb, _ := clipvault.New(clipvault.Options{
//	    Store: st,
//	    Hooks: hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/clipvault"
)

type Hooks struct {
	inner clipvault.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ clipvault.Hooks = (*Hooks)(nil)

func New(inner clipvault.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) DuplicateRejected(id string) { h.try(func() { h.inner.DuplicateRejected(id) }) }
func (h *Hooks) KeyRejected(id string)       { h.try(func() { h.inner.KeyRejected(id) }) }
func (h *Hooks) DecodeFailure(id string, err error) {
	h.try(func() { h.inner.DecodeFailure(id, err) })
}
func (h *Hooks) LookupError(id string, err error) {
	h.try(func() { h.inner.LookupError(id, err) })
}
