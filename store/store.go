// Package store defines the storage abstraction for clipboard entries.
//
// Implementations MUST be record-transparent: Lookup must return exactly the
// Entry previously passed to Insert for that id (no mutation, no partial
// state). Entries are immutable once stored — there is no update or delete —
// so a Lookup snapshot never goes stale.
//
// Insert is atomic with respect to the uniqueness check: of two concurrent
// inserts for the same id, exactly one succeeds and the other returns
// ErrDuplicate. How that is serialized (whole-store lock, SetNX, ...) is an
// implementation choice.
package store

import (
	"context"
	"errors"
)

// ErrDuplicate is returned by Insert when the id is already stored.
var ErrDuplicate = errors.New("store: id already exists")

// Entry is the stored unit of the clipboard. When Protected is true, Key is
// set, Content holds the pad-encoded bytes, and len(Key) == len(Content)
// (enforced by the encoder at write time). When Protected is false, Key is
// nil and Content is the verbatim payload.
type Entry struct {
	ID        string
	Content   []byte
	Protected bool
	Key       []byte
}

// Clone returns a deep copy of the entry. Stores hand out clones so callers
// can never alias internal buffers.
func (e Entry) Clone() Entry {
	c := Entry{ID: e.ID, Protected: e.Protected}
	if e.Content != nil {
		c.Content = make([]byte, len(e.Content))
		copy(c.Content, e.Content)
	}
	if e.Key != nil {
		c.Key = make([]byte, len(e.Key))
		copy(c.Key, e.Key)
	}
	return c
}

// Store is a keyed store of clipboard entries with insert-once semantics.
// Must be safe for concurrent use.
type Store interface {
	// Insert stores the entry. Returns ErrDuplicate when the id exists.
	Insert(ctx context.Context, e Entry) error

	// Lookup returns (entry, true, nil) on hit; (zero, false, nil) on miss.
	// If an IO/remote error happens, it returns (zero, false, err).
	// The returned entry is the full record, key material included —
	// redaction for unauthenticated readers is the service's job.
	Lookup(ctx context.Context, id string) (Entry, bool, error)

	// Close releases resources.
	Close(ctx context.Context) error
}
