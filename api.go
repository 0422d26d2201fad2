package clipvault

import (
	"context"

	"github.com/unkn0wn-root/clipvault/store"
)

// Clipboard is the store-agnostic clipboard API. Implementations are safe
// for concurrent use; the store is the only shared mutable state.
type Clipboard interface {
	// Write stores content under id, created exactly once. A non-empty key
	// pad-encodes the content before persistence and marks the entry
	// protected; key and content must then have equal byte length
	// (*pad.LengthMismatchError otherwise). Returns store.ErrDuplicate if
	// the id already exists.
	Write(ctx context.Context, id string, content, key []byte) error

	// Fetch returns the entry for a plain read. Key material is always
	// stripped; for a protected entry the content is stripped too, so an
	// unauthenticated reader gets metadata only, never ciphertext posing
	// as plaintext. Returns ErrNotFound if the id is absent.
	Fetch(ctx context.Context, id string) (Fetched, error)

	// Reveal verifies key against the stored key and, on a match, returns
	// the decoded plaintext. Returns ErrNotFound, ErrNotEncrypted for a
	// plain entry, or ErrInvalidKey on a mismatch. ErrInvalidKey carries no
	// timing or partial-match information.
	Reveal(ctx context.Context, id string, key []byte) ([]byte, error)

	// Close releases the underlying store.
	Close(ctx context.Context) error
}

// Fetched is a plain read of an entry. Content is nil when Protected.
type Fetched struct {
	ID        string
	Content   []byte
	Protected bool
}

// Options configure a Clipboard. Only Store is required.
type Options struct {
	// Required
	Store store.Store

	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used
}

func New(opts Options) (Clipboard, error) {
	return newService(opts)
}
