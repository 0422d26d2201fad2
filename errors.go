package clipvault

import "errors"

// Error taxonomy shared with the transport boundary. Store conflicts
// surface as store.ErrDuplicate and length violations as
// *pad.LengthMismatchError; everything else lives here.
var (
	// ErrNotFound: no entry under the requested id.
	ErrNotFound = errors.New("clipvault: entry not found")

	// ErrNotEncrypted: Reveal was called on an unprotected entry.
	ErrNotEncrypted = errors.New("clipvault: entry is not encrypted")

	// ErrInvalidKey: the presented key does not match the stored key. The
	// error deliberately carries nothing else — no position, no lengths.
	ErrInvalidKey = errors.New("clipvault: invalid key")

	// ErrInternal: an invariant the write path guarantees did not hold at
	// read time (e.g. a stored record that no longer decodes). Details go
	// to hooks/logs, never into the error a caller can relay.
	ErrInternal = errors.New("clipvault: internal error")
)
