package clipvault

// Hooks are lightweight callbacks for high-signal events. Implementations
// MUST be cheap and non-blocking; the service calls them on hot paths.
// Wrap with hooks/async for fan-out to anything slower.
type Hooks interface {
	// A Write was rejected because the id already exists.
	DuplicateRejected(id string)

	// A Reveal presented a key that did not match. Repeated fires for one
	// id look like a brute-force probe.
	KeyRejected(id string)

	// A stored record failed to decode on Reveal (write-path invariant
	// broken; the caller saw ErrInternal).
	DecodeFailure(id string, err error)

	// The store returned an IO/remote error on Lookup.
	LookupError(id string, err error)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) DuplicateRejected(string)    {}
func (NopHooks) KeyRejected(string)          {}
func (NopHooks) DecodeFailure(string, error) {}
func (NopHooks) LookupError(string, error)   {}
