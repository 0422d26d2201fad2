// Package clipvault implements a shared-secret clipboard: a client stores a
// blob under a caller-chosen id, optionally protected with an equal-length
// key via a one-time-pad (XOR) transform; another client later fetches the
// entry's metadata or, by presenting the matching key, reveals the decoded
// plaintext.
//
// Components:
//   - pad: the reversible XOR transform (encode on write, decode on reveal).
//   - verify: constant-time key verification gating the decode.
//   - store.Store: insert-once keyed storage (memory, redis, bigcache;
//     optional ristretto read-through cache).
//   - Clipboard: the orchestrator tying the above together.
//
// Lifecycle per id: absent -> stored exactly once -> read many times.
// Entries are immutable; there is no update, delete, or expiry at this
// layer. A second Write for the same id fails with store.ErrDuplicate.
//
// The pad is a shared-secret gate, not authenticated encryption: it is not
// secure against key reuse or partial key knowledge. What the core does
// guarantee is that a wrong key on Reveal yields ErrInvalidKey with no hint
// of where the key differed or how long the real key is, in payload or in
// timing.
package clipvault
