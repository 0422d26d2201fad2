// Package verify decides whether a presented key matches a stored key
// without leaking anything about the mismatch through timing.
//
// Match compares fixed-size SHA-256 digests of both inputs with
// subtle.ConstantTimeCompare. Hashing first means the comparison itself is
// always over 32 bytes, so neither the position of the first differing
// byte nor the relation between the input lengths is observable from the
// wall clock. There are no artificial delays: a sleep per element is a
// blunt mitigation a scheduler can distort, not a constant-time guarantee.
package verify

import (
	"crypto/sha256"
	"crypto/subtle"
)

// Match reports whether presented equals stored. It runs in time
// independent of where (or whether) the two differ. A mismatch carries no
// partial-progress information.
func Match(presented, stored []byte) bool {
	pd := sha256.Sum256(presented)
	sd := sha256.Sum256(stored)
	return subtle.ConstantTimeCompare(pd[:], sd[:]) == 1
}
