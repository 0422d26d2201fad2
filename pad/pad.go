// Package pad implements the reversible one-time-pad transform used to
// protect clipboard entries. The transform is a position-wise XOR of two
// equal-length byte sequences and is its own inverse:
//
//	Apply(key, Apply(key, data)) == data
//
// It operates on raw bytes, never on Unicode scalar values: XOR of two
// arbitrary code points is not closed over valid code points, while XOR of
// two bytes always yields a byte. Callers that want printable ciphertext
// encode the output (hex/base64) at their own boundary.
//
// The pad is NOT secure against key reuse or partial key knowledge. It is a
// shared-secret gate for a clipboard, not authenticated encryption.
package pad

import "fmt"

// LengthMismatchError reports a key whose length differs from the data it
// was applied to. Expected is the data length, Actual the key length.
type LengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("pad: key length %d does not match data length %d", e.Actual, e.Expected)
}

// Apply XORs data with key and returns a new slice of the same length.
// key and data must have identical length; otherwise Apply returns a
// *LengthMismatchError carrying both lengths. Neither input is mutated.
func Apply(key, data []byte) ([]byte, error) {
	if len(key) != len(data) {
		return nil, &LengthMismatchError{Expected: len(data), Actual: len(key)}
	}
	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[i] ^ key[i]
	}
	return out, nil
}
