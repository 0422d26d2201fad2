package codec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/unkn0wn-root/clipvault/store"
)

// CBOR serializes records using fxamacker/cbor with integer map keys.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core Deterministic)
// when byte-for-byte stable outputs matter; otherwise
// PreferredUnsortedEncOptions are used (sensible defaults).
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec = CBOR{}

// NewCBOR constructs a CBOR codec.
//   - deterministic=true uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions (smaller/faster defaults).
func NewCBOR(deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}

	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error. Handy for package-level
// variables in tests/examples; avoid in prod paths.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR) Encode(e store.Entry) ([]byte, error) {
	return c.enc.Marshal(toRecord(e))
}

func (c CBOR) Decode(b []byte) (store.Entry, error) {
	var r record
	if err := c.dec.Unmarshal(b, &r); err != nil {
		return store.Entry{}, err
	}
	return r.entry(), nil
}
