package codec

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/unkn0wn-root/clipvault/store"
)

// Msgpack serializes records using vmihailenco/msgpack/v5. Compact and
// fast. The zero value is ready to use.
type Msgpack struct{}

var _ Codec = Msgpack{}

func (Msgpack) Encode(e store.Entry) ([]byte, error) {
	return msgpack.Marshal(toRecord(e))
}

func (Msgpack) Decode(b []byte) (store.Entry, error) {
	var r record
	if err := msgpack.Unmarshal(b, &r); err != nil {
		return store.Entry{}, err
	}
	return r.entry(), nil
}
