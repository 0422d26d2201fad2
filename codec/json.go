package codec

import (
	"encoding/json"

	"github.com/unkn0wn-root/clipvault/store"
)

// JSON serializes records as JSON. Debug-friendly; larger on the wire than
// CBOR or Msgpack. The zero value is ready to use.
type JSON struct{}

var _ Codec = JSON{}

func (JSON) Encode(e store.Entry) ([]byte, error) { return json.Marshal(toRecord(e)) }

func (JSON) Decode(b []byte) (store.Entry, error) {
	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return store.Entry{}, err
	}
	return r.entry(), nil
}
