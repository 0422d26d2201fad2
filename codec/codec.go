// Package codec serializes clipboard entry records to bytes for
// byte-oriented stores (redis, bigcache). In-memory stores keep entries as
// values and never need one.
package codec

import "github.com/unkn0wn-root/clipvault/store"

// Codec encodes/decodes a store.Entry to []byte.
type Codec interface {
	Encode(store.Entry) ([]byte, error)
	Decode([]byte) (store.Entry, error)
}

// record is the persisted shape shared by all codecs: a single collection
// keyed by id with content, a protected flag, and a nullable key.
type record struct {
	ID        string `json:"id" cbor:"1,keyasint" msgpack:"id"`
	Content   []byte `json:"content" cbor:"2,keyasint" msgpack:"content"`
	Protected bool   `json:"protected" cbor:"3,keyasint" msgpack:"protected"`
	Key       []byte `json:"key,omitempty" cbor:"4,keyasint,omitempty" msgpack:"key,omitempty"`
}

func toRecord(e store.Entry) record {
	return record{ID: e.ID, Content: e.Content, Protected: e.Protected, Key: e.Key}
}

func (r record) entry() store.Entry {
	return store.Entry{ID: r.ID, Content: r.Content, Protected: r.Protected, Key: r.Key}
}
