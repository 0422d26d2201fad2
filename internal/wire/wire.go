// Package wire frames serialized entry records for byte-oriented stores.
// The envelope lets a store reject foreign or corrupt values before handing
// bytes to a record codec.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const version byte = 1

var (
	ErrCorrupt = errors.New("clipvault: corrupt record")
	magic4     = [...]byte{'C', 'V', 'L', 'T'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Envelope: magic(4) | ver(1) | plen(u32 be) | payload(plen)
func Encode(payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

func Decode(b []byte) ([]byte, error) {
	const hdr = 4 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version {
		return nil, ErrCorrupt
	}

	off := 5
	plen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if plen > len(b)-off { // overflow-safe bound check
		return nil, ErrCorrupt
	}

	return b[off : off+plen], nil
}
