// Package buf contains helpers for the big-endian integers used throughout
// the PNG container.
package buf

import "encoding/binary"

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// AppendU32BE appends v to b in big-endian order.
func AppendU32BE(b []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(b, v)
}
