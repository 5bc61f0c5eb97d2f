package format

import (
	"fmt"
	"hash/crc32"

	"github.com/joshuapare/pngkit/internal/buf"
	"github.com/joshuapare/pngkit/pkg/types"
)

// Chunk is a single decoded PNG chunk. Data aliases the input buffer when
// the chunk came from ParseChunk.
type Chunk struct {
	Type types.ChunkType
	Data []byte
	CRC  uint32 // as stored; equals ChunkCRC(Type, Data) for parsed chunks
}

// NewChunk builds a chunk and computes its CRC.
func NewChunk(t types.ChunkType, data []byte) Chunk {
	return Chunk{Type: t, Data: data, CRC: ChunkCRC(t, data)}
}

// ChunkCRC computes the CRC-32 (IEEE) over the type code and data.
func ChunkCRC(t types.ChunkType, data []byte) uint32 {
	h := crc32.NewIEEE()
	tb := t.Bytes()
	_, _ = h.Write(tb[:])
	_, _ = h.Write(data)
	return h.Sum32()
}

// Length returns the data length as stored in the length field.
func (c Chunk) Length() uint32 {
	return uint32(len(c.Data)) //nolint:gosec // pkg/png rejects data over MaxChunkLength before insert
}

// Size returns the encoded size of the chunk including framing.
func (c Chunk) Size() int {
	return ChunkOverhead + len(c.Data)
}

// ParseChunk decodes the chunk at the start of b and returns it with the
// number of bytes consumed.
func ParseChunk(b []byte) (Chunk, int, error) {
	if !buf.Has(b, 0, ChunkHeaderSize) {
		return Chunk{}, 0, fmt.Errorf("chunk: %w", ErrTruncated)
	}
	length := buf.U32BE(b[ChunkLengthOffset:])
	if length > MaxChunkLength {
		return Chunk{}, 0, fmt.Errorf("chunk: length %d: %w", length, ErrChunkTooLarge)
	}

	var code [ChunkTypeSize]byte
	copy(code[:], b[ChunkTypeOffset:ChunkTypeOffset+ChunkTypeSize])
	t, err := types.FromBytes(code)
	if err != nil {
		return Chunk{}, 0, fmt.Errorf("chunk: %w", err)
	}

	data, ok := buf.Slice(b, ChunkDataOffset, int(length))
	if !ok {
		return Chunk{}, 0, fmt.Errorf("chunk %s: data: %w", t, ErrTruncated)
	}
	crcOff := ChunkDataOffset + int(length)
	crcRaw, ok := buf.Slice(b, crcOff, ChunkCRCSize)
	if !ok {
		return Chunk{}, 0, fmt.Errorf("chunk %s: crc: %w", t, ErrTruncated)
	}
	stored := buf.U32BE(crcRaw)
	if want := ChunkCRC(t, data); stored != want {
		return Chunk{}, 0, fmt.Errorf("chunk %s: stored 0x%08x, computed 0x%08x: %w",
			t, stored, want, ErrCRCMismatch)
	}
	return Chunk{Type: t, Data: data, CRC: stored}, crcOff + ChunkCRCSize, nil
}

// AppendTo appends the encoded chunk to dst. The CRC is recomputed so a
// chunk whose Data was edited in place is still written consistently.
func (c Chunk) AppendTo(dst []byte) []byte {
	dst = buf.AppendU32BE(dst, c.Length())
	tb := c.Type.Bytes()
	dst = append(dst, tb[:]...)
	dst = append(dst, c.Data...)
	return buf.AppendU32BE(dst, ChunkCRC(c.Type, c.Data))
}

// Encode returns the chunk in wire form.
func (c Chunk) Encode() []byte {
	return c.AppendTo(make([]byte, 0, c.Size()))
}
