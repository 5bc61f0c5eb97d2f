package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/pngkit/pkg/types"
)

// Image is the chunk sequence of a PNG file. Pixel data is left opaque.
type Image struct {
	Chunks []Chunk

	// Trailing holds any bytes after IEND. They are written back unchanged.
	Trailing []byte
}

// CheckSignature reports whether b starts with the PNG signature.
func CheckSignature(b []byte) error {
	if len(b) < SignatureSize {
		return fmt.Errorf("signature: %w", ErrTruncated)
	}
	if !bytes.Equal(b[:SignatureSize], Signature[:]) {
		return fmt.Errorf("signature: %w", ErrSignatureMismatch)
	}
	return nil
}

// WalkChunks validates the signature and calls fn for every chunk in order
// with the chunk's file offset. Walking ends after IEND, at the end of b,
// or at the first error from decoding or from fn. It returns the offset
// where walking ended; anything from there on is trailing data.
func WalkChunks(b []byte, fn func(c Chunk, off int) error) (int, error) {
	if err := CheckSignature(b); err != nil {
		return 0, err
	}
	off := SignatureSize
	for off < len(b) {
		c, n, err := ParseChunk(b[off:])
		if err != nil {
			return off, fmt.Errorf("offset %d: %w", off, err)
		}
		if err := fn(c, off); err != nil {
			return off, err
		}
		off += n
		if c.Type == types.IEND {
			break
		}
	}
	return off, nil
}

// ParseImage decodes every chunk in b. Chunk data aliases b.
func ParseImage(b []byte) (*Image, error) {
	img := &Image{}
	end, err := WalkChunks(b, func(c Chunk, _ int) error {
		img.Chunks = append(img.Chunks, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if end < len(b) {
		img.Trailing = b[end:]
	}
	return img, nil
}

// Size returns the encoded length of the image.
func (img *Image) Size() int {
	n := SignatureSize
	for _, c := range img.Chunks {
		n += c.Size()
	}
	return n + len(img.Trailing)
}

// Bytes encodes the signature, every chunk, then any trailing data.
func (img *Image) Bytes() []byte {
	out := make([]byte, 0, img.Size())
	out = append(out, Signature[:]...)
	for _, c := range img.Chunks {
		out = c.AppendTo(out)
	}
	return append(out, img.Trailing...)
}

// ChunkByType returns the first chunk of type t.
func (img *Image) ChunkByType(t types.ChunkType) (Chunk, bool) {
	i := img.index(t)
	if i < 0 {
		return Chunk{}, false
	}
	return img.Chunks[i], true
}

// Insert places c immediately before IEND, or at the end when the image has
// no IEND chunk.
func (img *Image) Insert(c Chunk) {
	i := img.index(types.IEND)
	if i < 0 {
		img.Chunks = append(img.Chunks, c)
		return
	}
	img.Chunks = append(img.Chunks, Chunk{})
	copy(img.Chunks[i+1:], img.Chunks[i:])
	img.Chunks[i] = c
}

// RemoveFirst removes and returns the first chunk of type t.
func (img *Image) RemoveFirst(t types.ChunkType) (Chunk, error) {
	i := img.index(t)
	if i < 0 {
		return Chunk{}, fmt.Errorf("chunk %s: %w", t, ErrNotFound)
	}
	c := img.Chunks[i]
	img.Chunks = append(img.Chunks[:i], img.Chunks[i+1:]...)
	return c, nil
}

func (img *Image) index(t types.ChunkType) int {
	for i, c := range img.Chunks {
		if c.Type == t {
			return i
		}
	}
	return -1
}
