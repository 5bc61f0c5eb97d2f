// Package format houses low-level decoders and encoders for the PNG
// container: the file signature and the length/type/data/CRC chunk framing.
// The goal is to keep parsing focused and allocation-light, and independent
// from the public API so higher-level packages can orchestrate the data in
// a more ergonomic form.
package format

// Signature is the eight-byte sequence at the start of every PNG file.
//
//	0x00  0x89 'P' 'N' 'G' '\r' '\n' 0x1A '\n'
var Signature = [SignatureSize]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const (
	// SignatureSize is the length of the PNG file signature.
	SignatureSize = 8

	// Chunk layout (big-endian):
	//
	//	Offset  Size    Description
	//	0x00    4       Data length (excludes length, type and CRC)
	//	0x04    4       Chunk type code
	//	0x08    length  Chunk data
	//	...     4       CRC-32 over type and data
	ChunkLengthOffset = 0x00
	ChunkLengthSize   = 4
	ChunkTypeOffset   = 0x04
	ChunkTypeSize     = 4
	ChunkDataOffset   = 0x08
	ChunkCRCSize      = 4

	// ChunkHeaderSize is the length and type fields together.
	ChunkHeaderSize = ChunkLengthSize + ChunkTypeSize

	// ChunkOverhead is the framing around the data of every chunk.
	ChunkOverhead = ChunkHeaderSize + ChunkCRCSize

	// MaxChunkLength is the largest data length the format permits (2^31-1).
	MaxChunkLength = 1<<31 - 1

	// TextKeywordMaxLen is the longest tEXt keyword allowed.
	TextKeywordMaxLen = 79

	// textSeparator terminates the tEXt keyword.
	textSeparator = 0x00
)
