package format

import "errors"

var (
	// ErrSignatureMismatch indicates the input does not start with the PNG signature.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrChunkTooLarge indicates a declared chunk length above 2^31-1.
	ErrChunkTooLarge = errors.New("format: chunk length out of range")
	// ErrCRCMismatch indicates the stored CRC does not match type and data.
	ErrCRCMismatch = errors.New("format: crc mismatch")
	// ErrNotFound indicates a requested chunk was missing.
	ErrNotFound = errors.New("format: not found")
	// ErrBadText indicates a malformed tEXt payload.
	ErrBadText = errors.New("format: malformed text chunk")
)
