/*
Package png provides a high-level API for inspecting and editing the chunk
stream of PNG files: hiding messages in private chunks, reading them back,
removing chunks, and validating files against configurable limits.

# Quick Start

Hide a message in a private, safe-to-copy chunk:

	err := png.Encode("image.png", "ruSt", "hello", nil)

Read it back:

	msg, err := png.Decode("image.png", "ruSt", nil)

# Chunk types

Chunk types are four-byte binary codes (see types.ChunkType). They are
parsed from the raw bytes of the string argument with no text decoding, so
"ruSt" is the bytes 0x72 0x75 0x53 0x74 and nothing else. Encode only
accepts types whose reserved byte is uppercase.

# Limits

Every read enforces types.Limits. Presets are available through
DefaultLimits, StrictLimits and RelaxedLimits, and LoadLimits reads a YAML
file:

	preset: strict
	max_chunks: 128

# Error Handling

Errors are *types.Error values with a stable Kind; use errors.Is with the
sentinels in package types:

	if errors.Is(err, types.ErrNotFound) { ... }
*/
package png
