package types

// ============================================================================
// PNG Limits Constants
// ============================================================================
// The PNG format caps a single chunk length at 2^31-1 bytes. The other
// values below are practical ceilings, not format rules.

const (
	// PNGMaxChunkLength is the largest chunk data length the format allows.
	PNGMaxChunkLength = 1<<31 - 1

	// MaxChunkLength16MB is the default per-chunk ceiling.
	MaxChunkLength16MB = 16 << 20

	// MaxChunkLength1MB is a conservative per-chunk ceiling.
	MaxChunkLength1MB = 1 << 20

	// MaxChunksDefault is the default number of chunks tolerated in one file.
	MaxChunksDefault = 65536

	// MaxChunksRelaxed allows files split into very many IDAT chunks.
	MaxChunksRelaxed = 1 << 20

	// MaxChunksStrict is a conservative chunk count ceiling.
	MaxChunksStrict = 1024

	// MaxFileSize256MB is the default file size ceiling.
	MaxFileSize256MB = 256 << 20

	// MaxFileSize4GB is a relaxed file size ceiling.
	MaxFileSize4GB = 4 << 30

	// MaxFileSize16MB is a conservative file size ceiling.
	MaxFileSize16MB = 16 << 20
)

// Limits bounds how much input a reader accepts before giving up.
type Limits struct {
	// MaxFileSize is the maximum total size of a PNG file in bytes.
	MaxFileSize int64 `yaml:"max_file_size" json:"max_file_size"`

	// MaxChunks is the maximum number of chunks, IHDR and IEND included.
	MaxChunks int `yaml:"max_chunks" json:"max_chunks"`

	// MaxChunkLength is the maximum data length of a single chunk.
	// Never larger than PNGMaxChunkLength.
	MaxChunkLength int64 `yaml:"max_chunk_length" json:"max_chunk_length"`

	// RequireValidTypes rejects files containing chunk types whose
	// IsValid reports false (reserved bit set).
	RequireValidTypes bool `yaml:"require_valid_types" json:"require_valid_types"`
}

// DefaultLimits returns limits suitable for ordinary images.
func DefaultLimits() Limits {
	return Limits{
		MaxFileSize:       MaxFileSize256MB,
		MaxChunks:         MaxChunksDefault,
		MaxChunkLength:    MaxChunkLength16MB,
		RequireValidTypes: false,
	}
}

// RelaxedLimits returns permissive limits for very large images.
func RelaxedLimits() Limits {
	return Limits{
		MaxFileSize:       MaxFileSize4GB,
		MaxChunks:         MaxChunksRelaxed,
		MaxChunkLength:    PNGMaxChunkLength,
		RequireValidTypes: false,
	}
}

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() Limits {
	return Limits{
		MaxFileSize:       MaxFileSize16MB,
		MaxChunks:         MaxChunksStrict,
		MaxChunkLength:    MaxChunkLength1MB,
		RequireValidTypes: true,
	}
}

// LimitsPreset returns the named preset: "default", "strict" or "relaxed".
func LimitsPreset(name string) (Limits, bool) {
	switch name {
	case "", "default":
		return DefaultLimits(), true
	case "strict":
		return StrictLimits(), true
	case "relaxed":
		return RelaxedLimits(), true
	default:
		return Limits{}, false
	}
}
