package types

import "fmt"

// TypeCodeSize is the length of a chunk type code in bytes.
const TypeCodeSize = 4

// caseBit is bit 5 of a type code byte. It is clear for uppercase ASCII
// letters and set for lowercase ones; PNG encodes each chunk property in it.
const caseBit = 0x20

// ChunkType is a four-byte chunk type code. Type codes are restricted to
// uppercase and lowercase ASCII letters (65-90 and 97-122), but they are
// fixed binary values, not character strings: the EBCDIC bytes for "IDAT"
// are not the IDAT type code.
//
// Layout:
//
//	Byte  Role          Property (bit 5)
//	0     ancillary     0 = critical,         1 = ancillary
//	1     private       0 = public,           1 = private
//	2     reserved      0 = conforming,       1 = reserved for future use
//	3     safe-to-copy  0 = unsafe to copy,   1 = safe to copy
//
// The zero value is not a constructed chunk type. Values are comparable;
// two chunk types are equal iff their four bytes are equal.
type ChunkType struct {
	ancillary  byte
	private    byte
	reserved   byte
	safeToCopy byte
}

// FromBytes builds a ChunkType from four raw bytes. It fails with
// ErrInvalidTypeCode if any byte is not an ASCII letter.
func FromBytes(b [TypeCodeSize]byte) (ChunkType, error) {
	if err := checkTypeCode(b[:]); err != nil {
		return ChunkType{}, err
	}
	return ChunkType{
		ancillary:  b[0],
		private:    b[1],
		reserved:   b[2],
		safeToCopy: b[3],
	}, nil
}

// ParseChunkType builds a ChunkType from the first four bytes of s. The
// string is read byte by byte with no decoding step; bytes past the fourth
// are ignored. Inputs shorter than four bytes fail with ErrInvalidTypeCode.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) < TypeCodeSize {
		return ChunkType{}, Wrap(ErrInvalidTypeCode,
			fmt.Errorf("need %d bytes, got %d", TypeCodeSize, len(s)))
	}
	var b [TypeCodeSize]byte
	copy(b[:], s)
	return FromBytes(b)
}

// MustChunkType is like ParseChunkType but panics on error. It is meant for
// package-level constants such as the standard chunk types.
func MustChunkType(s string) ChunkType {
	ct, err := ParseChunkType(s)
	if err != nil {
		panic(fmt.Sprintf("types: MustChunkType(%q): %v", s, err))
	}
	return ct
}

// checkTypeCode is the single letter rule shared by every constructor.
func checkTypeCode(b []byte) error {
	for i, c := range b {
		if !isLetter(c) {
			return Wrap(ErrInvalidTypeCode,
				fmt.Errorf("byte %d is 0x%02x, not an ASCII letter", i, c))
		}
	}
	return nil
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isLetter(c byte) bool { return isUpper(c) || isLower(c) }

// Bytes returns the type code in stream order.
func (c ChunkType) Bytes() [TypeCodeSize]byte {
	return [TypeCodeSize]byte{c.ancillary, c.private, c.reserved, c.safeToCopy}
}

// IsValid reports whether every byte is a letter and the reserved byte is
// uppercase. A constructed ChunkType can still report false here.
func (c ChunkType) IsValid() bool {
	return isLetter(c.ancillary) &&
		isLetter(c.private) &&
		isUpper(c.reserved) &&
		isLetter(c.safeToCopy)
}

// IsCritical reports whether decoders must understand this chunk to
// display the image.
func (c ChunkType) IsCritical() bool { return c.ancillary&caseBit == 0 }

// IsPublic reports whether the type is part of the public PNG registry.
func (c ChunkType) IsPublic() bool { return c.private&caseBit == 0 }

// IsReservedBitValid reports whether the reserved bit is clear.
func (c ChunkType) IsReservedBitValid() bool { return c.reserved&caseBit == 0 }

// IsSafeToCopy reports whether editors that do not recognise the chunk may
// copy it into a modified file.
func (c ChunkType) IsSafeToCopy() bool { return c.safeToCopy&caseBit != 0 }

// String returns the four bytes unchanged.
func (c ChunkType) String() string {
	b := c.Bytes()
	return string(b[:])
}

// MarshalText implements encoding.TextMarshaler.
func (c ChunkType) MarshalText() ([]byte, error) {
	b := c.Bytes()
	if err := checkTypeCode(b[:]); err != nil {
		return nil, err
	}
	return b[:], nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike ParseChunkType
// it requires exactly four bytes.
func (c *ChunkType) UnmarshalText(text []byte) error {
	if len(text) != TypeCodeSize {
		return Wrap(ErrInvalidTypeCode,
			fmt.Errorf("need %d bytes, got %d", TypeCodeSize, len(text)))
	}
	ct, err := ParseChunkType(string(text))
	if err != nil {
		return err
	}
	*c = ct
	return nil
}

// Standard chunk types referenced by the container codec.
var (
	IHDR = MustChunkType("IHDR")
	PLTE = MustChunkType("PLTE")
	IDAT = MustChunkType("IDAT")
	IEND = MustChunkType("IEND")
	TEXT = MustChunkType("tEXt")
)
