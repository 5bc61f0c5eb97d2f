package format

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/pngkit/pkg/types"
)

// ParseText splits a tEXt chunk into keyword and text. Both are stored as
// Latin-1 and are returned as UTF-8. Only chunk payloads are decoded here;
// the chunk type itself stays binary.
func ParseText(c Chunk) (string, string, error) {
	if c.Type != types.TEXT {
		return "", "", fmt.Errorf("text: chunk %s: %w", c.Type, ErrBadText)
	}
	sep := bytes.IndexByte(c.Data, textSeparator)
	if sep < 1 || sep > TextKeywordMaxLen {
		return "", "", fmt.Errorf("text: keyword length %d: %w", sep, ErrBadText)
	}
	dec := charmap.ISO8859_1.NewDecoder()
	keyword, err := dec.Bytes(c.Data[:sep])
	if err != nil {
		return "", "", fmt.Errorf("text: keyword: %w", err)
	}
	text, err := dec.Bytes(c.Data[sep+1:])
	if err != nil {
		return "", "", fmt.Errorf("text: body: %w", err)
	}
	return string(keyword), string(text), nil
}

// NewTextChunk encodes keyword and text as a Latin-1 tEXt chunk. Runes
// outside Latin-1 are rejected rather than replaced.
func NewTextChunk(keyword, text string) (Chunk, error) {
	enc := charmap.ISO8859_1.NewEncoder()
	kw, err := enc.Bytes([]byte(keyword))
	if err != nil {
		return Chunk{}, fmt.Errorf("text: keyword %q: %w", keyword, err)
	}
	if len(kw) < 1 || len(kw) > TextKeywordMaxLen || bytes.IndexByte(kw, textSeparator) >= 0 {
		return Chunk{}, fmt.Errorf("text: keyword length %d: %w", len(kw), ErrBadText)
	}
	body, err := enc.Bytes([]byte(text))
	if err != nil {
		return Chunk{}, fmt.Errorf("text: body: %w", err)
	}
	data := make([]byte, 0, len(kw)+1+len(body))
	data = append(data, kw...)
	data = append(data, textSeparator)
	data = append(data, body...)
	return NewChunk(types.TEXT, data), nil
}
