package png

import (
	"errors"
	"fmt"

	"github.com/joshuapare/pngkit/internal/format"
	"github.com/joshuapare/pngkit/internal/logger"
	"github.com/joshuapare/pngkit/internal/mmfile"
	"github.com/joshuapare/pngkit/pkg/types"
)

// File is an opened PNG. Chunk data aliases a read-only mapping of the file
// and is only valid until Close.
type File struct {
	Path string

	img     *format.Image
	offsets []int
	size    int
	cleanup func() error
}

// ChunkInfo summarises one chunk for listings.
type ChunkInfo struct {
	Offset     int             `json:"offset"`
	Type       types.ChunkType `json:"type"`
	Length     uint32          `json:"length"`
	CRC        uint32          `json:"crc"`
	Critical   bool            `json:"critical"`
	Public     bool            `json:"public"`
	SafeToCopy bool            `json:"safe_to_copy"`
	Valid      bool            `json:"valid"`
	Keyword    string          `json:"keyword,omitempty"`
	Text       string          `json:"text,omitempty"`
}

// Open maps path and parses its chunk stream under limits.
func Open(path string, limits Limits) (*File, error) {
	data, cleanup, err := mmfile.Map(path, limits.MaxFileSize)
	if err != nil {
		if errors.Is(err, mmfile.ErrTooLarge) {
			return nil, types.Wrap(types.ErrLimitExceeded, fmt.Errorf("%s: %w", path, err))
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	f := &File{Path: path, size: len(data), cleanup: cleanup}
	if err := f.parse(data, limits); err != nil {
		return nil, errors.Join(fmt.Errorf("%s: %w", path, err), cleanup())
	}
	logger.Debug("opened png", "path", path, "size", len(data), "chunks", len(f.img.Chunks))
	return f, nil
}

func (f *File) parse(data []byte, limits Limits) error {
	if err := format.CheckSignature(data); err != nil {
		return types.Wrap(types.ErrNotPNG, err)
	}
	img := &format.Image{}
	end, err := format.WalkChunks(data, func(c format.Chunk, off int) error {
		if limits.MaxChunks > 0 && len(img.Chunks) >= limits.MaxChunks {
			return types.Wrap(types.ErrLimitExceeded,
				fmt.Errorf("more than %d chunks", limits.MaxChunks))
		}
		if limits.MaxChunkLength > 0 && int64(c.Length()) > limits.MaxChunkLength {
			return types.Wrap(types.ErrLimitExceeded,
				fmt.Errorf("chunk %s at offset %d: length %d over %d", c.Type, off, c.Length(), limits.MaxChunkLength))
		}
		if !c.Type.IsValid() {
			if limits.RequireValidTypes {
				return types.Wrap(types.ErrInvalidTypeCode,
					fmt.Errorf("chunk %s at offset %d: reserved bit set", c.Type, off))
			}
			logger.Warn("chunk type has reserved bit set", "type", c.Type.String(), "offset", off)
		}
		img.Chunks = append(img.Chunks, c)
		f.offsets = append(f.offsets, off)
		return nil
	})
	if err != nil {
		return classify(err)
	}
	if end < len(data) {
		img.Trailing = data[end:]
		logger.Debug("data after IEND", "offset", end, "bytes", len(img.Trailing))
	}
	f.img = img
	return nil
}

// classify maps codec errors onto the typed sentinels.
func classify(err error) error {
	var typed *types.Error
	switch {
	case errors.As(err, &typed):
		return err
	case errors.Is(err, format.ErrNotFound):
		return types.Wrap(types.ErrNotFound, err)
	case errors.Is(err, format.ErrSignatureMismatch):
		return types.Wrap(types.ErrNotPNG, err)
	default:
		return types.Wrap(types.ErrCorrupt, err)
	}
}

// Close releases the file mapping.
func (f *File) Close() error {
	if f.cleanup == nil {
		return nil
	}
	err := f.cleanup()
	f.cleanup = nil
	return err
}

// TrailingBytes returns how many bytes follow IEND.
func (f *File) TrailingBytes() int { return len(f.img.Trailing) }

// Size returns the file size in bytes.
func (f *File) Size() int { return f.size }

// Chunks returns summaries of every chunk in file order.
func (f *File) Chunks() []ChunkInfo {
	out := make([]ChunkInfo, 0, len(f.img.Chunks))
	for i, c := range f.img.Chunks {
		info := ChunkInfo{
			Offset:     f.offsets[i],
			Type:       c.Type,
			Length:     c.Length(),
			CRC:        c.CRC,
			Critical:   c.Type.IsCritical(),
			Public:     c.Type.IsPublic(),
			SafeToCopy: c.Type.IsSafeToCopy(),
			Valid:      c.Type.IsValid(),
		}
		if c.Type == types.TEXT {
			if kw, text, err := format.ParseText(c); err == nil {
				info.Keyword, info.Text = kw, text
			}
		}
		out = append(out, info)
	}
	return out
}

// ChunkData returns a copy of the data of the first chunk of type t.
func (f *File) ChunkData(t types.ChunkType) ([]byte, error) {
	c, ok := f.img.ChunkByType(t)
	if !ok {
		return nil, types.Wrap(types.ErrNotFound, fmt.Errorf("chunk %s", t))
	}
	return append([]byte(nil), c.Data...), nil
}
