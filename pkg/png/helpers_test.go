package png

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pngkit/internal/format"
	"github.com/joshuapare/pngkit/pkg/types"
)

// ihdr1x1 is the IHDR payload of a 1x1 8-bit greyscale image.
var ihdr1x1 = []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 0, 0, 0, 0}

// idat1x1 is a zlib stream holding the single filtered scanline of ihdr1x1.
var idat1x1 = []byte{0x78, 0x9c, 0x63, 0x60, 0x00, 0x00, 0x00, 0x02, 0x00, 0x01}

func testChunks(extra ...format.Chunk) []format.Chunk {
	chunks := []format.Chunk{
		format.NewChunk(types.IHDR, ihdr1x1),
		format.NewChunk(types.IDAT, idat1x1),
	}
	chunks = append(chunks, extra...)
	return append(chunks, format.NewChunk(types.IEND, nil))
}

// writePNG writes the given chunks as a PNG into a temp dir and returns the path.
func writePNG(t *testing.T, chunks []format.Chunk) string {
	t.Helper()
	img := &format.Image{Chunks: chunks}
	path := filepath.Join(t.TempDir(), "test.png")
	require.NoError(t, os.WriteFile(path, img.Bytes(), 0o644))
	return path
}

func readImage(t *testing.T, path string) *format.Image {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	img, err := format.ParseImage(raw)
	require.NoError(t, err)
	return img
}
