package png

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joshuapare/pngkit/internal/format"
	"github.com/joshuapare/pngkit/internal/logger"
	"github.com/joshuapare/pngkit/pkg/types"
)

// Encode stores message in a new chunk of type chunkType, placed before
// IEND. The chunk type must be valid (reserved byte uppercase).
//
// Example:
//
//	err := png.Encode("image.png", "ruSt", "hello", &png.WriteOptions{Output: "out.png"})
func Encode(path, chunkType, message string, opts *WriteOptions) error {
	ct, err := parseWritableType(chunkType)
	if err != nil {
		return err
	}
	if ct.IsCritical() {
		logger.Warn("writing an unknown critical chunk; decoders may refuse the file", "type", ct.String())
	}
	limits := opts.limits()
	return rewrite(path, opts, func(img *format.Image) error {
		return insertChunk(img, format.NewChunk(ct, []byte(message)), limits)
	})
}

// EncodeText stores a tEXt keyword/text pair before IEND. Both strings are
// written as Latin-1.
func EncodeText(path, keyword, text string, opts *WriteOptions) error {
	c, err := format.NewTextChunk(keyword, text)
	if err != nil {
		return types.Wrap(types.ErrInvalidText, err)
	}
	limits := opts.limits()
	return rewrite(path, opts, func(img *format.Image) error {
		return insertChunk(img, c, limits)
	})
}

// Decode returns the data of the first chunk of type chunkType.
func Decode(path, chunkType string, opts *ReadOptions) ([]byte, error) {
	ct, err := parseType(chunkType)
	if err != nil {
		return nil, err
	}
	f, err := Open(path, opts.limits())
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ChunkData(ct)
}

// Remove deletes the first chunk of type chunkType and returns its data.
func Remove(path, chunkType string, opts *WriteOptions) ([]byte, error) {
	ct, err := parseType(chunkType)
	if err != nil {
		return nil, err
	}
	var removed []byte
	err = rewrite(path, opts, func(img *format.Image) error {
		c, err := img.RemoveFirst(ct)
		if err != nil {
			return classify(err)
		}
		removed = append([]byte(nil), c.Data...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// List returns a summary of every chunk in path.
func List(path string, opts *ReadOptions) ([]ChunkInfo, error) {
	f, err := Open(path, opts.limits())
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Chunks(), nil
}

// Validate checks that path is a well-formed PNG within limits: signature,
// framing and CRCs, IHDR first and IEND last.
func Validate(path string, limits Limits) error {
	f, err := Open(path, limits)
	if err != nil {
		return err
	}
	defer f.Close()

	chunks := f.img.Chunks
	if len(chunks) == 0 || chunks[0].Type != types.IHDR {
		return types.Wrap(types.ErrCorrupt, fmt.Errorf("%s: first chunk is not IHDR", path))
	}
	if last := chunks[len(chunks)-1]; last.Type != types.IEND {
		return types.Wrap(types.ErrCorrupt, fmt.Errorf("%s: last chunk is %s, not IEND", path, last.Type))
	}
	return nil
}

func parseWritableType(s string) (types.ChunkType, error) {
	ct, err := parseType(s)
	if err != nil {
		return types.ChunkType{}, err
	}
	if !ct.IsValid() {
		return types.ChunkType{}, types.Wrap(types.ErrInvalidTypeCode,
			fmt.Errorf("%s: reserved byte must be uppercase", ct))
	}
	return ct, nil
}

// insertChunk places c before IEND unless the result would break limits,
// so every file written can be reopened under the same limits.
func insertChunk(img *format.Image, c format.Chunk, limits Limits) error {
	maxLen := int64(format.MaxChunkLength)
	if limits.MaxChunkLength > 0 && limits.MaxChunkLength < maxLen {
		maxLen = limits.MaxChunkLength
	}
	if int64(len(c.Data)) > maxLen {
		return types.Wrap(types.ErrLimitExceeded,
			fmt.Errorf("chunk %s: length %d over %d", c.Type, len(c.Data), maxLen))
	}
	if limits.MaxChunks > 0 && len(img.Chunks)+1 > limits.MaxChunks {
		return types.Wrap(types.ErrLimitExceeded,
			fmt.Errorf("more than %d chunks", limits.MaxChunks))
	}
	if size := int64(img.Size() + c.Size()); limits.MaxFileSize > 0 && size > limits.MaxFileSize {
		return types.Wrap(types.ErrLimitExceeded,
			fmt.Errorf("file size %d over %d", size, limits.MaxFileSize))
	}
	img.Insert(c)
	return nil
}

// parseType accepts exactly four bytes.
func parseType(s string) (types.ChunkType, error) {
	var ct types.ChunkType
	if err := ct.UnmarshalText([]byte(s)); err != nil {
		return types.ChunkType{}, err
	}
	return ct, nil
}

// rewrite opens path, applies edit to a private copy of the image and
// writes the result atomically.
func rewrite(path string, opts *WriteOptions, edit func(*format.Image) error) error {
	f, err := Open(path, opts.limits())
	if err != nil {
		return err
	}
	if err := edit(f.img); err != nil {
		return errors.Join(fmt.Errorf("%s: %w", path, err), f.Close())
	}
	// Encode before Close: chunk data still aliases the mapping.
	out := f.img.Bytes()
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	dst := opts.output(path)
	// Keep the mode of the file being replaced; new files get 0644.
	perm := os.FileMode(0o644)
	if info, err := os.Stat(dst); err == nil {
		perm = info.Mode().Perm()
	}
	if dst == path && opts.backup() {
		if err := copyFile(path, path+".bak", perm); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}
	if err := writeAtomic(dst, out, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	logger.Info("wrote png", "path", dst, "bytes", len(out))
	return nil
}

func copyFile(src, dst string, perm os.FileMode) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, perm); err != nil {
		return err
	}
	// WriteFile leaves the mode of an existing backup alone.
	return os.Chmod(dst, perm)
}

func writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
