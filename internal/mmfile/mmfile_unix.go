//go:build unix

package mmfile

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// Map maps the file at path into memory and returns its contents. Files
// larger than maxSize bytes are rejected before mapping; maxSize <= 0
// disables the check. The returned cleanup unmaps the data and must be
// called once the caller is done with every slice aliasing it.
func Map(path string, maxSize int64) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // safe before return; mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if err := checkSize(size, maxSize); err != nil {
		return nil, nil, err
	}
	if size == 0 {
		return []byte{}, noop, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		data = nil
		return err
	}
	return data, cleanup, nil
}
