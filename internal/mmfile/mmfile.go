// Package mmfile provides platform-specific helpers for memory-mapping PNG
// files read-only.
package mmfile

import (
	"errors"
	"fmt"
)

// ErrTooLarge indicates the file is larger than the caller's size cap.
var ErrTooLarge = errors.New("mmfile: file too large")

func checkSize(size, maxSize int64) error {
	if maxSize > 0 && size > maxSize {
		return fmt.Errorf("%w (%d bytes, limit %d)", ErrTooLarge, size, maxSize)
	}
	if size > int64(^uint(0)>>1) {
		return fmt.Errorf("%w to map (%d bytes)", ErrTooLarge, size)
	}
	return nil
}

func noop() error { return nil }
