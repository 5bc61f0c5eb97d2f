// Package types defines the small value types shared by every layer of
// pngkit: the four-byte chunk type code, typed errors, and the limits used
// when validating a PNG container.
//
// Design goals:
//   - Chunk type codes are fixed binary values, never character strings.
//     Nothing in this package maps them through a text encoding.
//   - Values are small and comparable; use == for equality.
//   - Paranoid input checks; never panic on malformed input.
//   - Typed errors with stable categories (format/corrupt/notfound/limit).
//
// This package has no dependencies beyond the standard library.
package types
