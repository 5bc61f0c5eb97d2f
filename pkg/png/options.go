package png

import "github.com/joshuapare/pngkit/pkg/types"

// Limits bounds the input accepted by readers.
// This is an alias to types.Limits for convenience.
type Limits = types.Limits

// DefaultLimits returns limits suitable for ordinary images.
func DefaultLimits() Limits { return types.DefaultLimits() }

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() Limits { return types.StrictLimits() }

// RelaxedLimits returns permissive limits for very large images.
func RelaxedLimits() Limits { return types.RelaxedLimits() }

// ReadOptions controls read-only operations.
type ReadOptions struct {
	// Limits bounds the input. If nil, DefaultLimits() is used.
	Limits *Limits
}

// WriteOptions controls operations that rewrite a file.
type WriteOptions struct {
	// Limits bounds the input. If nil, DefaultLimits() is used.
	Limits *Limits

	// Output is the destination path. If empty, the input file is
	// replaced in place.
	Output string

	// CreateBackup copies the original file to <path>.bak before it is
	// replaced. Ignored when Output names a different file.
	CreateBackup bool
}

func (o *ReadOptions) limits() Limits {
	if o == nil || o.Limits == nil {
		return DefaultLimits()
	}
	return *o.Limits
}

func (o *WriteOptions) limits() Limits {
	if o == nil || o.Limits == nil {
		return DefaultLimits()
	}
	return *o.Limits
}

func (o *WriteOptions) output(path string) string {
	if o == nil || o.Output == "" {
		return path
	}
	return o.Output
}

func (o *WriteOptions) backup() bool {
	return o != nil && o.CreateBackup
}
