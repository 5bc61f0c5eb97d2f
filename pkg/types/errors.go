package types

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat   ErrKind = iota // malformed signatures or type codes
	ErrKindCorrupt                 // structural corruption (bad lengths/CRCs)
	ErrKindNotFound                // missing chunk
	ErrKindLimit                   // input exceeds configured Limits
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindCorrupt:
		return "corrupt"
	case ErrKindNotFound:
		return "not found"
	case ErrKindLimit:
		return "limit"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error sentinel of the same kind and message, so wrapped
// copies produced by Wrap still satisfy errors.Is against the sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

// Wrap returns a copy of sentinel carrying cause.
func Wrap(sentinel *Error, cause error) *Error {
	return &Error{Kind: sentinel.Kind, Msg: sentinel.Msg, Err: cause}
}

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidTypeCode indicates a chunk type byte outside A-Z / a-z, or a
	// type code that is not exactly four bytes long.
	ErrInvalidTypeCode = &Error{Kind: ErrKindFormat, Msg: "invalid chunk type code"}
	// ErrInvalidText indicates a tEXt keyword or body that cannot be stored.
	ErrInvalidText = &Error{Kind: ErrKindFormat, Msg: "invalid text chunk"}
	// ErrNotPNG indicates the input lacks the eight-byte PNG signature.
	ErrNotPNG = &Error{Kind: ErrKindFormat, Msg: "not a PNG file (bad signature)"}
	// ErrCorrupt indicates non-recoverable structural inconsistency.
	ErrCorrupt = &Error{Kind: ErrKindCorrupt, Msg: "corrupt PNG structure"}
	// ErrNotFound indicates no chunk of the requested type exists.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "chunk not found"}
	// ErrLimitExceeded indicates the input is larger than Limits allow.
	ErrLimitExceeded = &Error{Kind: ErrKindLimit, Msg: "limit exceeded"}
)
