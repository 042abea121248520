package img2ascii

import "errors"

// Sentinel errors classifying pipeline failures. Every fallible step
// wraps one of these so callers can dispatch with errors.Is; the
// wrapped message is the complete user-facing diagnostic. All failures
// are terminal: the tool makes one conversion attempt per invocation.
var (
	ErrFileNotFound      = errors.New("file not found")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrDecodeFailed      = errors.New("decode failed")
	ErrIO                = errors.New("i/o error")
	ErrUnknownMode       = errors.New("unknown mode")
)
