package main

import (
	"errors"

	"github.com/go-qoi/qoigo"
)

// exitCodeFor maps the core package's error taxonomy to a process exit code:
// 1 for malformed input or usage errors, 2 for a truncated or unterminated
// stream, 3 for a resource error (buffer sizing or dimension limits), and 1
// for anything else cobra surfaces (bad flags, missing files).
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, qoi.ErrTruncated), errors.Is(err, qoi.ErrMissingEndMarker):
		return 2
	case errors.Is(err, qoi.ErrOutputBufferTooSmall), errors.Is(err, qoi.ErrDimensionsOverflow):
		return 3
	default:
		return 1
	}
}
