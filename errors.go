package qoi

import "github.com/pkg/errors"

// The five error kinds from the wire-format error taxonomy. Call sites wrap
// these with errors.Wrapf to attach context (offset, pixel index, buffer
// size); errors.Is still matches the sentinel through the wrap because
// github.com/pkg/errors preserves the cause chain.
var (
	// ErrMalformedHeader covers magic mismatch and out-of-range channels or
	// colorspace bytes.
	ErrMalformedHeader = errors.New("qoi: malformed header")

	// ErrDimensionsOverflow is returned when width*height exceeds the
	// implementation's maximum pixel count.
	ErrDimensionsOverflow = errors.New("qoi: dimensions overflow")

	// ErrOutputBufferTooSmall is returned when a caller-supplied output
	// buffer is smaller than the encoder's worst-case bound.
	ErrOutputBufferTooSmall = errors.New("qoi: output buffer too small")

	// ErrTruncated is returned when input bytes end before width*height
	// pixels were reconstructed, or before the end marker is reached.
	ErrTruncated = errors.New("qoi: truncated stream")

	// ErrMissingEndMarker is returned when all pixels decoded successfully
	// but the trailing 8 bytes do not match the prescribed end marker.
	ErrMissingEndMarker = errors.New("qoi: missing end marker")

	// ErrZeroDimensions is returned when width or height is zero and the
	// active ZeroDimensionPolicy is RejectZeroDimensions. This resolves the
	// format's open question about zero-dimension images: reject by default,
	// consistently on both encode and decode.
	ErrZeroDimensions = errors.New("qoi: zero width or height")
)
