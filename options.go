package qoi

import "github.com/pkg/errors"

// MaxPixels bounds width*height so the codec stays within an implementation
// limit sufficient for 400-megapixel images, per the wire format's dimension
// boundary rule.
const MaxPixels = 400_000_000

// ZeroDimensionPolicy resolves the format's open question on zero-width or
// zero-height images. The zero value rejects them, matching the documented
// default, and both Encode and Decode honour the same policy so behaviour
// stays consistent in both directions.
type ZeroDimensionPolicy int

const (
	RejectZeroDimensions ZeroDimensionPolicy = iota
	AllowZeroDimensions
)

// EncodeOptions configures the one-shot and streaming encoders.
type EncodeOptions struct {
	Channels            uint8
	Colorspace          uint8
	ZeroDimensionPolicy ZeroDimensionPolicy
}

// DecodeOptions configures the one-shot and streaming decoders. Channels and
// Colorspace are read from the stream's header, not supplied by the caller.
type DecodeOptions struct {
	ZeroDimensionPolicy ZeroDimensionPolicy
}

func validateDimensions(width, height uint32, policy ZeroDimensionPolicy) (uint64, error) {
	if (width == 0 || height == 0) && policy == RejectZeroDimensions {
		return 0, errors.Wrapf(ErrZeroDimensions, "width=%d height=%d", width, height)
	}
	total := uint64(width) * uint64(height)
	if total > MaxPixels {
		return 0, errors.Wrapf(ErrDimensionsOverflow, "width=%d height=%d exceeds %d pixels", width, height, MaxPixels)
	}
	return total, nil
}

func validateChannels(channels uint8) error {
	if channels != 3 && channels != 4 {
		return errors.Wrapf(ErrMalformedHeader, "channels must be 3 or 4, got %d", channels)
	}
	return nil
}

func validateColorspace(cs uint8) error {
	if cs != ColorspaceSRGB && cs != ColorspaceLinear {
		return errors.Wrapf(ErrMalformedHeader, "colorspace must be 0 or 1, got %d", cs)
	}
	return nil
}

// WorstCaseSize returns the encoder's worst-case output size for an image of
// the given dimensions and channel count: 14 (header) + every pixel encoded
// as its longest chunk + 8 (end marker).
func WorstCaseSize(width, height uint32, channels uint8) int {
	pixels := uint64(width) * uint64(height)
	return headerSize + int(pixels)*(int(channels)+1) + len(endMarker)
}
