package qoi

import "github.com/pkg/errors"

// Encode produces a complete QOI stream for pixels, allocating its own output
// buffer sized to the worst case. pixels must be exactly
// width*height*opts.Channels bytes, tightly packed, row-major.
func Encode(pixels []byte, width, height uint32, opts EncodeOptions) ([]byte, error) {
	// Dimensions and channels must be validated before WorstCaseSize is ever
	// called: an unvalidated width*height can overflow int and make panic,
	// or simply reserve gigabytes before the encoder would reject it anyway.
	if err := validateChannels(opts.Channels); err != nil {
		return nil, err
	}
	if err := validateColorspace(opts.Colorspace); err != nil {
		return nil, err
	}
	if _, err := validateDimensions(width, height, opts.ZeroDimensionPolicy); err != nil {
		return nil, err
	}

	out := make([]byte, 0, WorstCaseSize(width, height, opts.Channels))
	n, err := encodeInto(pixels, width, height, opts, out[:cap(out)])
	if err != nil {
		return nil, err
	}
	return out[:cap(out)][:n], nil
}

// EncodeInto writes a complete QOI stream into out, a caller-owned buffer,
// and returns the number of bytes written. out must be at least
// WorstCaseSize(width, height, opts.Channels) bytes.
func EncodeInto(pixels []byte, width, height uint32, opts EncodeOptions, out []byte) (int, error) {
	need := WorstCaseSize(width, height, opts.Channels)
	if len(out) < need {
		return 0, errors.Wrapf(ErrOutputBufferTooSmall, "need %d bytes, got %d", need, len(out))
	}
	return encodeInto(pixels, width, height, opts, out)
}

func encodeInto(pixels []byte, width, height uint32, opts EncodeOptions, out []byte) (int, error) {
	if err := validateChannels(opts.Channels); err != nil {
		return 0, err
	}
	if err := validateColorspace(opts.Colorspace); err != nil {
		return 0, err
	}
	total, err := validateDimensions(width, height, opts.ZeroDimensionPolicy)
	if err != nil {
		return 0, err
	}
	wantLen := total * uint64(opts.Channels)
	if uint64(len(pixels)) != wantLen {
		return 0, errors.Errorf("qoi: pixel buffer must be %d bytes for %dx%d at %d channels, got %d", wantLen, width, height, opts.Channels, len(pixels))
	}

	buf := out[:0]
	buf = appendHeader(buf, Header{Width: width, Height: height, Channels: opts.Channels, Colorspace: opts.Colorspace})

	cs := newCodecState()
	for i := uint64(0); i < total; i++ {
		off := i * uint64(opts.Channels)
		px := pixelFromBytes(pixels[off:off+uint64(opts.Channels)], opts.Channels)
		buf = append(buf, cs.encodePixel(px)...)
	}
	buf = append(buf, cs.flushRun()...)
	buf = append(buf, endMarker[:]...)

	log.Debug().Int("bytes", len(buf)).Uint64("pixels", total).Msg("encode complete")
	return len(buf), nil
}
