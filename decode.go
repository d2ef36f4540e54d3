package qoi

import "github.com/pkg/errors"

// Decode parses a complete QOI stream and returns its header alongside a
// freshly allocated, tightly packed pixel buffer.
func Decode(data []byte, opts DecodeOptions) (Header, []byte, error) {
	hdr, total, err := decodeHeader(data, opts)
	if err != nil {
		return Header{}, nil, err
	}
	out := make([]byte, total*uint64(hdr.Channels))
	n, err := decodeBody(data[headerSize:], hdr, total, out)
	if err != nil {
		return Header{}, nil, err
	}
	return hdr, out[:n], nil
}

// DecodeInto parses a complete QOI stream into a caller-owned pixel buffer
// and returns the header and the number of pixel bytes written.
func DecodeInto(data []byte, opts DecodeOptions, out []byte) (Header, int, error) {
	hdr, total, err := decodeHeader(data, opts)
	if err != nil {
		return Header{}, 0, err
	}
	need := total * uint64(hdr.Channels)
	if uint64(len(out)) < need {
		return Header{}, 0, errors.Wrapf(ErrOutputBufferTooSmall, "need %d bytes, got %d", need, len(out))
	}
	n, err := decodeBody(data[headerSize:], hdr, total, out)
	if err != nil {
		return Header{}, 0, err
	}
	return hdr, n, nil
}

func decodeHeader(data []byte, opts DecodeOptions) (Header, uint64, error) {
	hdr, err := parseHeader(data)
	if err != nil {
		return Header{}, 0, err
	}
	total, err := validateDimensions(hdr.Width, hdr.Height, opts.ZeroDimensionPolicy)
	if err != nil {
		return Header{}, 0, err
	}
	return hdr, total, nil
}

// decodeBody walks the chunk stream following the header (body is
// data[headerSize:]) and writes decoded pixels into out. It returns the
// number of pixel bytes written.
func decodeBody(body []byte, hdr Header, total uint64, out []byte) (int, error) {
	cs := newCodecState()
	var pixelsRead uint64
	pos := 0
	n := 0

	for pixelsRead < total {
		if pos >= len(body) {
			return 0, errors.Wrapf(ErrTruncated, "stream ended after %d of %d pixels", pixelsRead, total)
		}
		need := chunkLen(body[pos])
		if pos+need > len(body) {
			return 0, errors.Wrapf(ErrTruncated, "chunk at offset %d needs %d bytes, only %d remain", pos, need, len(body)-pos)
		}
		pixels, consumed, err := decodeStep(body[pos:pos+need], &cs, total-pixelsRead)
		if err != nil {
			return 0, err
		}
		for _, px := range pixels {
			n = appendPixelInto(out, n, px, hdr.Channels)
		}
		pixelsRead += uint64(len(pixels))
		pos += consumed
	}

	if pos+len(endMarker) > len(body) {
		return 0, errors.Wrap(ErrTruncated, "stream too short for end marker")
	}
	for i, b := range endMarker {
		if body[pos+i] != b {
			return 0, errors.Wrap(ErrMissingEndMarker, "trailing bytes do not match the end marker")
		}
	}

	log.Debug().Uint64("pixels", pixelsRead).Msg("decode complete")
	return n, nil
}

func appendPixelInto(out []byte, offset int, p Pixel, channels uint8) int {
	out[offset] = p.R
	out[offset+1] = p.G
	out[offset+2] = p.B
	if channels == 4 {
		out[offset+3] = p.A
	}
	return offset + int(channels)
}
