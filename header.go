package qoi

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// magic is the fixed 4-byte QOI identifier.
const magic = "qoif"

const headerSize = 14

// endMarker is the fixed 8-byte trailer every stream must end with.
var endMarker = [8]byte{0, 0, 0, 0, 0, 0, 0, 1}

// Colorspace values. Purely informational; the codec never transforms pixel
// values based on colorspace.
const (
	ColorspaceSRGB   uint8 = 0
	ColorspaceLinear uint8 = 1
)

// Header is the fixed 14-byte QOI header.
type Header struct {
	Width      uint32
	Height     uint32
	Channels   uint8
	Colorspace uint8
}

// appendHeader writes the 14-byte header for h onto buf and returns the
// extended slice.
func appendHeader(buf []byte, h Header) []byte {
	buf = append(buf, magic...)
	buf = binary.BigEndian.AppendUint32(buf, h.Width)
	buf = binary.BigEndian.AppendUint32(buf, h.Height)
	buf = append(buf, h.Channels, h.Colorspace)
	return buf
}

// ParseHeader validates and decodes the first 14 bytes of data without
// touching the chunk stream that follows. It exists for callers that only
// need the image's dimensions and channel layout, such as the CLI's info
// subcommand.
func ParseHeader(data []byte) (Header, error) {
	return parseHeader(data)
}

// parseHeader validates and decodes the first 14 bytes of data.
func parseHeader(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, errors.Wrapf(ErrTruncated, "header requires %d bytes, got %d", headerSize, len(data))
	}
	if string(data[0:4]) != magic {
		return Header{}, errors.Wrapf(ErrMalformedHeader, "bad magic bytes %q", data[0:4])
	}
	h := Header{
		Width:      binary.BigEndian.Uint32(data[4:8]),
		Height:     binary.BigEndian.Uint32(data[8:12]),
		Channels:   data[12],
		Colorspace: data[13],
	}
	if h.Channels != 3 && h.Channels != 4 {
		return Header{}, errors.Wrapf(ErrMalformedHeader, "channels must be 3 or 4, got %d", h.Channels)
	}
	if h.Colorspace != ColorspaceSRGB && h.Colorspace != ColorspaceLinear {
		return Header{}, errors.Wrapf(ErrMalformedHeader, "colorspace must be 0 or 1, got %d", h.Colorspace)
	}
	return h, nil
}
