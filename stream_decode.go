package qoi

import (
	"bytes"

	"github.com/pkg/errors"
)

type decodePhase int

const (
	phaseHeader decodePhase = iota
	phaseChunks
	phaseMarker
	phaseDone
)

// StreamDecoder drives the codec with successive byte fragments rather than
// one contiguous buffer. Unconsumed trailing bytes that don't yet form a
// complete chunk are retained internally across calls, bounded at 5 bytes
// (the largest chunk, RGBA).
type StreamDecoder struct {
	opts DecodeOptions

	phase   decodePhase
	pending []byte

	header Header
	total  uint64
	read   uint64

	state codecState
}

// NewStreamDecoder prepares a new streaming decoder.
func NewStreamDecoder(opts DecodeOptions) *StreamDecoder {
	return &StreamDecoder{opts: opts, phase: phaseHeader}
}

// Header reports the parsed header and whether it has been seen yet.
func (d *StreamDecoder) Header() (Header, bool) {
	return d.header, d.phase > phaseHeader
}

// Push consumes bytes, returning any fully decoded pixels as a tightly
// packed buffer. Bytes that don't yet complete the header, a chunk, or the
// end marker are buffered internally for the next call.
func (d *StreamDecoder) Push(data []byte) ([]byte, error) {
	d.pending = append(d.pending, data...)
	var out []byte

	for {
		switch d.phase {
		case phaseHeader:
			if len(d.pending) < headerSize {
				return out, nil
			}
			hdr, total, err := decodeHeader(d.pending[:headerSize], d.opts)
			if err != nil {
				return out, err
			}
			d.header = hdr
			d.total = total
			d.pending = d.pending[headerSize:]
			d.state = newCodecState()
			d.phase = phaseChunks

		case phaseChunks:
			if d.read >= d.total {
				d.phase = phaseMarker
				continue
			}
			if len(d.pending) == 0 {
				return out, nil
			}
			need := chunkLen(d.pending[0])
			if len(d.pending) < need {
				return out, nil
			}
			pixels, consumed, err := decodeStep(d.pending[:need], &d.state, d.total-d.read)
			if err != nil {
				return out, err
			}
			for _, px := range pixels {
				out = appendPixelBytes(out, px, d.header.Channels)
			}
			d.read += uint64(len(pixels))
			d.pending = d.pending[consumed:]

		case phaseMarker:
			if len(d.pending) < len(endMarker) {
				return out, nil
			}
			if !bytes.Equal(d.pending[:len(endMarker)], endMarker[:]) {
				return out, errors.Wrap(ErrMissingEndMarker, "trailing bytes do not match the end marker")
			}
			d.pending = d.pending[len(endMarker):]
			d.phase = phaseDone

		case phaseDone:
			return out, nil
		}
	}
}

// Finish verifies that the total pixel count matched width*height and that
// the end marker was seen.
func (d *StreamDecoder) Finish() error {
	switch d.phase {
	case phaseHeader:
		return errors.Wrap(ErrTruncated, "stream ended before header was complete")
	case phaseChunks:
		return errors.Wrapf(ErrTruncated, "stream ended after %d of %d pixels", d.read, d.total)
	case phaseMarker:
		return errors.Wrap(ErrTruncated, "stream ended before the end marker was seen")
	default:
		return nil
	}
}
