package qoi

import "github.com/pkg/errors"

// StreamEncoder drives the codec with successive pixel fragments rather than
// one contiguous buffer. Its output, concatenated across calls, is byte-exact
// with the one-shot Encode for any partitioning of the same pixel stream.
type StreamEncoder struct {
	width, height uint32
	opts          EncodeOptions
	total         uint64

	state    codecState
	leftover []byte // partial pixel bytes carried between Push calls
	written  uint64
	began    bool
	finished bool
}

// NewStreamEncoder validates dimensions and channel/colorspace options and
// prepares a new streaming encoder.
func NewStreamEncoder(width, height uint32, opts EncodeOptions) (*StreamEncoder, error) {
	if err := validateChannels(opts.Channels); err != nil {
		return nil, err
	}
	if err := validateColorspace(opts.Colorspace); err != nil {
		return nil, err
	}
	total, err := validateDimensions(width, height, opts.ZeroDimensionPolicy)
	if err != nil {
		return nil, err
	}
	return &StreamEncoder{
		width:  width,
		height: height,
		opts:   opts,
		total:  total,
		state:  newCodecState(),
	}, nil
}

// Begin emits the 14-byte header. It is a no-op on repeat calls.
func (e *StreamEncoder) Begin() []byte {
	if e.began {
		return nil
	}
	e.began = true
	return appendHeader(nil, Header{Width: e.width, Height: e.height, Channels: e.opts.Channels, Colorspace: e.opts.Colorspace})
}

// Push consumes as many whole pixels as data (plus any carried-over partial
// pixel from a prior call) contains, and returns the chunk bytes produced.
// Bytes left over that don't complete a pixel are retained for the next call.
func (e *StreamEncoder) Push(data []byte) ([]byte, error) {
	if e.finished {
		return nil, errors.New("qoi: Push called after Finish")
	}
	buf := append(e.leftover, data...)
	channels := int(e.opts.Channels)
	usable := len(buf) / channels * channels

	var out []byte
	for off := 0; off < usable; off += channels {
		if e.written >= e.total {
			break
		}
		px := pixelFromBytes(buf[off:off+channels], e.opts.Channels)
		out = append(out, e.state.encodePixel(px)...)
		e.written++
	}

	e.leftover = append(e.leftover[:0], buf[usable:]...)
	return out, nil
}

// Finish flushes any pending run and appends the end marker. No further
// input may be pushed afterward.
func (e *StreamEncoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errors.New("qoi: Finish called twice")
	}
	if e.written != e.total {
		return nil, errors.Wrapf(ErrTruncated, "pushed %d of %d declared pixels before Finish", e.written, e.total)
	}
	e.finished = true
	out := e.state.flushRun()
	out = append(out, endMarker[:]...)
	return out, nil
}
