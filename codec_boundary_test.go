package qoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRejectsZeroDimensionsByDefault(t *testing.T) {
	_, err := Encode(nil, 0, 5, EncodeOptions{Channels: 3})
	assert.ErrorIs(t, err, ErrZeroDimensions)
}

func TestEncodeAllowsZeroDimensionsWhenRequested(t *testing.T) {
	out, err := Encode(nil, 0, 5, EncodeOptions{Channels: 3, ZeroDimensionPolicy: AllowZeroDimensions})
	require.NoError(t, err)
	assert.Equal(t, headerSize+len(endMarker), len(out))
}

func TestDecodeHonoursZeroDimensionPolicy(t *testing.T) {
	out, err := Encode(nil, 0, 0, EncodeOptions{Channels: 3, ZeroDimensionPolicy: AllowZeroDimensions})
	require.NoError(t, err)

	_, _, err = Decode(out, DecodeOptions{})
	assert.ErrorIs(t, err, ErrZeroDimensions)

	hdr, pixels, err := Decode(out, DecodeOptions{ZeroDimensionPolicy: AllowZeroDimensions})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), hdr.Width)
	assert.Empty(t, pixels)
}

func TestEncodeRejectsDimensionsOverflow(t *testing.T) {
	_, err := Encode(nil, 30000, 30000, EncodeOptions{Channels: 3, ZeroDimensionPolicy: AllowZeroDimensions})
	assert.ErrorIs(t, err, ErrDimensionsOverflow)
}

func TestEncodeIntoRejectsUndersizedBuffer(t *testing.T) {
	pixels := solidImage(4, 1, 2, 3)
	out := make([]byte, 3)
	_, err := EncodeInto(pixels, 4, 1, EncodeOptions{Channels: 3}, out)
	assert.ErrorIs(t, err, ErrOutputBufferTooSmall)
}

func TestDecodeIntoRejectsUndersizedBuffer(t *testing.T) {
	pixels := solidImage(4, 1, 2, 3)
	encoded, err := Encode(pixels, 4, 1, EncodeOptions{Channels: 3})
	require.NoError(t, err)

	out := make([]byte, 2)
	_, _, err = DecodeInto(encoded, DecodeOptions{}, out)
	assert.ErrorIs(t, err, ErrOutputBufferTooSmall)
}

func TestDecodeRejectsTruncatedBody(t *testing.T) {
	pixels := solidImage(4, 1, 2, 3)
	encoded, err := Encode(pixels, 4, 1, EncodeOptions{Channels: 3})
	require.NoError(t, err)

	_, _, err = Decode(encoded[:len(encoded)-len(endMarker)-1], DecodeOptions{})
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeRejectsCorruptEndMarker(t *testing.T) {
	pixels := solidImage(4, 1, 2, 3)
	encoded, err := Encode(pixels, 4, 1, EncodeOptions{Channels: 3})
	require.NoError(t, err)

	encoded[len(encoded)-1] = 0xFF
	_, _, err = Decode(encoded, DecodeOptions{})
	assert.ErrorIs(t, err, ErrMissingEndMarker)
}

func TestEncodeRejectsWrongPixelBufferLength(t *testing.T) {
	_, err := Encode(make([]byte, 5), 4, 1, EncodeOptions{Channels: 3})
	assert.Error(t, err)
}

// Round trip across a larger, varied buffer exercising every chunk kind
// repeatedly, confirming Decode(Encode(p)) == p regardless of chunk mix.
func TestRoundTripVariedImage(t *testing.T) {
	width, height, pixels := varietyImage(4)
	// Repeat the pattern a few times to stress index reuse across a longer
	// stream and make sure state isn't corrupted by earlier chunks.
	var big []byte
	for i := 0; i < 5; i++ {
		big = append(big, pixels...)
	}
	bigWidth := width * 5

	encoded, err := Encode(big, bigWidth, height, EncodeOptions{Channels: 4})
	require.NoError(t, err)

	hdr, decoded, err := Decode(encoded, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, bigWidth, hdr.Width)
	assert.Equal(t, big, decoded)
}

func TestWorstCaseSizeIsSufficientForAdversarialInput(t *testing.T) {
	// Alternating pixels that never repeat, hit the index, or form short
	// diffs/luma deltas force every pixel into a literal RGBA chunk, the
	// worst case the bound must cover.
	const n = 50
	pixels := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		pixels = append(pixels, byte(i*37), byte(i*59+1), byte(i*97+2), byte(i*131+3))
	}
	out, err := Encode(pixels, n, 1, EncodeOptions{Channels: 4})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), WorstCaseSize(n, 1, 4))
}
