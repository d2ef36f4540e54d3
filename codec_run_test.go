package qoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(n int, r, g, b uint8) []byte {
	out := make([]byte, 0, n*3)
	for i := 0; i < n; i++ {
		out = append(out, r, g, b)
	}
	return out
}

// A run of exactly 62 identical pixels (after the first pixel, a LUMA chunk
// against the initial previous pixel) must close at the maximum encodable run
// length in a single RUN chunk.
func TestRunLengthExactlyMax(t *testing.T) {
	pixels := solidImage(63, 5, 5, 5) // 1 luma + 62-run
	out, err := Encode(pixels, 63, 1, EncodeOptions{Channels: 3})
	require.NoError(t, err)

	body := out[headerSize : len(out)-len(endMarker)]
	require.Len(t, body, 2+1) // LUMA chunk + one RUN chunk
	assert.Equal(t, opLuma|(5+32), body[0])
	assert.Equal(t, opRun|61, body[2]) // biased 61 => run length 62

	_, decoded, err := Decode(out, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, pixels, decoded)
}

// A run of 63 repeats must split into a 62-run followed by a 1-run, since a
// single RUN chunk cannot encode more than 62 pixels.
func TestRunLengthSplitsAtSixtyThree(t *testing.T) {
	pixels := solidImage(64, 7, 7, 7) // 1 luma + 63-run
	out, err := Encode(pixels, 64, 1, EncodeOptions{Channels: 3})
	require.NoError(t, err)

	body := out[headerSize : len(out)-len(endMarker)]
	require.Len(t, body, 2+1+1)
	assert.Equal(t, opRun|61, body[2])
	assert.Equal(t, opRun|0, body[3])

	_, decoded, err := Decode(out, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, pixels, decoded)
}

// A run straddling end-of-image must still be flushed before the end marker.
func TestRunSpanningEndOfImage(t *testing.T) {
	pixels := solidImage(10, 1, 2, 3)
	out, err := Encode(pixels, 10, 1, EncodeOptions{Channels: 3})
	require.NoError(t, err)

	body := out[headerSize : len(out)-len(endMarker)]
	require.Len(t, body, 2+1)
	assert.Equal(t, opRun|8, body[2]) // 1 luma + 9-run = 10 pixels

	tail := out[len(out)-len(endMarker):]
	assert.Equal(t, endMarker[:], tail)
}

func TestRunLengthOfOne(t *testing.T) {
	pixels := append(solidImage(1, 1, 1, 1), solidImage(1, 1, 1, 1)...)
	out, err := Encode(pixels, 2, 1, EncodeOptions{Channels: 3})
	require.NoError(t, err)

	body := out[headerSize : len(out)-len(endMarker)]
	assert.Equal(t, []byte{opDiff | 3<<4 | 3<<2 | 3, opRun | 0}, body) // DIFF +1,+1,+1 then a 1-run
}
