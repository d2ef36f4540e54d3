package qoi

import "github.com/pkg/errors"

// Chunk opcodes. RGB and RGBA are recognised by exact byte value even though
// their top two bits read as 0b11, the same as RUN's tag — the decoder must
// check for 0xFE/0xFF before falling through to the two-bit dispatch.
const (
	tagRGB  byte = 0b11111110
	tagRGBA byte = 0b11111111

	tagMask byte = 0b11000000
	opIndex byte = 0b00000000
	opDiff  byte = 0b01000000
	opLuma  byte = 0b10000000
	opRun   byte = 0b11000000
)

// maxRun is the largest number of pixels a single RUN chunk can represent.
const maxRun = 62

// codecState is the per-stream state machine shared by the one-shot and
// streaming encoder/decoder: the running index, the previous pixel, and an
// in-progress run length. It carries no I/O concerns of its own.
type codecState struct {
	index runningIndex
	prev  Pixel
	run   int
}

func newCodecState() codecState {
	return codecState{prev: opaqueBlack}
}

func diffFits(d uint8) (uint8, bool) {
	biased := d + 2
	return biased, biased <= 3
}

func lumaGreenFits(d uint8) (uint8, bool) {
	biased := d + 32
	return biased, biased <= 63
}

func lumaRBFits(d uint8) (uint8, bool) {
	biased := d + 8
	return biased, biased <= 15
}

// flushRun emits the pending RUN chunk, if any, and clears it. Called at
// end-of-image (one-shot) or Finish (streaming) so a run straddling the
// boundary is never lost.
func (cs *codecState) flushRun() []byte {
	if cs.run == 0 {
		return nil
	}
	b := opRun | byte(cs.run-1)
	traceChunk("run", cs.prev)
	cs.run = 0
	return []byte{b}
}

// encodePixel advances the state machine by exactly one pixel and returns the
// bytes emitted, which may be empty when the pixel only extends an
// in-progress run. Selection order follows the format's greedy policy: run
// extension first, then index, then diff, then luma, then full RGB(A).
func (cs *codecState) encodePixel(cur Pixel) []byte {
	var out []byte

	if cur.Equals(cs.prev) {
		cs.run++
		if cs.run == maxRun {
			out = append(out, opRun|byte(cs.run-1))
			traceChunk("run", cs.prev)
			cs.run = 0
		}
		return out
	}

	if cs.run > 0 {
		out = append(out, opRun|byte(cs.run-1))
		traceChunk("run", cs.prev)
		cs.run = 0
	}

	hash := cur.Hash()
	switch {
	case cs.index.get(hash).Equals(cur):
		out = append(out, opIndex|hash)
		traceChunk("index", cur)
	case cur.A == cs.prev.A:
		dr := cur.R - cs.prev.R
		dg := cur.G - cs.prev.G
		db := cur.B - cs.prev.B
		rb, rok := diffFits(dr)
		gb, gok := diffFits(dg)
		bb, bok := diffFits(db)
		gLuma, gLumaOk := lumaGreenFits(dg)
		rdLuma, rdOk := lumaRBFits(dr - dg)
		bdLuma, bdOk := lumaRBFits(db - dg)

		switch {
		case rok && gok && bok:
			out = append(out, opDiff|rb<<4|gb<<2|bb)
			traceChunk("diff", cur)
		case gLumaOk && rdOk && bdOk:
			out = append(out, opLuma|gLuma, rdLuma<<4|bdLuma)
			traceChunk("luma", cur)
		default:
			out = append(out, tagRGB, cur.R, cur.G, cur.B)
			traceChunk("rgb", cur)
		}
	default:
		out = append(out, tagRGBA, cur.R, cur.G, cur.B, cur.A)
		traceChunk("rgba", cur)
	}

	cs.index.set(hash, cur)
	cs.prev = cur
	return out
}

// chunkLen returns how many bytes the chunk starting with tag occupies.
func chunkLen(tag byte) int {
	switch tag {
	case tagRGB:
		return 4
	case tagRGBA:
		return 5
	}
	if tag&tagMask == opLuma {
		return 2
	}
	return 1
}

// decodeStep decodes exactly one chunk from the front of buf, which must
// already hold at least chunkLen(buf[0]) bytes. remaining caps how many
// pixels a RUN chunk may produce, since the decoder must stop at exactly
// width*height pixels even if a run chunk's encoded length would overrun it.
func decodeStep(buf []byte, cs *codecState, remaining uint64) (pixels []Pixel, consumed int, err error) {
	tag := buf[0]

	switch {
	case tag == tagRGBA:
		if len(buf) < 5 {
			return nil, 0, errors.Wrap(ErrTruncated, "rgba chunk needs 5 bytes")
		}
		px := PixelRGBA(buf[1], buf[2], buf[3], buf[4])
		cs.index.set(px.Hash(), px)
		cs.prev = px
		traceChunk("rgba", px)
		return []Pixel{px}, 5, nil

	case tag == tagRGB:
		if len(buf) < 4 {
			return nil, 0, errors.Wrap(ErrTruncated, "rgb chunk needs 4 bytes")
		}
		px := PixelRGB(buf[1], buf[2], buf[3])
		px.A = cs.prev.A
		cs.index.set(px.Hash(), px)
		cs.prev = px
		traceChunk("rgb", px)
		return []Pixel{px}, 4, nil

	case tag&tagMask == opIndex:
		px := cs.index.get(tag & 0x3F)
		cs.prev = px
		traceChunk("index", px)
		return []Pixel{px}, 1, nil

	case tag&tagMask == opDiff:
		px := Pixel{
			R: cs.prev.R + ((tag>>4)&0x03 - 2),
			G: cs.prev.G + ((tag>>2)&0x03 - 2),
			B: cs.prev.B + (tag&0x03 - 2),
			A: cs.prev.A,
		}
		cs.index.set(px.Hash(), px)
		cs.prev = px
		traceChunk("diff", px)
		return []Pixel{px}, 1, nil

	case tag&tagMask == opLuma:
		if len(buf) < 2 {
			return nil, 0, errors.Wrap(ErrTruncated, "luma chunk needs 2 bytes")
		}
		dg := (tag & 0x3F) - 32
		rb := buf[1]
		drdg := (rb>>4)&0x0F - 8
		dbdg := rb&0x0F - 8
		px := Pixel{
			R: cs.prev.R + dg + drdg,
			G: cs.prev.G + dg,
			B: cs.prev.B + dg + dbdg,
			A: cs.prev.A,
		}
		cs.index.set(px.Hash(), px)
		cs.prev = px
		traceChunk("luma", px)
		return []Pixel{px}, 2, nil

	default: // opRun
		runLen := uint64(tag&0x3F) + 1
		if runLen > remaining {
			warnRunClipped(int(runLen))
			runLen = remaining
		}
		pixels = make([]Pixel, runLen)
		for i := range pixels {
			pixels[i] = cs.prev
		}
		traceChunk("run", cs.prev)
		return pixels, 1, nil
	}
}
