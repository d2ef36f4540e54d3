package qoi

// Pixel is a 4-channel colour value. RGB-only images carry A=255 implicitly;
// the alpha channel still participates in hashing and equality, per the wire
// format's treatment of alpha as always-present internally.
type Pixel struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// opaqueBlack is the initial "previous pixel" state at the start of every
// stream: (0,0,0,255).
var opaqueBlack = Pixel{R: 0, G: 0, B: 0, A: 255}

// PixelRGB builds a Pixel from a 3-byte RGB triple, fixing alpha at 255.
func PixelRGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: 255}
}

// PixelRGBA builds a Pixel from a 4-byte RGBA quadruple.
func PixelRGBA(r, g, b, a uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: a}
}

// Equals reports whether two pixels are identical across all four channels.
func (p Pixel) Equals(other Pixel) bool {
	return p.R == other.R && p.G == other.G && p.B == other.B && p.A == other.A
}

// Hash computes the running-index slot for p: (R*3 + G*5 + B*7 + A*11) mod 64.
// The arithmetic runs in at least 16-bit width before reduction so the sum
// never wraps before the modulo is applied; this is a contract of the wire
// format, not an implementation detail.
func (p Pixel) Hash() uint8 {
	sum := uint16(p.R)*3 + uint16(p.G)*5 + uint16(p.B)*7 + uint16(p.A)*11
	return uint8(sum % 64)
}

func pixelFromBytes(b []byte, channels uint8) Pixel {
	if channels == 4 {
		return PixelRGBA(b[0], b[1], b[2], b[3])
	}
	return PixelRGB(b[0], b[1], b[2])
}

func appendPixelBytes(buf []byte, p Pixel, channels uint8) []byte {
	buf = append(buf, p.R, p.G, p.B)
	if channels == 4 {
		buf = append(buf, p.A)
	}
	return buf
}
