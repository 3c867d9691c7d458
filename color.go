package sr

import (
	"image/color"
	"strings"
)

// Color is a straight (non-premultiplied) 8-bit RGBA color, laid out in
// memory as R, G, B, A like image.NRGBA.
type Color struct {
	R, G, B, A uint8
}

// RGBA8 creates a color from 8-bit components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB8 creates an opaque color from 8-bit components.
func RGB8(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromFloat creates a color from components in [0, 1].
// Values outside the range are clamped.
func FromFloat(r, g, b, a float32) Color {
	return Color{R: unit8(r), G: unit8(g), B: unit8(b), A: unit8(a)}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	if sc, ok := c.(Color); ok {
		return sc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// RGBA implements color.Color. It returns alpha-premultiplied 16-bit
// components as the interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Malformed input, a bad length or a non-hex digit, yields
// opaque black.
func Hex(hex string) Color {
	hex = strings.TrimPrefix(hex, "#")

	var short bool
	switch len(hex) {
	case 3, 4:
		short = true
	case 6, 8:
	default:
		return Black
	}

	ch := [4]uint32{3: 255}
	n := len(hex)
	if !short {
		n /= 2
	}
	for i := range n {
		digits := hex[i : i+1]
		if !short {
			digits = hex[2*i : 2*i+2]
		}
		v, ok := parseHex(digits)
		if !ok {
			return Black
		}
		if short {
			v *= 17
		}
		ch[i] = v
	}
	return Color{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2]), A: uint8(ch[3])}
}

// parseHex reads s as a hexadecimal number. ok is false if s has a character
// outside [0-9a-fA-F].
func parseHex(s string) (v uint32, ok bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}

// Mul modulates c by o channel by channel, rounding c*o/255.
// Multiplying by White leaves c unchanged.
func (c Color) Mul(o Color) Color {
	return Color{
		R: mul8(c.R, o.R),
		G: mul8(c.G, o.G),
		B: mul8(c.B, o.B),
		A: mul8(c.A, o.A),
	}
}

// Scale multiplies all four channels by f, clamping to [0, 255].
func (c Color) Scale(f float32) Color {
	return Color{
		R: unit8(float32(c.R) / 255 * f),
		G: unit8(float32(c.G) / 255 * f),
		B: unit8(float32(c.B) / 255 * f),
		A: unit8(float32(c.A) / 255 * f),
	}
}

// WithAlpha returns c with alpha set to a in [0, 1].
func (c Color) WithAlpha(a float32) Color {
	c.A = unit8(a)
	return c
}

// WithAlpha8 returns c with alpha set to a.
func (c Color) WithAlpha8(a uint8) Color {
	c.A = a
	return c
}

func mul8(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}

// unit8 maps [0, 1] to [0, 255] with rounding. NaN maps to 0.
func unit8(f float32) uint8 {
	switch {
	case f >= 1:
		return 255
	case f > 0:
		return uint8(f*255 + 0.5)
	default:
		return 0
	}
}

// Common colors
var (
	Black       = RGB8(0, 0, 0)
	White       = RGB8(255, 255, 255)
	Red         = RGB8(255, 0, 0)
	Green       = RGB8(0, 255, 0)
	Blue        = RGB8(0, 0, 255)
	Yellow      = RGB8(255, 255, 0)
	Cyan        = RGB8(0, 255, 255)
	Magenta     = RGB8(255, 0, 255)
	Gray        = RGB8(128, 128, 128)
	Transparent = RGBA8(0, 0, 0, 0)
)
