package swr

import (
	"image/color"
	"math"

	"github.com/gogpu/swr/internal/blend"
)

// Color is an unpremultiplied color with components nominally in [0, 1].
// Intermediate results (gradient math, interpolation) may leave that range;
// conversion to a Pixel pins every component.
type Color struct {
	A, R, G, B float64
}

// ARGB creates a color from its components.
func ARGB(a, r, g, b float64) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{A: 1, R: r, G: g, B: b}
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	fa := float64(a)
	return Color{
		A: fa / 0xFFFF,
		R: float64(r) / fa,
		G: float64(g) / fa,
		B: float64(b) / fa,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'. Anything else yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}

	return Color{
		A: float64(a) / 255,
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// HSL creates an opaque color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(r+m, g+m, b+m)
}

// Add returns the component-wise sum.
func (c Color) Add(o Color) Color {
	return Color{A: c.A + o.A, R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Sub returns the component-wise difference.
func (c Color) Sub(o Color) Color {
	return Color{A: c.A - o.A, R: c.R - o.R, G: c.G - o.G, B: c.B - o.B}
}

// Scale multiplies every component by s.
func (c Color) Scale(s float64) Color {
	return Color{A: c.A * s, R: c.R * s, G: c.G * s, B: c.B * s}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return c.Add(other.Sub(c).Scale(t))
}

// WithAlpha returns c with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Pin clamps every component to [0, 1].
func (c Color) Pin() Color {
	return Color{A: pin(c.A), R: pin(c.R), G: pin(c.G), B: pin(c.B)}
}

// Pixel converts c to a premultiplied pixel. Components are pinned to
// [0, 1] first, so the result is always valid.
func (c Color) Pixel() Pixel {
	c = c.Pin()
	return PackARGB(
		unitToByte(c.A),
		unitToByte(c.R*c.A),
		unitToByte(c.G*c.A),
		unitToByte(c.B*c.A),
	)
}

// IsOpaque reports whether alpha is at least 1.
func (c Color) IsOpaque() bool {
	return c.A >= 1
}

func pin(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}

// unitToByte maps [0, 1] onto [0, 255] rounding to nearest.
func unitToByte(x float64) uint8 {
	return uint8(math.Floor(x*255 + 0.5))
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = Color{}
)

// Pixel is a premultiplied ARGB pixel packed as 0xAARRGGBB.
// Every color channel is at most the alpha channel.
type Pixel uint32

// PackARGB assembles a pixel. The channels must already be premultiplied.
func PackARGB(a, r, g, b uint8) Pixel {
	return Pixel(blend.Pack(uint32(a), uint32(r), uint32(g), uint32(b)))
}

// A returns the alpha channel.
func (p Pixel) A() uint8 { return uint8(p >> 24) }

// R returns the premultiplied red channel.
func (p Pixel) R() uint8 { return uint8(p >> 16) }

// G returns the premultiplied green channel.
func (p Pixel) G() uint8 { return uint8(p >> 8) }

// B returns the premultiplied blue channel.
func (p Pixel) B() uint8 { return uint8(p) }

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return p.premul().RGBA()
}

func (p Pixel) premul() color.RGBA {
	return color.RGBA{R: p.R(), G: p.G(), B: p.B(), A: p.A()}
}

// pixelFromRGBA packs an already premultiplied color.RGBA.
func pixelFromRGBA(c color.RGBA) Pixel {
	return PackARGB(c.A, min(c.R, c.A), min(c.G, c.A), min(c.B, c.A))
}
