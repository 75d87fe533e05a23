package swr

import (
	"math"

	"github.com/gogpu/swr/internal/blend"
)

// Shader produces the source pixels of a draw.
//
// A canvas calls SetContext once per draw with its current transform, then
// ShadeRow for every covered span. Pixel i of a row samples the device
// pixel center (x+i+0.5, y+0.5).
//
// Shaders hold per-draw state and are not safe for concurrent use.
type Shader interface {
	// IsOpaque reports the shader's opacity flag. It may be queried before
	// any context is established.
	IsOpaque() bool

	// SetContext prepares the shader for drawing under ctm. It returns
	// false when the combined transform cannot be inverted, in which case
	// the draw must be skipped.
	SetContext(ctm Matrix) bool

	// ShadeRow fills row with the pixels starting at device (x, y).
	ShadeRow(x, y int, row []Pixel)
}

// TileMode defines how a shader treats local coordinates outside [0, 1].
type TileMode uint8

const (
	// TileClamp extends the edge values.
	TileClamp TileMode = iota
	// TileRepeat repeats the pattern.
	TileRepeat
	// TileMirror repeats the pattern, flipping every other copy.
	TileMirror
)

// String returns the tile mode name.
func (m TileMode) String() string {
	switch m {
	case TileClamp:
		return "Clamp"
	case TileRepeat:
		return "Repeat"
	case TileMirror:
		return "Mirror"
	default:
		return "Unknown"
	}
}

// fold maps t into [0, 1]. Unknown modes clamp.
func (m TileMode) fold(t float64) float64 {
	switch m {
	case TileRepeat:
		return t - math.Floor(t)
	case TileMirror:
		t *= 0.5
		t -= math.Floor(t)
		if t > 0.5 {
			t = 1 - t
		}
		return t * 2
	default:
		return pin(t)
	}
}

// localSpace is embedded by shaders that map device pixels back through an
// inverted transform.
type localSpace struct {
	local   Matrix
	inverse Matrix
}

func (l *localSpace) setContext(ctm Matrix) bool {
	inv, ok := ctm.Multiply(l.local).Invert()
	if !ok {
		return false
	}
	l.inverse = inv
	return true
}

// start returns the local coordinates of the first pixel center of a row.
func (l *localSpace) start(x, y int) Point {
	return l.inverse.MapXY(float64(x)+0.5, float64(y)+0.5)
}

// step returns the local displacement between horizontally adjacent
// pixels.
func (l *localSpace) step() Point {
	return Pt(l.inverse.A, l.inverse.D)
}

type solidShader struct {
	color Color
	pixel Pixel
}

// NewSolidShader returns a shader that fills with c.
//
// IsOpaque reports true when c is fully transparent. Callers relying on the
// usual meaning should test the color instead.
func NewSolidShader(c Color) Shader {
	return &solidShader{color: c, pixel: c.Pixel()}
}

func (s *solidShader) IsOpaque() bool { return s.color.A == 0 }

func (s *solidShader) SetContext(Matrix) bool { return true }

func (s *solidShader) ShadeRow(_, _ int, row []Pixel) {
	for i := range row {
		row[i] = s.pixel
	}
}

type composeShader struct {
	a, b    Shader
	scratch []Pixel
}

// NewComposeShader returns a shader whose pixels are the channel-wise
// product of the pixels of a and b.
func NewComposeShader(a, b Shader) (Shader, error) {
	if a == nil || b == nil {
		return nil, ErrNilShader
	}
	return &composeShader{a: a, b: b}, nil
}

func (s *composeShader) IsOpaque() bool { return s.a.IsOpaque() && s.b.IsOpaque() }

func (s *composeShader) SetContext(ctm Matrix) bool {
	return s.a.SetContext(ctm) && s.b.SetContext(ctm)
}

func (s *composeShader) ShadeRow(x, y int, row []Pixel) {
	if cap(s.scratch) < len(row) {
		s.scratch = make([]Pixel, len(row))
	}
	other := s.scratch[:len(row)]

	s.a.ShadeRow(x, y, row)
	s.b.ShadeRow(x, y, other)
	for i, p := range row {
		row[i] = Pixel(blend.Mul(uint32(p), uint32(other[i])))
	}
}
