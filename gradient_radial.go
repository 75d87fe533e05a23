package swr

import "math"

// radialGradient maps the circle around center onto the local unit circle.
type radialGradient struct {
	localSpace
	stops colorStops
	mode  TileMode
}

// NewRadialGradient returns a shader that blends colors evenly from center
// (first color) out to radius (last color). Beyond the radius, mode decides
// how the gradient continues.
//
// It returns ErrNoColors when colors is empty, and a solid shader when it
// holds a single color. A zero radius makes every draw with the shader a
// no-op.
func NewRadialGradient(center Point, radius float64, colors []Color, mode TileMode) (Shader, error) {
	stops, solid, err := newStops(colors)
	if err != nil || solid != nil {
		return solid, err
	}
	return &radialGradient{
		localSpace: localSpace{local: Matrix{
			A: radius, B: 0, C: center.X,
			D: 0, E: radius, F: center.Y,
		}},
		stops: stops,
		mode:  mode,
	}, nil
}

// IsOpaque reports true when no color is fully transparent.
func (g *radialGradient) IsOpaque() bool { return !g.stops.anyTransparent() }

func (g *radialGradient) SetContext(ctm Matrix) bool { return g.setContext(ctm) }

func (g *radialGradient) ShadeRow(x, y int, row []Pixel) {
	p := g.start(x, y)
	d := g.step()
	for i := range row {
		t := math.Hypot(p.X, p.Y)
		row[i] = g.stops.at(g.mode.fold(t)).Pixel()
		p = p.Add(d)
	}
}
