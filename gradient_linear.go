package swr

// linearGradient maps the segment p0→p1 onto the local x axis [0, 1].
type linearGradient struct {
	localSpace
	stops colorStops
	mode  TileMode
}

// NewLinearGradient returns a shader that blends colors evenly along the
// line from p0 to p1. Perpendicular to that line the color is constant.
// Outside the segment, mode decides how the gradient continues.
//
// It returns ErrNoColors when colors is empty, and a solid shader when it
// holds a single color. When p0 equals p1 every draw with the shader is
// skipped.
//
// Example:
//
//	sh, err := swr.NewLinearGradient(swr.Pt(0, 0), swr.Pt(100, 0),
//	    []swr.Color{swr.Red, swr.Blue}, swr.TileClamp)
func NewLinearGradient(p0, p1 Point, colors []Color, mode TileMode) (Shader, error) {
	stops, solid, err := newStops(colors)
	if err != nil || solid != nil {
		return solid, err
	}
	d := p1.Sub(p0)
	return &linearGradient{
		localSpace: localSpace{local: Matrix{
			A: d.X, B: -d.Y, C: p0.X,
			D: d.Y, E: d.X, F: p0.Y,
		}},
		stops: stops,
		mode:  mode,
	}, nil
}

// IsOpaque reports true when every color is fully transparent.
func (g *linearGradient) IsOpaque() bool { return g.stops.allTransparent() }

func (g *linearGradient) SetContext(ctm Matrix) bool { return g.setContext(ctm) }

func (g *linearGradient) ShadeRow(x, y int, row []Pixel) {
	p := g.start(x, y)
	dx := g.inverse.A
	for i := range row {
		row[i] = g.stops.at(g.mode.fold(p.X)).Pixel()
		p.X += dx
	}
}
