package swr

// AddStrokeLine appends the outline of a line segment drawn with the given
// width: a rectangle around p0→p1 and, when roundCap is set, a circle of
// radius width/2 at each end. All contours are clockwise, so the result
// fills solid under the nonzero rule.
//
// A non-positive width adds nothing. When p0 equals p1 only the caps are
// added.
func (p *Path) AddStrokeLine(p0, p1 Point, width float64, roundCap bool) *Path {
	if !(width > 0) {
		return p
	}
	half := width / 2

	if d := p1.Sub(p0); d.Length() > 0 {
		u := d.Mul(half / d.Length())
		n := Pt(-u.Y, u.X)
		p.AddPolygon([]Point{p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n)})
	}
	if roundCap {
		p.AddCircle(p0, half, Clockwise)
		p.AddCircle(p1, half, Clockwise)
	}
	return p
}
