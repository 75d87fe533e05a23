package swr

import "math"

// Verb identifies a path construction command.
type Verb uint8

// Path verb constants.
const (
	// VerbMove starts a new contour.
	VerbMove Verb = iota
	// VerbLine connects the previous point with a line.
	VerbLine
	// VerbQuad connects the previous point with a quadratic Bézier.
	VerbQuad
	// VerbCubic connects the previous point with a cubic Bézier.
	VerbCubic
	// VerbDone is never stored in a path. Iterators return it when they
	// are exhausted.
	VerbDone
)

// String returns a human-readable name for the verb.
func (v Verb) String() string {
	switch v {
	case VerbMove:
		return "Move"
	case VerbLine:
		return "Line"
	case VerbQuad:
		return "Quad"
	case VerbCubic:
		return "Cubic"
	case VerbDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// PointCount returns the number of points an iterator reports for the verb.
// Segments include their starting point.
func (v Verb) PointCount() int {
	switch v {
	case VerbMove:
		return 1
	case VerbLine:
		return 2
	case VerbQuad:
		return 3
	case VerbCubic:
		return 4
	default:
		return 0
	}
}

// stored returns the number of points the verb appends to a path.
func (v Verb) stored() int {
	if v == VerbMove {
		return 1
	}
	return v.PointCount() - 1
}

// Direction selects the winding direction of contours added by AddRect and
// AddCircle.
type Direction uint8

const (
	// Clockwise is the default direction.
	Clockwise Direction = iota
	CounterClockwise
)

// Path is a sequence of contours made of lines and Bézier curves.
// Contours are implicitly closed when filled.
//
// The zero value is an empty path ready to use.
type Path struct {
	pts   []Point
	verbs []Verb
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		pts:   make([]Point, 0, 16),
		verbs: make([]Verb, 0, 8),
	}
}

// Reset clears the path for reuse without deallocating memory.
func (p *Path) Reset() *Path {
	p.pts = p.pts[:0]
	p.verbs = p.verbs[:0]
	return p
}

// MoveTo begins a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.pts = append(p.pts, Pt(x, y))
	p.verbs = append(p.verbs, VerbMove)
	return p
}

// ensureContour starts a contour at the origin when a segment is added to
// an empty path.
func (p *Path) ensureContour() {
	if len(p.verbs) == 0 {
		p.MoveTo(0, 0)
	}
}

// LineTo draws a line from the previous point to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.ensureContour()
	p.pts = append(p.pts, Pt(x, y))
	p.verbs = append(p.verbs, VerbLine)
	return p
}

// QuadTo draws a quadratic Bézier from the previous point to (x, y) with
// control point (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p.ensureContour()
	p.pts = append(p.pts, Pt(cx, cy), Pt(x, y))
	p.verbs = append(p.verbs, VerbQuad)
	return p
}

// CubicTo draws a cubic Bézier from the previous point to (x, y) with
// control points (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.ensureContour()
	p.pts = append(p.pts, Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y))
	p.verbs = append(p.verbs, VerbCubic)
	return p
}

func (p *Path) moveToPt(q Point) *Path    { return p.MoveTo(q.X, q.Y) }
func (p *Path) lineToPt(q Point) *Path    { return p.LineTo(q.X, q.Y) }
func (p *Path) quadToPt(c, q Point) *Path { return p.QuadTo(c.X, c.Y, q.X, q.Y) }

// AddRect appends a new contour with the four corners of r, starting at
// the top-left corner. Clockwise visits top-right next; CounterClockwise
// visits bottom-left next.
func (p *Path) AddRect(r Rect, dir Direction) *Path {
	tl := Pt(r.Left, r.Top)
	tr := Pt(r.Right, r.Top)
	br := Pt(r.Right, r.Bottom)
	bl := Pt(r.Left, r.Bottom)

	p.moveToPt(tl)
	if dir == CounterClockwise {
		return p.lineToPt(bl).lineToPt(br).lineToPt(tr)
	}
	return p.lineToPt(tr).lineToPt(br).lineToPt(bl)
}

// AddPolygon appends a new contour through pts. It does nothing when pts
// has fewer than three points.
func (p *Path) AddPolygon(pts []Point) *Path {
	if len(pts) < 3 {
		return p
	}
	p.moveToPt(pts[0])
	for _, q := range pts[1:] {
		p.lineToPt(q)
	}
	return p
}

// AddCircle appends a circle approximated by eight quadratic arcs. The
// contour starts at the bottom of the circle. Clockwise heads toward +x
// first and CounterClockwise toward -x. A non-positive radius adds nothing.
func (p *Path) AddCircle(center Point, radius float64, dir Direction) *Path {
	if !(radius > 0) {
		return p
	}

	start := Pt(center.X, center.Y+radius)
	// Control point of a 45° arc lies at tan(π/8)·r along the tangent.
	reach := radius / (1 + math.Sqrt2)
	diag := radius / math.Sqrt2

	ctrl := Pt(start.X+reach, start.Y)
	end := Pt(center.X+diag, center.Y+diag)
	angle := -math.Pi / 4
	if dir == CounterClockwise {
		ctrl = Pt(start.X-reach, start.Y)
		end = Pt(center.X-diag, center.Y+diag)
		angle = math.Pi / 4
	}
	step := RotateAbout(angle, center.X, center.Y)

	p.moveToPt(start)
	for range 8 {
		p.quadToPt(ctrl, end)
		ctrl = step.MapPoint(ctrl)
		end = step.MapPoint(end)
	}
	return p
}

// CountPoints returns the number of stored points.
func (p *Path) CountPoints() int { return len(p.pts) }

// CountVerbs returns the number of stored verbs.
func (p *Path) CountVerbs() int { return len(p.verbs) }

// IsEmpty reports whether the path has no verbs.
func (p *Path) IsEmpty() bool { return len(p.verbs) == 0 }

// Points returns the stored points. The slice aliases the path.
func (p *Path) Points() []Point { return p.pts }

// Verbs returns the stored verbs. The slice aliases the path.
func (p *Path) Verbs() []Verb { return p.verbs }

// Bounds returns the bounds of every control point, or the zero Rect when
// the path is empty. Curves may lie strictly inside these bounds.
func (p *Path) Bounds() Rect {
	return boundsOf(p.pts)
}

// Transform maps every point of the path through m in place.
func (p *Path) Transform(m Matrix) *Path {
	m.MapPoints(p.pts, p.pts)
	return p
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	return &Path{
		pts:   append([]Point(nil), p.pts...),
		verbs: append([]Verb(nil), p.verbs...),
	}
}
