package raster

import "math"

// QuadSegments returns the number of line segments used to flatten the
// quadratic p0,p1,p2 so the chord error stays under a quarter pixel.
func QuadSegments(p0, p1, p2 Point) int {
	dx := (p0.X + p2.X - 2*p1.X) * 0.25
	dy := (p0.Y + p2.Y - 2*p1.Y) * 0.25
	return segmentCount(4 * math.Hypot(dx, dy))
}

// CubicSegments returns the number of line segments used to flatten the
// cubic p0,p1,p2,p3. The error estimate takes the smaller of the two
// second differences.
func CubicSegments(p0, p1, p2, p3 Point) int {
	e1 := math.Hypot(p0.X+p2.X-2*p1.X, p0.Y+p2.Y-2*p1.Y)
	e2 := math.Hypot(p1.X+p3.X-2*p2.X, p1.Y+p3.Y-2*p2.Y)
	return segmentCount(3 * math.Min(e1, e2))
}

func segmentCount(v float64) int {
	n := int(math.Ceil(math.Sqrt(v)))
	if n < 1 {
		return 1
	}
	return n
}

// EvalQuad evaluates the quadratic Bézier at t.
func EvalQuad(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	a, b, c := mt*mt, 2*mt*t, t*t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y,
	}
}

// EvalCubic evaluates the cubic Bézier at t.
func EvalCubic(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// AppendQuad flattens the quadratic into evenly spaced line edges.
func AppendQuad(edges []Edge, p0, p1, p2 Point) []Edge {
	n := QuadSegments(p0, p1, p2)
	prev := p0
	for i := 1; i < n; i++ {
		next := EvalQuad(p0, p1, p2, float64(i)/float64(n))
		edges = AppendLine(edges, prev, next)
		prev = next
	}
	return AppendLine(edges, prev, p2)
}

// AppendCubic flattens the cubic into evenly spaced line edges.
func AppendCubic(edges []Edge, p0, p1, p2, p3 Point) []Edge {
	n := CubicSegments(p0, p1, p2, p3)
	prev := p0
	for i := 1; i < n; i++ {
		next := EvalCubic(p0, p1, p2, p3, float64(i)/float64(n))
		edges = AppendLine(edges, prev, next)
		prev = next
	}
	return AppendLine(edges, prev, p3)
}
