package raster

import (
	"cmp"
	"math"
	"slices"
)

// Point represents a 2D point in device space (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Round rounds to the nearest integer, with halves going up.
// Pixel centers sit at half-integer coordinates, so a coordinate belongs to
// column (or row) Round(x).
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Edge is a non-horizontal line segment prepared for scan conversion.
//
// Top.Y <= Bottom.Y always holds. Y0 and Y1 are the first and one-past-last
// rows whose pixel centers the edge crosses. Winding records the direction
// of the original segment: -1 when it already ran top to bottom, +1 when it
// had to be flipped.
type Edge struct {
	Top, Bottom Point
	Slope       float64 // dx/dy
	X           float64 // x at the center of the current row
	Y0, Y1      int
	Winding     int
}

// NewEdge builds an edge from p0 to p1. It reports false when the segment
// covers no pixel rows.
func NewEdge(p0, p1 Point) (Edge, bool) {
	y0, y1 := Round(p0.Y), Round(p1.Y)
	if y0 == y1 {
		return Edge{}, false
	}

	e := Edge{Slope: (p0.X - p1.X) / (p0.Y - p1.Y)}
	if y0 > y1 {
		e.Top, e.Bottom = p1, p0
		e.Y0, e.Y1 = y1, y0
		e.Winding = 1
	} else {
		e.Top, e.Bottom = p0, p1
		e.Y0, e.Y1 = y0, y1
		e.Winding = -1
	}
	e.resetX()
	return e, true
}

// resetX positions X at the center of row Y0.
func (e *Edge) resetX() {
	dy := float64(e.Y0) - e.Top.Y + 0.5
	e.X = e.Top.X + e.Slope*dy
}

// step advances X to the next row.
func (e *Edge) step() {
	e.X += e.Slope
}

// AppendLine appends the edge for p0→p1 to edges, if it covers any row.
func AppendLine(edges []Edge, p0, p1 Point) []Edge {
	if e, ok := NewEdge(p0, p1); ok {
		edges = append(edges, e)
	}
	return edges
}

// AppendPolygon appends the edges of the closed polygon pts.
func AppendPolygon(edges []Edge, pts []Point) []Edge {
	if len(pts) < 2 {
		return edges
	}
	for i := 0; i < len(pts)-1; i++ {
		edges = AppendLine(edges, pts[i], pts[i+1])
	}
	return AppendLine(edges, pts[len(pts)-1], pts[0])
}

// compareEdges orders edges by starting row, then by rounded x at that row,
// then by slope, leftward-leaning first.
func compareEdges(a, b Edge) int {
	if c := cmp.Compare(a.Y0, b.Y0); c != 0 {
		return c
	}
	if c := cmp.Compare(Round(a.X), Round(b.X)); c != 0 {
		return c
	}
	return cmp.Compare(a.Slope, b.Slope)
}

// SortEdges drops degenerate edges (Y0 == Y1) and sorts the rest for a
// top-to-bottom sweep. The returned slice shares storage with edges.
func SortEdges(edges []Edge) []Edge {
	edges = slices.DeleteFunc(edges, func(e Edge) bool { return e.Y0 == e.Y1 })
	slices.SortFunc(edges, compareEdges)
	return edges
}
