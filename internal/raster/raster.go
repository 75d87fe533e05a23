// Package raster scan-converts polygons into horizontal pixel spans.
//
// A pixel (x, y) is covered when its center (x+0.5, y+0.5) lies inside the
// shape, using the half-open rule: a center exactly on a left or top
// boundary is outside, one exactly on a right or bottom boundary is inside.
// There is no anti-aliasing.
package raster

// Blitter receives the spans produced by a fill. Each call covers the pixels
// [x0, x1) of row y, already clipped to the device.
type Blitter interface {
	BlitRow(y, x0, x1 int)
}

// BlitterFunc adapts a function to the Blitter interface.
type BlitterFunc func(y, x0, x1 int)

// BlitRow calls f(y, x0, x1).
func (f BlitterFunc) BlitRow(y, x0, x1 int) { f(y, x0, x1) }

// Rasterizer accumulates device-space edges and fills them.
// Its buffers are reused across fills, so a single Rasterizer per target
// avoids per-draw allocation. It is not safe for concurrent use.
type Rasterizer struct {
	width  int
	height int
	edges  []Edge
	active []int
}

// NewRasterizer creates a new rasterizer for the given dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
	}
}

// Reset discards the accumulated edges.
func (r *Rasterizer) Reset() {
	r.edges = r.edges[:0]
}

// Edges returns the accumulated, unclipped edges.
func (r *Rasterizer) Edges() []Edge {
	return r.edges
}

// AddLine adds the edge p0→p1.
func (r *Rasterizer) AddLine(p0, p1 Point) {
	r.edges = AppendLine(r.edges, p0, p1)
}

// AddPolygon adds the edges of the closed polygon pts.
func (r *Rasterizer) AddPolygon(pts []Point) {
	r.edges = AppendPolygon(r.edges, pts)
}

// AddQuad adds a flattened quadratic Bézier.
func (r *Rasterizer) AddQuad(p0, p1, p2 Point) {
	r.edges = AppendQuad(r.edges, p0, p1, p2)
}

// AddCubic adds a flattened cubic Bézier.
func (r *Rasterizer) AddCubic(p0, p1, p2, p3 Point) {
	r.edges = AppendCubic(r.edges, p0, p1, p2, p3)
}

// prepare clips and sorts the accumulated edges and resets the rasterizer
// for the next shape. The returned slice is valid until the next Add call.
func (r *Rasterizer) prepare() []Edge {
	edges := SortEdges(ClipEdges(r.edges, r.width, r.height))
	r.edges = edges[:0]
	return edges
}

// FillConvex fills a shape whose every row is covered by a single span,
// such as a convex polygon. Exactly two edges are active at a time; when
// one runs out the next edge in sweep order takes its place.
func (r *Rasterizer) FillConvex(b Blitter) {
	edges := r.prepare()
	if len(edges) < 2 {
		return
	}

	bottom := lastRow(edges)
	left, right := edges[0], edges[1]
	next := 2

	for y := edges[0].Y0; y < bottom; y++ {
		for left.Y1 <= y {
			if next == len(edges) {
				return
			}
			left = edges[next]
			next++
		}
		for right.Y1 <= y {
			if next == len(edges) {
				return
			}
			right = edges[next]
			next++
		}
		r.span(b, y, left.X, right.X)
		left.step()
		right.step()
	}
}

// FillWinding fills with the nonzero winding rule: a pixel is inside when
// the sum of the windings of the edges left of its center is not zero.
//
// The active list holds indices into the sorted edges, ordered by the
// current x. After each row, finished edges are removed, the rest advance
// by their slope, and the order is restored with adjacent swaps, which is
// linear when edges rarely cross.
func (r *Rasterizer) FillWinding(b Blitter) {
	edges := r.prepare()
	if len(edges) == 0 {
		return
	}

	bottom := lastRow(edges)
	active := r.active[:0]
	next := 0

	for y := edges[0].Y0; y < bottom; y++ {
		if len(active) == 0 {
			if next == len(edges) {
				break
			}
			y = edges[next].Y0
		}

		// Edges starting on this row join in x order.
		for next < len(edges) && edges[next].Y0 <= y {
			active = append(active, next)
			bubble(edges, active, len(active)-1)
			next++
		}

		w := 0
		var x0 float64
		for _, i := range active {
			e := &edges[i]
			if w == 0 {
				x0 = e.X
			}
			w += e.Winding
			if w == 0 {
				r.span(b, y, x0, e.X)
			}
		}

		kept := active[:0]
		for _, i := range active {
			e := &edges[i]
			if e.Y1 <= y+1 {
				continue
			}
			e.step()
			kept = append(kept, i)
		}
		active = kept
		for i := 1; i < len(active); i++ {
			bubble(edges, active, i)
		}
	}
	r.active = active[:0]
}

// bubble moves active[i] toward the front while its x is smaller than its
// predecessor's.
func bubble(edges []Edge, active []int, i int) {
	for ; i > 0 && edges[active[i]].X < edges[active[i-1]].X; i-- {
		active[i], active[i-1] = active[i-1], active[i]
	}
}

// lastRow returns one past the last row any edge covers.
func lastRow(edges []Edge) int {
	bottom := edges[0].Y1
	for _, e := range edges[1:] {
		bottom = max(bottom, e.Y1)
	}
	return bottom
}

// span rounds the edge positions to pixel boundaries, clamps them to the
// device and emits the row.
func (r *Rasterizer) span(b Blitter, y int, xa, xb float64) {
	if y < 0 || y >= r.height {
		return
	}
	x0, x1 := Round(xa), Round(xb)
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0 = max(x0, 0)
	x1 = min(x1, r.width)
	if x0 < x1 {
		b.BlitRow(y, x0, x1)
	}
}
