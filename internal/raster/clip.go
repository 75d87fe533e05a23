package raster

// ClipEdges restricts edges to the device rectangle [0,width)×[0,height).
//
// Edges entirely above or below the device are dropped. Edges crossing the
// top or bottom are shortened. Edges entirely to the left or right collapse
// to vertical edges on x=0 or x=width, which keeps their winding
// contribution without touching any pixel. Edges crossing a side are split:
// the in-bounds part keeps the slope and the outside part becomes a
// vertical stub on the boundary with the same winding.
//
// The result may contain degenerate edges; SortEdges removes them.
func ClipEdges(edges []Edge, width, height int) []Edge {
	w, h := float64(width), float64(height)
	out := edges[:0]
	var stubs []Edge

	for _, e := range edges {
		if e.Bottom.Y < 0 || e.Top.Y > h {
			continue
		}

		if e.Top.Y <= 0 {
			e.Top.X += e.Slope * -e.Top.Y
			e.Top.Y = 0
			e.Y0 = 0
			e.resetX()
		}
		if e.Bottom.Y >= h {
			e.Bottom.X += e.Slope * (h - e.Bottom.Y)
			e.Bottom.Y = h
			e.Y1 = height
		}

		switch {
		case e.Top.X <= 0 && e.Bottom.X <= 0:
			e.pin(0)
		case e.Top.X >= w && e.Bottom.X >= w:
			e.pin(w)
		case e.Slope < 0:
			// Top is the right end.
			if e.Bottom.X < 0 {
				old := e.Bottom.Y
				e.Bottom.Y += -e.Bottom.X / e.Slope
				e.Bottom.X = 0
				e.Y1 = Round(e.Bottom.Y)
				stubs = appendStub(stubs, 0, e.Bottom.Y, old, e.Winding)
			}
			if e.Top.X > w {
				old := e.Top.Y
				e.Top.Y += (w - e.Top.X) / e.Slope
				e.Top.X = w
				e.Y0 = Round(e.Top.Y)
				e.resetX()
				stubs = appendStub(stubs, w, old, e.Top.Y, e.Winding)
			}
		case e.Slope > 0:
			// Top is the left end.
			if e.Top.X < 0 {
				old := e.Top.Y
				e.Top.Y += -e.Top.X / e.Slope
				e.Top.X = 0
				e.Y0 = Round(e.Top.Y)
				e.resetX()
				stubs = appendStub(stubs, 0, old, e.Top.Y, e.Winding)
			}
			if e.Bottom.X > w {
				old := e.Bottom.Y
				e.Bottom.Y += (w - e.Bottom.X) / e.Slope
				e.Bottom.X = w
				e.Y1 = Round(e.Bottom.Y)
				stubs = appendStub(stubs, w, e.Bottom.Y, old, e.Winding)
			}
		}
		out = append(out, e)
	}
	return append(out, stubs...)
}

// pin collapses e onto the vertical line at x.
func (e *Edge) pin(x float64) {
	e.Top.X, e.Bottom.X = x, x
	e.Slope = 0
	e.X = x
}

// appendStub adds a vertical edge at x spanning [top, bottom] with the
// given winding.
func appendStub(stubs []Edge, x, top, bottom float64, winding int) []Edge {
	e, ok := NewEdge(Point{x, top}, Point{x, bottom})
	if !ok {
		return stubs
	}
	e.Winding = winding
	return append(stubs, e)
}
