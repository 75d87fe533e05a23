package swr

// DrawMesh fills the triangles listed in indices, three vertex indices per
// triangle; trailing indices that do not form a whole triangle are ignored.
//
// colors and texs are optional and, when non-nil, are indexed like verts.
// With colors each triangle interpolates its vertex colors. With texs each
// triangle maps the paint's shader so that texs[i] lands on verts[i]; texs
// are ignored when the paint has no shader. With both, the two results are
// multiplied. With neither there is nothing to shade and the mesh draws
// nothing.
//
// Triangles referring to a missing vertex, color or texture coordinate are
// skipped.
func (c *Canvas) DrawMesh(verts []Point, colors []Color, texs []Point, indices []int, p Paint) {
	if p.Shader == nil {
		texs = nil
	}
	if colors == nil && texs == nil {
		c.log().Debug("canvas: mesh skipped, no colors or texture coordinates",
			"triangles", len(indices)/3)
		return
	}
	for n := 0; n+3 <= len(indices); n += 3 {
		idx := [3]int{indices[n], indices[n+1], indices[n+2]}
		if !meshIndexOK(idx, len(verts), colors != nil, len(colors), texs != nil, len(texs)) {
			c.log().Debug("canvas: mesh triangle skipped, index out of range",
				"triangle", n/3, "indices", idx)
			continue
		}

		var pts [3]Point
		for i, k := range idx {
			pts[i] = verts[k]
		}
		sh, err := meshShader(p.Shader, pts, colors, texs, idx)
		if err != nil {
			c.log().Debug("canvas: mesh triangle skipped", "triangle", n/3, "err", err)
			continue
		}
		tp := p
		tp.Shader = sh
		c.DrawConvexPolygon(pts[:], tp)
	}
}

// meshShader builds the shader of one mesh triangle. At least one of colors
// and texs is non-nil; texs requires a non-nil inner shader.
func meshShader(inner Shader, pts [3]Point, colors []Color, texs []Point, idx [3]int) (Shader, error) {
	if texs == nil {
		return NewTricolorShader(pts, meshColors(colors, idx)), nil
	}
	proxy, err := NewProxyShader(inner, pts, meshPoints(texs, idx))
	if err != nil {
		return nil, err
	}
	if colors == nil {
		return proxy, nil
	}
	return NewComposeShader(NewTricolorShader(pts, meshColors(colors, idx)), proxy)
}

func meshIndexOK(idx [3]int, nverts int, hasColors bool, ncolors int, hasTexs bool, ntexs int) bool {
	for _, k := range idx {
		switch {
		case k < 0 || k >= nverts:
			return false
		case hasColors && k >= ncolors:
			return false
		case hasTexs && k >= ntexs:
			return false
		}
	}
	return true
}

func meshColors(colors []Color, idx [3]int) [3]Color {
	return [3]Color{colors[idx[0]], colors[idx[1]], colors[idx[2]]}
}

func meshPoints(pts []Point, idx [3]int) [3]Point {
	return [3]Point{pts[idx[0]], pts[idx[1]], pts[idx[2]]}
}

// quadIndices triangulates the quad v0 v1 v2 v3 (in order around it) along
// the v1→v3 diagonal.
var quadIndices = []int{0, 1, 3, 2, 1, 3}

// DrawQuad fills the quad verts, given in order around its boundary, as a
// mesh. colors and texs are optional; when non-nil they must hold four
// entries, one per corner, or they are ignored.
//
// level 0 draws two triangles. Higher levels subdivide the quad into a
// (level+1)×(level+1) grid of cells, interpolating positions, colors and
// texture coordinates bilinearly, which approximates a perspective-like
// mapping better. Negative levels are treated as 0.
func (c *Canvas) DrawQuad(verts [4]Point, colors []Color, texs []Point, level int, p Paint) {
	if colors != nil && len(colors) < 4 {
		c.log().Debug("canvas: quad colors ignored", "len", len(colors))
		colors = nil
	}
	if texs != nil && len(texs) < 4 {
		c.log().Debug("canvas: quad texture coordinates ignored", "len", len(texs))
		texs = nil
	}
	if level <= 0 {
		c.DrawMesh(verts[:], colors, texs, quadIndices, p)
		return
	}

	n := level + 2 // grid points per side
	steps := float64(level + 1)
	gridVerts := make([]Point, 0, n*n)
	var gridColors []Color
	if colors != nil {
		gridColors = make([]Color, 0, n*n)
	}
	var gridTexs []Point
	if texs != nil {
		gridTexs = make([]Point, 0, n*n)
	}

	for i := range n {
		u := float64(i) / steps
		for j := range n {
			v := float64(j) / steps
			w := bilinear(u, v)
			gridVerts = append(gridVerts, w.point(verts[:]))
			if colors != nil {
				gridColors = append(gridColors, w.color(colors))
			}
			if texs != nil {
				gridTexs = append(gridTexs, w.point(texs))
			}
		}
	}

	indices := make([]int, 0, (n-1)*(n-1)*6)
	for i := range n - 1 {
		for j := range n - 1 {
			k := i*n + j
			indices = append(indices, k, k+1, k+n, k+n+1, k+1, k+n)
		}
	}
	c.DrawMesh(gridVerts, gridColors, gridTexs, indices, p)
}

// quadWeights are the bilinear weights of the four corners of a quad.
type quadWeights [4]float64

// bilinear returns the corner weights at (u, v), where u runs from corner
// 0 toward corner 1 and v from corner 0 toward corner 3.
func bilinear(u, v float64) quadWeights {
	return quadWeights{
		(1 - u) * (1 - v),
		u * (1 - v),
		u * v,
		(1 - u) * v,
	}
}

func (w quadWeights) point(q []Point) Point {
	var p Point
	for i, wi := range w {
		p = p.Add(q[i].Mul(wi))
	}
	return p
}

func (w quadWeights) color(q []Color) Color {
	var c Color
	for i, wi := range w {
		c = c.Add(q[i].Scale(wi))
	}
	return c
}
