package swr

// triangleBasis returns the matrix mapping the unit vectors onto the edges
// pts[0]→pts[1] and pts[0]→pts[2], and the origin onto pts[0].
func triangleBasis(pts [3]Point) Matrix {
	u := pts[1].Sub(pts[0])
	v := pts[2].Sub(pts[0])
	return Matrix{
		A: u.X, B: v.X, C: pts[0].X,
		D: u.Y, E: v.Y, F: pts[0].Y,
	}
}

// tricolorShader interpolates three vertex colors across a triangle.
type tricolorShader struct {
	localSpace
	c0       Color
	dc1, dc2 Color
}

// NewTricolorShader returns a shader that interpolates colors[i] at pts[i]
// linearly across the plane of the triangle. Draws under a transform that
// collapses the triangle are skipped.
func NewTricolorShader(pts [3]Point, colors [3]Color) Shader {
	return &tricolorShader{
		localSpace: localSpace{local: triangleBasis(pts)},
		c0:         colors[0],
		dc1:        colors[1].Sub(colors[0]),
		dc2:        colors[2].Sub(colors[0]),
	}
}

// IsOpaque reports true when some vertex color is fully transparent.
func (s *tricolorShader) IsOpaque() bool {
	c1, c2 := s.c0.Add(s.dc1), s.c0.Add(s.dc2)
	return s.c0.A == 0 || c1.A == 0 || c2.A == 0
}

func (s *tricolorShader) SetContext(ctm Matrix) bool { return s.setContext(ctm) }

func (s *tricolorShader) ShadeRow(x, y int, row []Pixel) {
	p := s.start(x, y)
	d := s.step()
	c := s.c0.Add(s.dc1.Scale(p.X)).Add(s.dc2.Scale(p.Y))
	dc := s.dc1.Scale(d.X).Add(s.dc2.Scale(d.Y))
	for i := range row {
		row[i] = c.Pixel()
		c = c.Add(dc)
	}
}

// proxyShader draws an inner shader through a texture-to-triangle map.
type proxyShader struct {
	inner Shader
	local Matrix
	ok    bool // texture triangle was invertible
}

// NewProxyShader returns a shader that paints inner so that texture
// coordinates texs[i] land on pts[i]. If the texture triangle is
// degenerate, every draw with the shader is skipped.
func NewProxyShader(inner Shader, pts, texs [3]Point) (Shader, error) {
	if inner == nil {
		return nil, ErrNilShader
	}
	inv, ok := triangleBasis(texs).Invert()
	return &proxyShader{
		inner: inner,
		local: triangleBasis(pts).Multiply(inv),
		ok:    ok,
	}, nil
}

func (s *proxyShader) IsOpaque() bool { return s.inner.IsOpaque() }

func (s *proxyShader) SetContext(ctm Matrix) bool {
	return s.ok && s.inner.SetContext(ctm.Multiply(s.local))
}

func (s *proxyShader) ShadeRow(x, y int, row []Pixel) {
	s.inner.ShadeRow(x, y, row)
}
