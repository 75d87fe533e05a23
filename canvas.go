package swr

import (
	"log/slog"

	"github.com/gogpu/swr/internal/blend"
	"github.com/gogpu/swr/internal/raster"
)

// Canvas draws into a Bitmap through a stack of transforms.
//
// Geometry passed to draw calls is mapped by the current transform (CTM)
// and filled without anti-aliasing: a pixel is painted when its center is
// inside the shape. Degenerate geometry is silently ignored.
//
// A Canvas is not safe for concurrent use. Separate canvases on separate
// bitmaps may be used from separate goroutines.
type Canvas struct {
	bm     *Bitmap
	logger *slog.Logger

	matrix Matrix
	stack  []Matrix

	rast *raster.Rasterizer
	blit blitter
	pts  []raster.Point
}

// NewCanvas returns a canvas drawing into bm, which the caller keeps
// owning. It returns ErrNilBitmap or ErrBadStride when bm is unusable.
func NewCanvas(bm *Bitmap, opts ...CanvasOption) (*Canvas, error) {
	if err := bm.validate(); err != nil {
		return nil, err
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Canvas{
		bm:     bm,
		logger: options.logger,
		matrix: options.matrix,
		stack:  make([]Matrix, 0, 8),
		rast:   raster.NewRasterizer(bm.Width, bm.Height),
		blit: blitter{
			bm:  bm,
			row: make([]Pixel, bm.Width),
		},
	}, nil
}

// log returns the canvas logger, falling back to the package logger.
func (c *Canvas) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// Bitmap returns the drawing target.
func (c *Canvas) Bitmap() *Bitmap { return c.bm }

// Width returns the width of the target in pixels.
func (c *Canvas) Width() int { return c.bm.Width }

// Height returns the height of the target in pixels.
func (c *Canvas) Height() int { return c.bm.Height }

// Save pushes a copy of the current transform.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.matrix)
}

// Restore pops the transform pushed by the matching Save. Without a
// matching Save it does nothing and logs a warning.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		c.log().Warn("canvas: restore without matching save")
		return
	}
	c.matrix = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// SaveCount returns the number of saved transforms.
func (c *Canvas) SaveCount() int { return len(c.stack) }

// CTM returns the current transform.
func (c *Canvas) CTM() Matrix { return c.matrix }

// Concat applies m before the current transform.
func (c *Canvas) Concat(m Matrix) {
	c.matrix = c.matrix.Multiply(m)
}

// Translate applies a translation to the current transform.
func (c *Canvas) Translate(x, y float64) {
	c.Concat(Translate(x, y))
}

// Scale applies a scaling transformation.
func (c *Canvas) Scale(x, y float64) {
	c.Concat(Scale(x, y))
}

// Rotate applies a rotation (angle in radians).
func (c *Canvas) Rotate(angle float64) {
	c.Concat(Rotate(angle))
}

// Clear replaces every pixel with col.
func (c *Canvas) Clear(col Color) {
	c.DrawPaint(Paint{Color: col, BlendMode: BlendSrc})
}

// DrawPaint fills the whole bitmap with p, ignoring the transform for
// coverage. A shader still sees the transform.
func (c *Canvas) DrawPaint(p Paint) {
	b, ok := c.blitter(p, "DrawPaint")
	if !ok {
		return
	}
	for y := 0; y < c.bm.Height; y++ {
		b.BlitRow(y, 0, c.bm.Width)
	}
}

// FillRect fills r with col using BlendSrcOver.
func (c *Canvas) FillRect(r Rect, col Color) {
	c.DrawRect(r, NewPaint(col))
}

// DrawRect fills r, mapped by the current transform. An empty or inverted
// rect draws nothing.
func (c *Canvas) DrawRect(r Rect, p Paint) {
	if r.IsEmpty() {
		return
	}
	c.DrawConvexPolygon([]Point{
		{r.Left, r.Top},
		{r.Right, r.Top},
		{r.Right, r.Bottom},
		{r.Left, r.Bottom},
	}, p)
}

// DrawConvexPolygon fills the polygon pts, which must be convex after
// transformation. Fewer than three points draw nothing. Non-convex input
// does not fail but is filled incorrectly; use DrawPath for such shapes.
func (c *Canvas) DrawConvexPolygon(pts []Point, p Paint) {
	if len(pts) < 3 {
		return
	}
	b, ok := c.blitter(p, "DrawConvexPolygon")
	if !ok {
		return
	}

	c.pts = c.pts[:0]
	for _, q := range pts {
		c.pts = append(c.pts, c.matrix.MapPoint(q).raster())
	}
	c.rast.AddPolygon(c.pts)
	c.rast.FillConvex(b)
}

// DrawPath fills path with the nonzero winding rule. Every contour is
// closed implicitly.
func (c *Canvas) DrawPath(path *Path, p Paint) {
	if path == nil || path.IsEmpty() {
		return
	}
	b, ok := c.blitter(p, "DrawPath")
	if !ok {
		return
	}

	m := c.matrix
	e := NewEdger(path)
	var pts [MaxSegmentPoints]Point
	for v := e.Next(&pts); v != VerbDone; v = e.Next(&pts) {
		m.MapPoints(pts[:v.PointCount()], pts[:v.PointCount()])
		switch v {
		case VerbLine:
			c.rast.AddLine(pts[0].raster(), pts[1].raster())
		case VerbQuad:
			c.rast.AddQuad(pts[0].raster(), pts[1].raster(), pts[2].raster())
		case VerbCubic:
			c.rast.AddCubic(pts[0].raster(), pts[1].raster(), pts[2].raster(), pts[3].raster())
		}
	}
	c.rast.FillWinding(b)
}

// blitter prepares the span writer for one draw. It returns false when the
// paint's shader cannot be used under the current transform.
func (c *Canvas) blitter(p Paint, op string) (*blitter, bool) {
	if p.Shader != nil && !p.Shader.SetContext(c.matrix) {
		c.log().Debug("canvas: draw skipped, shader transform is not invertible", "op", op)
		return nil, false
	}
	b := &c.blit
	b.mode = blend.Mode(p.BlendMode)
	b.shader = p.Shader
	b.pixel = p.Color.Pixel()
	return b, true
}

// blitter composites a paint onto the spans of one row at a time.
type blitter struct {
	bm     *Bitmap
	mode   blend.Mode
	shader Shader
	pixel  Pixel
	row    []Pixel // shader output, one row wide
}

func (b *blitter) BlitRow(y, x0, x1 int) {
	dst := b.bm.Row(y)[x0:x1]
	if b.shader == nil {
		blend.RowSolid(b.mode, dst, b.pixel)
		return
	}
	src := b.row[:len(dst)]
	b.shader.ShadeRow(x0, y, src)
	blend.Row(b.mode, dst, src)
}
