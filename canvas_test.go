package swr

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCanvas(t *testing.T, w, h int, opts ...CanvasOption) (*Canvas, *Bitmap) {
	t.Helper()
	bm := NewBitmap(w, h)
	c, err := NewCanvas(bm, opts...)
	require.NoError(t, err)
	return c, bm
}

// bufferLogger returns a debug-level logger writing text records to buf.
func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// countPixels returns how many pixels of bm equal p.
func countPixels(bm *Bitmap, p Pixel) int {
	n := 0
	for y := 0; y < bm.Height; y++ {
		for _, q := range bm.Row(y) {
			if q == p {
				n++
			}
		}
	}
	return n
}

func TestNewCanvasErrors(t *testing.T) {
	_, err := NewCanvas(nil)
	assert.ErrorIs(t, err, ErrNilBitmap)

	_, err = NewCanvas(&Bitmap{Width: 2, Height: 2, RowBytes: 8})
	assert.ErrorIs(t, err, ErrNilBitmap)

	_, err = NewCanvas(&Bitmap{Width: 2, Height: 2, RowBytes: 6, Pixels: make([]Pixel, 4)})
	assert.ErrorIs(t, err, ErrBadStride)

	_, err = NewCanvas(&Bitmap{Width: 2, Height: 2, RowBytes: 8, Pixels: make([]Pixel, 3)})
	assert.ErrorIs(t, err, ErrBadStride)
}

func TestCanvasCenterPixel(t *testing.T) {
	c, bm := newTestCanvas(t, 3, 3)
	c.DrawRect(RectLTRB(1, 1, 2, 2), NewPaint(Red))

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := Pixel(0)
			if x == 1 && y == 1 {
				want = pxRed
			}
			assert.Equal(t, want, bm.PixelAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c, bm := newTestCanvas(t, 4, 3)
	c.Clear(Red)
	c.Clear(ARGB(0.5, 1, 1, 1))
	assert.Equal(t, 12, countPixels(bm, 0x80808080), "Src replaces instead of blending")

	c.Clear(Transparent)
	assert.Equal(t, 12, countPixels(bm, 0))
}

func TestCanvasBlending(t *testing.T) {
	c, bm := newTestCanvas(t, 2, 2)
	c.Clear(Blue)
	c.FillRect(RectWH(2, 2), ARGB(128.0/255, 1, 0, 0))
	assert.Equal(t, 4, countPixels(bm, 0xFF80007F))

	c.DrawRect(RectWH(1, 2), NewPaint(Red).WithBlendMode(BlendClear))
	assert.Equal(t, Pixel(0), bm.PixelAt(0, 1))
	assert.Equal(t, Pixel(0xFF80007F), bm.PixelAt(1, 1))

	c.DrawPaint(NewPaint(Green).WithBlendMode(BlendDstOver))
	assert.Equal(t, pxGreen, bm.PixelAt(0, 0), "DstOver fills transparent pixels")
	assert.Equal(t, Pixel(0xFF80007F), bm.PixelAt(1, 0), "and leaves opaque ones")
}

func TestDrawRectEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
	}{
		{"inverted", RectLTRB(3, 3, 1, 1)},
		{"negative width", RectLTRB(3, 0, 1, 4)},
		{"negative height", RectLTRB(0, 3, 4, 1)},
		{"zero size", RectXYWH(1, 1, 0, 0)},
		{"zero width", RectXYWH(1, 0, 0, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, bm := newTestCanvas(t, 4, 4)
			c.DrawRect(tt.r, NewPaint(Red))
			c.FillRect(tt.r, Red)
			assert.Equal(t, 16, countPixels(bm, 0))
		})
	}
}

func TestDrawConvexPolygonPointCounts(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
		want int
	}{
		{"no points", nil, 0},
		{"one point", []Point{{1, 1}}, 0},
		{"two points", []Point{{0, 0}, {4, 4}}, 0},
		{"triangle", []Point{{0, 0}, {4, 0}, {0, 4}}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, bm := newTestCanvas(t, 4, 4)
			c.DrawConvexPolygon(tt.pts, NewPaint(Red))
			assert.Equal(t, tt.want, countPixels(bm, pxRed))
		})
	}
}

func TestCanvasTransformStack(t *testing.T) {
	c, bm := newTestCanvas(t, 4, 4)
	assert.True(t, c.CTM().IsIdentity())

	c.Save()
	c.Translate(2, 1)
	assert.Equal(t, 1, c.SaveCount())
	c.DrawRect(RectWH(1, 1), NewPaint(Red))
	c.Restore()

	assert.True(t, c.CTM().IsIdentity())
	assert.Equal(t, 0, c.SaveCount())
	assert.Equal(t, pxRed, bm.PixelAt(2, 1))
	assert.Equal(t, 1, countPixels(bm, pxRed))

	c.Scale(2, 2)
	c.Concat(Translate(1, 0))
	assertPointNear(t, Pt(4, 2), c.CTM().MapXY(1, 1), "Concat applies before the CTM")

	c.Rotate(math.Pi)
	assertPointNear(t, Pt(0, -2), c.CTM().MapXY(1, 1))
}

func TestCanvasInitialMatrix(t *testing.T) {
	c, bm := newTestCanvas(t, 4, 4, WithInitialMatrix(Scale(2, 2)))
	c.Restore()
	assert.Equal(t, Scale(2, 2), c.CTM(), "restore never pops the base transform")

	c.DrawRect(RectWH(1, 1), NewPaint(Red))
	assert.Equal(t, 4, countPixels(bm, pxRed))
}

func TestCanvasRestoreWarns(t *testing.T) {
	var buf bytes.Buffer
	c, _ := newTestCanvas(t, 1, 1, WithLogger(bufferLogger(&buf)))

	c.Restore()
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "restore without matching save")
}

func TestCanvasUsesPackageLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(bufferLogger(&buf))
	t.Cleanup(func() { SetLogger(nil) })

	c, _ := newTestCanvas(t, 1, 1)
	c.Restore()
	assert.Contains(t, buf.String(), "restore without matching save")
}

func TestCanvasSkipsSingularShader(t *testing.T) {
	var buf bytes.Buffer
	c, bm := newTestCanvas(t, 4, 4, WithLogger(bufferLogger(&buf)))

	g, err := NewLinearGradient(Pt(1, 1), Pt(1, 1), []Color{Red, Blue}, TileClamp)
	require.NoError(t, err)
	p := NewPaint(Green).WithShader(g)

	c.DrawRect(RectWH(4, 4), p)
	c.DrawPaint(p)
	c.DrawPath(NewPath().AddRect(RectWH(4, 4), Clockwise), p)
	assert.Equal(t, 16, countPixels(bm, 0), "nothing drawn")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "op=DrawPaint")

	// A transform that collapses the plane also skips the draw.
	bs, err := NewBitmapShader(checker(), Identity(), TileClamp)
	require.NoError(t, err)
	c.Scale(0, 1)
	c.DrawPaint(NewPaint(Green).WithShader(bs))
	assert.Equal(t, 16, countPixels(bm, 0))
}

func TestDrawPaintShader(t *testing.T) {
	c, bm := newTestCanvas(t, 5, 2)
	g, err := NewLinearGradient(Pt(0.5, 0), Pt(4.5, 0), []Color{Red, Blue}, TileClamp)
	require.NoError(t, err)

	c.DrawPaint(Paint{BlendMode: BlendSrc, Shader: g})
	want := []Pixel{pxRed, pxRB25, pxRB50, pxRB75, pxBlue}
	assert.Equal(t, want, bm.Row(0))
	assert.Equal(t, want, bm.Row(1))
}

func TestDrawRectShaderSpan(t *testing.T) {
	// The shader is sampled at the device position of each span.
	c, bm := newTestCanvas(t, 5, 1)
	g, err := NewLinearGradient(Pt(0.5, 0), Pt(4.5, 0), []Color{Red, Blue}, TileClamp)
	require.NoError(t, err)

	c.DrawRect(RectLTRB(2, 0, 4, 1), NewPaint(Black).WithShader(g))
	assert.Equal(t, []Pixel{0, 0, pxRB50, pxRB75, 0}, bm.Row(0))
}

func TestDrawPathStar(t *testing.T) {
	c, bm := newTestCanvas(t, 100, 100)
	path := NewPath()
	for i := range 5 {
		a := -math.Pi/2 + float64(i)*4*math.Pi/5
		x, y := 50+40*math.Cos(a), 50+40*math.Sin(a)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	c.DrawPath(path, NewPaint(Red))

	assert.Equal(t, pxRed, bm.PixelAt(50, 50), "nonzero fills the center")
	assert.Equal(t, pxRed, bm.PixelAt(50, 15), "top tip")
	assert.Equal(t, Pixel(0), bm.PixelAt(5, 5))
	assert.Equal(t, Pixel(0), bm.PixelAt(50, 95))
}

func TestDrawPathCircle(t *testing.T) {
	c, bm := newTestCanvas(t, 64, 64)
	c.DrawPath(NewPath().AddCircle(Pt(32, 32), 20, Clockwise), NewPaint(Red))

	assert.InDelta(t, math.Pi*20*20, float64(countPixels(bm, pxRed)), 60)
	assert.Equal(t, pxRed, bm.PixelAt(32, 32))
	assert.Equal(t, pxRed, bm.PixelAt(13, 32))
	assert.Equal(t, Pixel(0), bm.PixelAt(11, 32))
	assert.Equal(t, Pixel(0), bm.PixelAt(16, 16), "corner of the bounding box")
}

func TestDrawPathHole(t *testing.T) {
	c, bm := newTestCanvas(t, 10, 10)
	path := NewPath().
		AddRect(RectWH(10, 10), Clockwise).
		AddRect(RectLTRB(3, 3, 7, 7), CounterClockwise)
	c.DrawPath(path, NewPaint(Red))

	assert.Equal(t, 100-16, countPixels(bm, pxRed))
	assert.Equal(t, Pixel(0), bm.PixelAt(5, 5))
}

func TestDrawPathStrokeLine(t *testing.T) {
	c, bm := newTestCanvas(t, 20, 20)
	path := NewPath().AddStrokeLine(Pt(4, 10), Pt(16, 10), 4, true)
	c.DrawPath(path, NewPaint(Red))

	assert.Equal(t, pxRed, bm.PixelAt(10, 9))
	assert.Equal(t, pxRed, bm.PixelAt(2, 10), "round cap")
	assert.Equal(t, pxRed, bm.PixelAt(17, 10), "round cap")
	assert.Equal(t, Pixel(0), bm.PixelAt(10, 13))
}

func TestDrawPathEmpty(t *testing.T) {
	c, bm := newTestCanvas(t, 4, 4)
	c.DrawPath(nil, NewPaint(Red))
	c.DrawPath(NewPath(), NewPaint(Red))
	c.DrawPath(NewPath().MoveTo(1, 1), NewPaint(Red))
	assert.Equal(t, 16, countPixels(bm, 0))
}

func TestConcurrentCanvases(t *testing.T) {
	done := make(chan *Bitmap)
	for range 4 {
		go func() {
			bm := NewBitmap(16, 16)
			c, err := NewCanvas(bm)
			if err == nil {
				c.DrawPath(NewPath().AddCircle(Pt(8, 8), 6, Clockwise), NewPaint(Red))
			}
			done <- bm
		}()
	}
	var first *Bitmap
	for range 4 {
		bm := <-done
		if first == nil {
			first = bm
			continue
		}
		assert.Equal(t, first.Pixels, bm.Pixels)
	}
}
