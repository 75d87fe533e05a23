package swr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square8 = [4]Point{{0, 0}, {8, 0}, {8, 8}, {0, 8}}

func TestDrawMeshSharedDiagonal(t *testing.T) {
	c, bm := newTestCanvas(t, 8, 8)
	half := ARGB(0.5, 1, 0, 0)
	colors := []Color{half, half, half, half}
	// Half-transparent, so a pixel blended twice would be darker.
	c.DrawMesh(square8[:], colors, nil, quadIndices, NewPaint(Black))
	assert.Equal(t, 64, countPixels(bm, 0x80800000), "shared diagonal is covered exactly once")
}

func TestDrawMeshWithoutAttributes(t *testing.T) {
	var buf bytes.Buffer
	c, bm := newTestCanvas(t, 8, 8, WithLogger(bufferLogger(&buf)))

	c.DrawMesh([]Point{{0, 0}, {4, 0}, {0, 4}}, nil, nil, []int{0, 1, 2}, NewPaint(Red))
	assert.Equal(t, 64, countPixels(bm, 0), "nothing to shade")
	assert.Contains(t, buf.String(), "no colors or texture coordinates")

	// Texture coordinates need a paint shader.
	texs := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	c.DrawMesh(square8[:], nil, texs, quadIndices, NewPaint(Red))
	assert.Equal(t, 64, countPixels(bm, 0))
}

func TestMeshShaderNilInner(t *testing.T) {
	pts := [3]Point{{0, 0}, {4, 0}, {0, 4}}
	texs := []Point{{0, 0}, {1, 0}, {0, 1}}
	_, err := meshShader(nil, pts, nil, texs, [3]int{0, 1, 2})
	assert.ErrorIs(t, err, ErrNilShader)

	_, err = meshShader(nil, pts, []Color{Red, Green, Blue}, texs, [3]int{0, 1, 2})
	assert.ErrorIs(t, err, ErrNilShader)
}

func TestDrawMeshColors(t *testing.T) {
	c, bm := newTestCanvas(t, 8, 8)
	verts := []Point{{0, 0}, {8, 0}, {0, 8}}
	colors := []Color{Red, Green, Blue}
	c.DrawMesh(verts, colors, nil, []int{0, 1, 2}, NewPaint(Black))

	corner := bm.PixelAt(0, 0)
	assert.Equal(t, uint8(0xFF), corner.A())
	assert.Greater(t, corner.R(), corner.G())
	assert.Greater(t, corner.R(), corner.B())

	right := bm.PixelAt(6, 0)
	assert.Greater(t, right.G(), right.R())

	assert.Equal(t, Pixel(0), bm.PixelAt(7, 7), "outside the triangle")
}

func TestDrawMeshTextured(t *testing.T) {
	c, bm := newTestCanvas(t, 4, 4)
	sh, err := NewBitmapShader(checker(), Identity(), TileClamp)
	require.NoError(t, err)

	verts := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	texs := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	c.DrawMesh(verts, nil, texs, quadIndices, NewPaint(Black).WithShader(sh))

	assert.Equal(t, pxRed, bm.PixelAt(0, 0))
	assert.Equal(t, pxGreen, bm.PixelAt(3, 0))
	assert.Equal(t, pxBlue, bm.PixelAt(0, 3))
	assert.Equal(t, pxWhite, bm.PixelAt(3, 3))
	assert.Equal(t, 4, countPixels(bm, pxGreen))
}

func TestDrawMeshColorsAndTexture(t *testing.T) {
	c, bm := newTestCanvas(t, 4, 4)
	sh, err := NewBitmapShader(checker(), Identity(), TileClamp)
	require.NoError(t, err)

	verts := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	texs := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	half := ARGB(0.5, 1, 1, 1)
	colors := []Color{half, half, half, half}
	c.DrawMesh(verts, colors, texs, quadIndices, Paint{BlendMode: BlendSrc, Shader: sh})

	// White texels modulated by half-transparent white.
	assert.Equal(t, Pixel(0x80808080), bm.PixelAt(3, 3))
	assert.Equal(t, Pixel(0x80800000), bm.PixelAt(0, 0))
}

func TestDrawMeshBadIndices(t *testing.T) {
	var buf bytes.Buffer
	c, bm := newTestCanvas(t, 8, 8, WithLogger(bufferLogger(&buf)))

	verts := square8[:]
	colors := []Color{Red, Red, Red, Red}
	c.DrawMesh(verts, colors, nil, []int{0, 1, 9, 0, 1, -1, 0, 1}, NewPaint(Red))
	assert.Equal(t, 64, countPixels(bm, 0))
	assert.Contains(t, buf.String(), "mesh triangle skipped")

	c.DrawMesh(verts, []Color{Red}, nil, []int{0, 1, 2}, NewPaint(Red))
	assert.Equal(t, 64, countPixels(bm, 0), "colors shorter than the vertices")
}

func TestDrawQuadLevels(t *testing.T) {
	colors := []Color{Red, Red, Red, Red}

	base, baseBM := newTestCanvas(t, 8, 8)
	base.DrawQuad(square8, colors, nil, 0, NewPaint(Black))
	require.Equal(t, 64, countPixels(baseBM, pxRed))

	for _, level := range []int{1, 3, 6} {
		c, bm := newTestCanvas(t, 8, 8)
		c.DrawQuad(square8, colors, nil, level, NewPaint(Black))
		assert.Equal(t, baseBM.Pixels, bm.Pixels, "level %d", level)
	}

	neg, negBM := newTestCanvas(t, 8, 8)
	neg.DrawQuad(square8, colors, nil, -2, NewPaint(Black))
	assert.Equal(t, baseBM.Pixels, negBM.Pixels)
}

func TestDrawQuadInterpolatesColors(t *testing.T) {
	c, bm := newTestCanvas(t, 8, 8)
	colors := []Color{Red, Red, Blue, Blue}
	c.DrawQuad(square8, colors, nil, 3, Paint{BlendMode: BlendSrc})

	top, bottom := bm.PixelAt(4, 0), bm.PixelAt(4, 7)
	assert.Greater(t, top.R(), top.B())
	assert.Greater(t, bottom.B(), bottom.R())
	assert.Equal(t, bm.PixelAt(0, 4), bm.PixelAt(7, 4), "constant along rows")
}

func TestDrawQuadIgnoresShortAttributes(t *testing.T) {
	var buf bytes.Buffer
	c, bm := newTestCanvas(t, 8, 8, WithLogger(bufferLogger(&buf)))
	c.DrawQuad(square8, []Color{Blue}, []Point{{0, 0}}, 2, NewPaint(Red))

	assert.Equal(t, 64, countPixels(bm, 0), "no attributes left to shade")
	assert.Contains(t, buf.String(), "quad colors ignored")
	assert.Contains(t, buf.String(), "quad texture coordinates ignored")
}

func TestBilinearWeights(t *testing.T) {
	q := []Point{{0, 0}, {10, 0}, {10, 20}, {0, 20}}
	assert.Equal(t, Pt(0, 0), bilinear(0, 0).point(q))
	assert.Equal(t, Pt(10, 0), bilinear(1, 0).point(q))
	assert.Equal(t, Pt(10, 20), bilinear(1, 1).point(q))
	assert.Equal(t, Pt(0, 20), bilinear(0, 1).point(q))
	assert.Equal(t, Pt(5, 10), bilinear(0.5, 0.5).point(q))

	w := bilinear(0.25, 0.75)
	assert.InDelta(t, 1, w[0]+w[1]+w[2]+w[3], 1e-12)
}
