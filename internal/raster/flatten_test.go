package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentCounts(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"straight quad", QuadSegments(Point{0, 0}, Point{5, 5}, Point{10, 10}), 1},
		{"arch quad", QuadSegments(Point{0, 0}, Point{50, 100}, Point{100, 0}), 15},
		{"straight cubic", CubicSegments(Point{0, 0}, Point{1, 1}, Point{2, 2}, Point{3, 3}), 1},
		{"arch cubic", CubicSegments(Point{0, 0}, Point{0, 100}, Point{100, 100}, Point{100, 0}), 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestEval(t *testing.T) {
	p0, p1, p2, p3 := Point{0, 0}, Point{0, 10}, Point{10, 10}, Point{10, 0}

	assert.Equal(t, p0, EvalQuad(p0, p1, p2, 0))
	assert.Equal(t, p2, EvalQuad(p0, p1, p2, 1))
	assert.Equal(t, Point{2.5, 7.5}, EvalQuad(p0, p1, p2, 0.5))

	assert.Equal(t, p0, EvalCubic(p0, p1, p2, p3, 0))
	assert.Equal(t, p3, EvalCubic(p0, p1, p2, p3, 1))
	assert.Equal(t, Point{5, 7.5}, EvalCubic(p0, p1, p2, p3, 0.5))
}

func TestAppendQuadIsContinuous(t *testing.T) {
	// y = 100t, so every segment spans distinct rows.
	p0, p1, p2 := Point{0, 0}, Point{0, 50}, Point{50, 100}
	edges := AppendQuad(nil, p0, p1, p2)

	require.Len(t, edges, 8)
	assert.Equal(t, p0, edges[0].Top)
	assert.Equal(t, p2, edges[len(edges)-1].Bottom)
	for i := 1; i < len(edges); i++ {
		assert.Equal(t, edges[i-1].Bottom, edges[i].Top, "joint %d", i)
	}
	for _, e := range edges {
		assert.Equal(t, -1, e.Winding)
	}
}

func TestAppendCubicEndpoints(t *testing.T) {
	p0, p1, p2, p3 := Point{0, 100}, Point{10, 60}, Point{20, 40}, Point{40, 0}
	edges := AppendCubic(nil, p0, p1, p2, p3)

	require.NotEmpty(t, edges)
	// Drawn bottom to top, so every edge is flipped.
	assert.Equal(t, p0, edges[0].Bottom)
	assert.Equal(t, p3, edges[len(edges)-1].Top)
	for _, e := range edges {
		assert.Equal(t, 1, e.Winding)
	}
}
