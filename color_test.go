package swr

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorPixel(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want Pixel
	}{
		{"opaque red", Red, 0xFFFF0000},
		{"transparent", Transparent, 0},
		{"half white", ARGB(0.5, 1, 1, 1), 0x80808080},
		{"half blue", ARGB(0.5, 0, 0, 1), 0x80000080},
		{"out of range pinned", ARGB(2, -1, 0.5, 3), 0xFF0080FF},
		{"transparent ignores channels", ARGB(0, 1, 1, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Pixel()
			assert.Equal(t, tt.want, got, "got %#08x", uint32(got))
			assert.LessOrEqual(t, got.R(), got.A())
			assert.LessOrEqual(t, got.G(), got.A())
			assert.LessOrEqual(t, got.B(), got.A())
		})
	}
}

func TestPixelChannels(t *testing.T) {
	p := PackARGB(0xC0, 0x10, 0x20, 0x30)
	assert.Equal(t, Pixel(0xC0102030), p)
	assert.Equal(t, uint8(0xC0), p.A())
	assert.Equal(t, uint8(0x10), p.R())
	assert.Equal(t, uint8(0x20), p.G())
	assert.Equal(t, uint8(0x30), p.B())

	r, g, b, a := p.RGBA()
	assert.Equal(t, [4]uint32{0x1010, 0x2020, 0x3030, 0xC0C0}, [4]uint32{r, g, b, a})
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	assert.InDelta(t, 128.0/255, c.A, 1e-3)
	assert.InDelta(t, 1, c.R, 1e-3)
	assert.Zero(t, c.G)

	assert.Equal(t, Transparent, FromColor(color.RGBA{}))
}

func TestHex(t *testing.T) {
	tests := []struct {
		hex  string
		want Pixel
	}{
		{"#F00", 0xFFFF0000},
		{"00ff00", 0xFF00FF00},
		{"#0000FF80", 0x80000080},
		{"#12345", 0xFF000000},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			assert.Equal(t, tt.want, Hex(tt.hex).Pixel())
		})
	}
}

func TestColorLerp(t *testing.T) {
	got := Red.Lerp(Blue, 0.5)
	assert.Equal(t, ARGB(1, 0.5, 0, 0.5), got)
	assert.True(t, got.IsOpaque())
	assert.False(t, ARGB(0.99, 1, 1, 1).IsOpaque())
}

func TestColorWithAlpha(t *testing.T) {
	c := Red.WithAlpha(0.5)
	assert.Equal(t, ARGB(0.5, 1, 0, 0), c)
	assert.Equal(t, 1.0, Red.A, "receiver is unchanged")
}

func TestHSL(t *testing.T) {
	assert.Equal(t, Pixel(0xFFFF0000), HSL(0, 1, 0.5).Pixel())
	assert.Equal(t, Pixel(0xFF0000FF), HSL(240, 1, 0.5).Pixel())
	assert.Equal(t, Pixel(0xFF0000FF), HSL(-120, 1, 0.5).Pixel())
}
