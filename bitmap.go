package swr

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Bitmap is a raster target of premultiplied ARGB pixels.
//
// Row y starts at Pixels[y*RowBytes/4]. RowBytes is a multiple of four and
// at least 4*Width. The bitmap does not own its pixels when created with
// [WrapPixels].
//
// Bitmap implements image.Image and draw.Image using color.RGBA, which is
// also premultiplied, so it can be encoded or composed with the standard
// image packages directly.
type Bitmap struct {
	Width    int
	Height   int
	RowBytes int
	Pixels   []Pixel
}

// NewBitmap allocates a transparent bitmap with tightly packed rows.
// Negative sizes are treated as zero.
func NewBitmap(width, height int) *Bitmap {
	width, height = max(width, 0), max(height, 0)
	return &Bitmap{
		Width:    width,
		Height:   height,
		RowBytes: width * 4,
		Pixels:   make([]Pixel, width*height),
	}
}

// WrapPixels returns a bitmap drawing into pixels, which the caller keeps
// owning. rowBytes is the distance between rows in bytes.
func WrapPixels(width, height, rowBytes int, pixels []Pixel) (*Bitmap, error) {
	bm := &Bitmap{Width: width, Height: height, RowBytes: rowBytes, Pixels: pixels}
	if err := bm.validate(); err != nil {
		return nil, err
	}
	return bm, nil
}

// validate checks that the bitmap's geometry is consistent with its pixels.
func (b *Bitmap) validate() error {
	if b == nil || b.Pixels == nil {
		return ErrNilBitmap
	}
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("swr: size %dx%d: %w", b.Width, b.Height, ErrBadStride)
	}
	if b.RowBytes%4 != 0 || b.RowBytes < 4*b.Width {
		return fmt.Errorf("swr: %d bytes per row for width %d: %w", b.RowBytes, b.Width, ErrBadStride)
	}
	if b.Height > 0 && len(b.Pixels) < (b.Height-1)*b.stride()+b.Width {
		return fmt.Errorf("swr: %d pixels for %dx%d with stride %d: %w",
			len(b.Pixels), b.Width, b.Height, b.RowBytes, ErrBadStride)
	}
	return nil
}

// stride returns the row stride in pixels.
func (b *Bitmap) stride() int { return b.RowBytes / 4 }

// Row returns the pixels of row y. The slice aliases the bitmap.
func (b *Bitmap) Row(y int) []Pixel {
	off := y * b.stride()
	return b.Pixels[off : off+b.Width]
}

// PixelAt returns the pixel at (x, y), or 0 outside the bitmap.
func (b *Bitmap) PixelAt(x, y int) Pixel {
	if !b.inside(x, y) {
		return 0
	}
	return b.Pixels[y*b.stride()+x]
}

// SetPixel stores p at (x, y). Writes outside the bitmap are ignored.
func (b *Bitmap) SetPixel(x, y int, p Pixel) {
	if b.inside(x, y) {
		b.Pixels[y*b.stride()+x] = p
	}
}

func (b *Bitmap) inside(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

// At implements image.Image.
func (b *Bitmap) At(x, y int) color.Color { return b.RGBAAt(x, y) }

// RGBAAt returns the premultiplied color at (x, y).
func (b *Bitmap) RGBAAt(x, y int) color.RGBA { return b.PixelAt(x, y).premul() }

// Set implements draw.Image.
func (b *Bitmap) Set(x, y int, c color.Color) {
	b.SetPixel(x, y, pixelFromRGBA(color.RGBAModel.Convert(c).(color.RGBA)))
}

// ToRGBA copies the bitmap into a new image.RGBA.
func (b *Bitmap) ToRGBA() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	for y := 0; y < b.Height; y++ {
		for x, p := range b.Row(y) {
			img.SetRGBA(x, y, p.premul())
		}
	}
	return img
}

// BitmapFromImage converts img into a new bitmap whose origin is img's
// top-left corner.
func BitmapFromImage(img image.Image) *Bitmap {
	r := img.Bounds()
	bm := NewBitmap(r.Dx(), r.Dy())
	draw.Copy(bm, image.Point{}, img, r, draw.Src, nil)
	return bm
}
