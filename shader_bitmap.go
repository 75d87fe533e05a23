package swr

// bitmapShader samples a bitmap with nearest-neighbour lookup. Its local
// space is the unit square, scaled to the bitmap's pixel size.
type bitmapShader struct {
	localSpace
	bm   *Bitmap
	mode TileMode
}

// NewBitmapShader returns a shader that paints bm placed by local: bitmap
// pixel (i, j) covers local [i, i+1)×[j, j+1). Outside the bitmap, mode
// decides what is sampled, independently along each axis.
//
// The shader reads bm on every draw; it does not copy the pixels.
func NewBitmapShader(bm *Bitmap, local Matrix, mode TileMode) (Shader, error) {
	if err := bm.validate(); err != nil {
		return nil, err
	}
	if bm.Width == 0 || bm.Height == 0 {
		return nil, ErrEmptyBitmap
	}
	w, h := float64(bm.Width), float64(bm.Height)
	return &bitmapShader{
		localSpace: localSpace{local: local.Multiply(Scale(w, h))},
		bm:         bm,
		mode:       mode,
	}, nil
}

// IsOpaque reports true when every pixel of the bitmap is fully
// transparent.
func (s *bitmapShader) IsOpaque() bool {
	for y := 0; y < s.bm.Height; y++ {
		for _, p := range s.bm.Row(y) {
			if p.A() != 0 {
				return false
			}
		}
	}
	return true
}

func (s *bitmapShader) SetContext(ctm Matrix) bool { return s.setContext(ctm) }

func (s *bitmapShader) ShadeRow(x, y int, row []Pixel) {
	p := s.start(x, y)
	d := s.step()
	for i := range row {
		ix := texel(s.mode.fold(p.X), s.bm.Width)
		iy := texel(s.mode.fold(p.Y), s.bm.Height)
		row[i] = s.bm.Pixels[iy*s.bm.stride()+ix]
		p = p.Add(d)
	}
}

// texel scales a folded coordinate in [0, 1] to a pixel index in [0, n).
func texel(t float64, n int) int {
	return min(int(t*float64(n)), n-1)
}
