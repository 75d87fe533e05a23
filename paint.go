package swr

import "github.com/gogpu/swr/internal/blend"

// BlendMode selects the Porter-Duff operator used to composite a draw onto
// the destination. The zero value is BlendClear; use [NewPaint] or set
// BlendSrcOver explicitly for normal painting.
type BlendMode uint8

const (
	BlendClear   BlendMode = BlendMode(blend.Clear)   // 0
	BlendSrc     BlendMode = BlendMode(blend.Src)     // S
	BlendDst     BlendMode = BlendMode(blend.Dst)     // D
	BlendSrcOver BlendMode = BlendMode(blend.SrcOver) // S + (1 - Sa)*D
	BlendDstOver BlendMode = BlendMode(blend.DstOver) // D + (1 - Da)*S
	BlendSrcIn   BlendMode = BlendMode(blend.SrcIn)   // Da * S
	BlendDstIn   BlendMode = BlendMode(blend.DstIn)   // Sa * D
	BlendSrcOut  BlendMode = BlendMode(blend.SrcOut)  // (1 - Da)*S
	BlendDstOut  BlendMode = BlendMode(blend.DstOut)  // (1 - Sa)*D
	BlendSrcATop BlendMode = BlendMode(blend.SrcATop) // Da*S + (1 - Sa)*D
	BlendDstATop BlendMode = BlendMode(blend.DstATop) // Sa*D + (1 - Da)*S
	BlendXor     BlendMode = BlendMode(blend.Xor)     // (1 - Sa)*D + (1 - Da)*S
)

var blendModeNames = [...]string{
	BlendClear:   "Clear",
	BlendSrc:     "Src",
	BlendDst:     "Dst",
	BlendSrcOver: "SrcOver",
	BlendDstOver: "DstOver",
	BlendSrcIn:   "SrcIn",
	BlendDstIn:   "DstIn",
	BlendSrcOut:  "SrcOut",
	BlendDstOut:  "DstOut",
	BlendSrcATop: "SrcATop",
	BlendDstATop: "DstATop",
	BlendXor:     "Xor",
}

// String returns the blend mode name.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "Unknown"
}

// Blend composites the premultiplied pixel src onto dst.
// Unknown modes behave like BlendSrcOver.
func (m BlendMode) Blend(src, dst Pixel) Pixel {
	return Pixel(blend.Blend(blend.Mode(m), uint32(src), uint32(dst)))
}

// Paint holds what a draw call paints with: a color or a shader, and the
// blend mode used to composite it.
//
// When Shader is non-nil it supplies the source pixels and Color is
// ignored. The Paint does not own the Shader.
//
// The zero Paint uses BlendClear; start from NewPaint or DefaultPaint.
type Paint struct {
	Color     Color
	BlendMode BlendMode
	Shader    Shader
}

// NewPaint returns a paint with the given color and BlendSrcOver.
func NewPaint(c Color) Paint {
	return Paint{Color: c, BlendMode: BlendSrcOver}
}

// DefaultPaint returns opaque black with BlendSrcOver.
func DefaultPaint() Paint {
	return NewPaint(Black)
}

// WithShader returns a copy of p painting with s.
func (p Paint) WithShader(s Shader) Paint {
	p.Shader = s
	return p
}

// WithBlendMode returns a copy of p using mode m.
func (p Paint) WithBlendMode(m BlendMode) Paint {
	p.BlendMode = m
	return p
}
