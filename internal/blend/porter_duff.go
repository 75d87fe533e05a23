package blend

// Mode selects a Porter-Duff compositing operator.
//
// All operators work on premultiplied pixels. Each one short-circuits the
// cases where source or destination alpha is 0 or 255, which both avoids
// the multiply and keeps the result exact at the boundaries.
type Mode uint8

const (
	Clear   Mode = iota // 0
	Src                 // S
	Dst                 // D
	SrcOver             // S + D*(1-Sa)
	DstOver             // D + S*(1-Da)
	SrcIn               // S*Da
	DstIn               // D*Sa
	SrcOut              // S*(1-Da)
	DstOut              // D*(1-Sa)
	SrcATop             // S*Da + D*(1-Sa)
	DstATop             // D*Sa + S*(1-Da)
	Xor                 // S*(1-Da) + D*(1-Sa)

	modeCount
)

// Count is the number of compositing operators.
const Count = int(modeCount)

// Func composites src onto dst and returns the new destination pixel.
type Func func(src, dst uint32) uint32

var procs = [modeCount]Func{
	Clear:   blendClear,
	Src:     blendSrc,
	Dst:     blendDst,
	SrcOver: blendSrcOver,
	DstOver: blendDstOver,
	SrcIn:   blendSrcIn,
	DstIn:   blendDstIn,
	SrcOut:  blendSrcOut,
	DstOut:  blendDstOut,
	SrcATop: blendSrcATop,
	DstATop: blendDstATop,
	Xor:     blendXor,
}

// Proc returns the operator for m. Unknown modes fall back to SrcOver.
func Proc(m Mode) Func {
	if m >= modeCount {
		return blendSrcOver
	}
	return procs[m]
}

// Blend composites a single pixel.
func Blend(m Mode, s, d uint32) uint32 {
	return Proc(m)(s, d)
}

// Row composites src[i] onto dst[i] for every i in dst.
// src must be at least as long as dst.
func Row[P ~uint32](m Mode, dst, src []P) {
	f := Proc(m)
	src = src[:len(dst)]
	for i, d := range dst {
		dst[i] = P(f(uint32(src[i]), uint32(d)))
	}
}

// RowSolid composites the constant pixel s onto every pixel of dst.
func RowSolid[P ~uint32](m Mode, dst []P, s P) {
	switch m {
	case Dst:
		return
	case Clear:
		for i := range dst {
			dst[i] = 0
		}
		return
	case Src:
		for i := range dst {
			dst[i] = s
		}
		return
	}
	f := Proc(m)
	for i, d := range dst {
		dst[i] = P(f(uint32(s), uint32(d)))
	}
}

func blendClear(_, _ uint32) uint32 { return 0 }

func blendSrc(s, _ uint32) uint32 { return s }

func blendDst(_, d uint32) uint32 { return d }

func blendSrcOver(s, d uint32) uint32 {
	switch sa := Alpha(s); sa {
	case 0:
		return d
	case 255:
		return s
	default:
		return s + MulDiv255(d, 255-sa)
	}
}

func blendDstOver(s, d uint32) uint32 {
	switch da := Alpha(d); da {
	case 0:
		return s
	case 255:
		return d
	default:
		return d + MulDiv255(s, 255-da)
	}
}

func blendSrcIn(s, d uint32) uint32 {
	switch da := Alpha(d); da {
	case 0:
		return 0
	case 255:
		return s
	default:
		return MulDiv255(s, da)
	}
}

func blendDstIn(s, d uint32) uint32 {
	switch sa := Alpha(s); sa {
	case 0:
		return 0
	case 255:
		return d
	default:
		return MulDiv255(d, sa)
	}
}

func blendSrcOut(s, d uint32) uint32 {
	switch da := Alpha(d); da {
	case 0:
		return s
	case 255:
		return 0
	default:
		return MulDiv255(s, 255-da)
	}
}

func blendDstOut(s, d uint32) uint32 {
	switch sa := Alpha(s); sa {
	case 0:
		return d
	case 255:
		return 0
	default:
		return MulDiv255(d, 255-sa)
	}
}

func blendSrcATop(s, d uint32) uint32 {
	sa, da := Alpha(s), Alpha(d)
	switch {
	case sa == 0:
		// S is all zero, leaving D.
		return d
	case sa == 255:
		return blendSrcIn(s, d)
	case da == 0:
		return blendDstOut(s, d)
	case da == 255:
		return blendSrcOver(s, d)
	}
	return div255Wide(mulWide(s, da) + mulWide(d, 255-sa))
}

func blendDstATop(s, d uint32) uint32 {
	sa, da := Alpha(s), Alpha(d)
	switch {
	case sa == 0:
		return blendSrcOut(s, d)
	case sa == 255:
		return blendDstOver(s, d)
	case da == 0:
		// D is all zero, leaving S.
		return s
	case da == 255:
		return blendDstIn(s, d)
	}
	return div255Wide(mulWide(d, sa) + mulWide(s, 255-da))
}

func blendXor(s, d uint32) uint32 {
	sa, da := Alpha(s), Alpha(d)
	switch {
	case sa == 0:
		return blendDstOver(s, d)
	case sa == 255:
		return blendSrcOut(s, d)
	case da == 255:
		return blendDstOut(s, d)
	case da == 0:
		return blendSrcOver(s, d)
	}
	return div255Wide(mulWide(d, 255-sa) + mulWide(s, 255-da))
}
