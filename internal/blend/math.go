// Package blend provides fixed-point helpers for compositing packed
// premultiplied ARGB pixels.
//
// A pixel is a uint32 laid out as 0xAARRGGBB. The div255 family rounds to
// nearest without a division:
//
//	x += 128
//	(x + x>>8) >> 8
//
// This is exact for every product of two bytes.
//
// References:
//   - Jim Blinn, "Three Wrongs Make a Right", IEEE CG&A 1995
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

const (
	shiftA = 24
	shiftR = 16
	shiftG = 8
	shiftB = 0
)

// Lane masks for the widened representation produced by expand.
const (
	lane128 uint64 = 0x0080_0080_0080_0080
	laneFF  uint64 = 0x00FF_00FF_00FF_00FF
)

// Div255 divides x by 255, rounding to nearest.
func Div255(x uint32) uint32 {
	x += 128
	return (x + x>>8) >> 8
}

// Alpha returns the alpha channel of p.
func Alpha(p uint32) uint32 { return p >> shiftA & 0xFF }

// Pack assembles a pixel from premultiplied channels. Callers guarantee
// every channel is at most 255 and r, g, b do not exceed a.
func Pack(a, r, g, b uint32) uint32 {
	return a<<shiftA | r<<shiftR | g<<shiftG | b<<shiftB
}

// Unpack splits p into its four channels.
func Unpack(p uint32) (a, r, g, b uint32) {
	return p >> shiftA & 0xFF, p >> shiftR & 0xFF, p >> shiftG & 0xFF, p >> shiftB & 0xFF
}

// expand turns 0xAARRGGBB into 0x00AA_00GG_00RR_00BB so each channel owns a
// 16-bit lane.
func expand(x uint32) uint64 {
	hi := uint64(x & 0xFF00FF00) // A and G
	lo := uint64(x & 0x00FF00FF) // R and B
	return hi<<24 | lo
}

// compact is the inverse of expand once every lane holds a byte.
func compact(x uint64) uint32 {
	return uint32(x>>24&0xFF00FF00) | uint32(x&0x00FF00FF)
}

// mulWide multiplies all four channels of p by s in one 64-bit multiply.
// The lanes stay separate as long as s <= 255.
func mulWide(p uint32, s uint32) uint64 {
	return expand(p) * uint64(s)
}

// div255Wide applies Div255 to every lane of x and packs the result.
func div255Wide(x uint64) uint32 {
	x += lane128
	x += (x >> 8) & laneFF
	x >>= 8
	return compact(x)
}

// MulDiv255 scales every channel of p by s/255, rounding to nearest.
func MulDiv255(p uint32, s uint32) uint32 {
	return div255Wide(mulWide(p, s))
}

// Mul multiplies two pixels channel by channel, normalised by 255.
func Mul(p, q uint32) uint32 {
	pa, pr, pg, pb := Unpack(p)
	qa, qr, qg, qb := Unpack(q)
	return Pack(Div255(pa*qa), Div255(pr*qr), Div255(pg*qg), Div255(pb*qb))
}
