package swr

// ChopQuadAt splits the quadratic src at t (0 < t < 1) with de Casteljau's
// algorithm. dst[0:3] is the 0..t half and dst[2:5] the t..1 half.
func ChopQuadAt(src [3]Point, t float64) [5]Point {
	var dst [5]Point
	dst[0] = src[0]
	dst[4] = src[2]
	dst[1] = src[0].Lerp(src[1], t)
	dst[3] = src[1].Lerp(src[2], t)
	dst[2] = dst[1].Lerp(dst[3], t)
	return dst
}

// ChopCubicAt splits the cubic src at t (0 < t < 1) with de Casteljau's
// algorithm. dst[0:4] is the 0..t half and dst[3:7] the t..1 half.
func ChopCubicAt(src [4]Point, t float64) [7]Point {
	var dst [7]Point
	dst[0] = src[0]
	dst[6] = src[3]

	dst[1] = src[0].Lerp(src[1], t)
	mid := src[1].Lerp(src[2], t)
	dst[5] = src[2].Lerp(src[3], t)

	dst[2] = dst[1].Lerp(mid, t)
	dst[4] = mid.Lerp(dst[5], t)
	dst[3] = dst[2].Lerp(dst[4], t)
	return dst
}
