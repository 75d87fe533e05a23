package swr

import "math"

// colorStops holds evenly spaced gradient colors.
type colorStops []Color

// at returns the color at t in [0, 1], interpolating linearly between the
// two neighbouring stops.
func (s colorStops) at(t float64) Color {
	pos := t * float64(len(s)-1)
	left := math.Floor(pos)
	right := math.Ceil(pos)
	return s[int(left)].Lerp(s[int(right)], pos-left)
}

// allTransparent reports whether every stop has zero alpha.
func (s colorStops) allTransparent() bool {
	for _, c := range s {
		if c.A != 0 {
			return false
		}
	}
	return true
}

// anyTransparent reports whether some stop has zero alpha.
func (s colorStops) anyTransparent() bool {
	for _, c := range s {
		if c.A == 0 {
			return true
		}
	}
	return false
}

// newStops validates and copies gradient colors. A single color yields a
// solid shader instead.
func newStops(colors []Color) (colorStops, Shader, error) {
	switch len(colors) {
	case 0:
		return nil, nil, ErrNoColors
	case 1:
		return nil, NewSolidShader(colors[0]), nil
	}
	return append(colorStops(nil), colors...), nil, nil
}
