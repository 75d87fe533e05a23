package swr

import "errors"

// Errors returned by constructors. Callers compare with errors.Is.
var (
	// ErrNilBitmap is returned when a bitmap or its pixel slice is nil.
	ErrNilBitmap = errors.New("swr: nil bitmap")

	// ErrEmptyBitmap is returned when a bitmap has no pixels to sample.
	ErrEmptyBitmap = errors.New("swr: empty bitmap")

	// ErrBadStride is returned when a row stride is not a multiple of four
	// bytes, is shorter than a row, or the pixel slice is too short for it.
	ErrBadStride = errors.New("swr: invalid row stride")

	// ErrNoColors is returned by gradient constructors given no colors.
	ErrNoColors = errors.New("swr: gradient needs at least one color")

	// ErrNilShader is returned when a shader argument is nil.
	ErrNilShader = errors.New("swr: nil shader")
)
