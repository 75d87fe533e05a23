package swr

import "log/slog"

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	c, err := swr.NewCanvas(bm,
//	    swr.WithLogger(slog.Default()),
//	    swr.WithInitialMatrix(swr.Scale(2, 2)))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	logger *slog.Logger
	matrix Matrix
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		logger: nil, // package logger, resolved on every log call
		matrix: Identity(),
	}
}

// WithLogger sets a logger for this canvas only. A nil logger keeps the
// package logger configured with [SetLogger].
func WithLogger(l *slog.Logger) CanvasOption {
	return func(o *canvasOptions) {
		o.logger = l
	}
}

// WithInitialMatrix sets the base transform. Restore never pops below it.
func WithInitialMatrix(m Matrix) CanvasOption {
	return func(o *canvasOptions) {
		o.matrix = m
	}
}
