package swr

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so disabled calls
// never build their attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger returns the default silent logger.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the package logger. Canvases on other goroutines read it
// while SetLogger replaces it.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the package logger. By default swr produces no log
// output. Canvases created without [WithLogger] pick up the logger that is
// current when they log, so SetLogger also affects existing canvases.
//
// A nil logger restores the silent default. SetLogger may be called from
// any goroutine.
//
// Levels in use:
//   - [slog.LevelDebug]: skipped draws and ignored mesh input
//   - [slog.LevelWarn]: misuse that is tolerated, such as an unbalanced Restore
//
// Example:
//
//	swr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger. It never returns nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
