package gdmath

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false for all levels, so
// slog never builds the attributes of a disabled call.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nopHandler) WithGroup(string) slog.Handler           { return h }

var silent = slog.New(nopHandler{})

// current holds the installed logger; nil means silent.
var current atomic.Pointer[slog.Logger]

// SetLogger installs l as the destination for diagnostics from gdmath and
// package ffi. A nil l turns logging off again, which is also the initial
// state. It may be called at any time from any goroutine.
//
// Vector arithmetic never logs. Records are only emitted at the engine
// boundary:
//   - [slog.LevelWarn]: a nil type pointer or an undeclared axis tag was
//     rejected
//   - [slog.LevelDebug]: ffi.View mapped an engine buffer
//
// To see boundary rejections on stderr:
//
//	gdmath.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the installed logger, or a silent one. It never returns nil.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return silent
}
