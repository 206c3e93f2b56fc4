package testpattern

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false, so build logging
// costs nothing until a logger is configured.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// fallbackLogger serves caches created without WithLogger.
var fallbackLogger atomic.Pointer[slog.Logger]

func init() {
	fallbackLogger.Store(newNopLogger())
}

// SetLogger configures the fallback logger of every Cache created without
// WithLogger. Pattern builds are silent until one of the two is set.
//
// SetLogger is safe for concurrent use. Pass nil to silence the fallback
// again.
//
// Records emitted by a Cache:
//   - [slog.LevelDebug]: "pattern built" with key and duration, "copy recycled"
//   - [slog.LevelWarn]: "build failed" with key and err
//
// A test suite usually scopes logging to its own cache:
//
//	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	fixtures := testpattern.NewCache(testpattern.WithLogger(slog.New(h)))
//
// or routes every cache through one logger:
//
//	testpattern.SetLogger(slog.New(h))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	fallbackLogger.Store(l)
}

// Logger returns the current package logger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return fallbackLogger.Load()
}

// cacheLogger returns l, or the fallback logger when l is nil.
func cacheLogger(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return fallbackLogger.Load()
}
