package log

import (
	"log/slog"
	"sync/atomic"
)

var root atomic.Pointer[Logger]

// Libraries stay silent until a program installs a handler.
func init() {
	l := NewLogger(DiscardHandler())
	root.Store(&l)
}

// SetDefault replaces the package level logger.
func SetDefault(l Logger) {
	root.Store(&l)
	if lg, ok := l.(*logger); ok {
		slog.SetDefault(lg.inner)
	}
}

// Root returns the package level logger.
func Root() Logger {
	return *root.Load()
}

// The package level helpers call Write directly so that every path has the
// same call depth and the recorded source points at client code.

// Trace logs at the trace level on the root logger.
//
//	log.Trace("Decoded output", "function", name, "values", n)
func Trace(msg string, ctx ...any) { Root().Write(LevelTrace, msg, ctx...) }

// Debug logs at the debug level on the root logger.
func Debug(msg string, ctx ...any) { Root().Write(LevelDebug, msg, ctx...) }

// Info logs at the info level on the root logger.
func Info(msg string, ctx ...any) { Root().Write(LevelInfo, msg, ctx...) }

// Warn logs at the warn level on the root logger.
func Warn(msg string, ctx ...any) { Root().Write(LevelWarn, msg, ctx...) }

// Error logs at the error level on the root logger.
func Error(msg string, ctx ...any) { Root().Write(LevelError, msg, ctx...) }
