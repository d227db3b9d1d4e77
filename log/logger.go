package log

import (
	"context"
	"log/slog"
	"math"
	"runtime"
	"time"
)

const errorKey = "LOG_ERROR"

const (
	levelMaxVerbosity slog.Level = math.MinInt
	LevelTrace        slog.Level = -8
	LevelDebug                   = slog.LevelDebug
	LevelInfo                    = slog.LevelInfo
	LevelWarn                    = slog.LevelWarn
	LevelError                   = slog.LevelError
	LevelCrit         slog.Level = 12
)

// verbosities maps the --verbosity flag values 0..5 onto levels.
var verbosities = []slog.Level{LevelCrit, LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}

// FromLegacyLevel converts a numeric verbosity (0=crit .. 5=trace) into a
// slog level. Values above trace saturate at trace, negative ones at crit.
func FromLegacyLevel(lvl int) slog.Level {
	switch {
	case lvl < 0:
		return LevelCrit
	case lvl >= len(verbosities):
		return LevelTrace
	}
	return verbosities[lvl]
}

var levelNames = map[slog.Level]string{
	LevelTrace: "trace",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelCrit:  "crit",
}

// LevelString returns the lower case name of a level.
func LevelString(l slog.Level) string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// LevelAlignedString returns the upper case name of a level padded to five
// characters.
func LevelAlignedString(l slog.Level) string {
	if name, ok := levelNames[l]; ok {
		return upperPadded(name)
	}
	return "unknown level"
}

func upperPadded(name string) string {
	b := []byte("     ")
	for i := 0; i < len(name); i++ {
		b[i] = name[i] - 'a' + 'A'
	}
	return string(b)
}

// A Logger writes key/value pairs to a Handler.
type Logger interface {
	// With returns a Logger that adds the given key/value pairs to every record.
	With(ctx ...any) Logger

	Log(level slog.Level, msg string, ctx ...any)
	Trace(msg string, ctx ...any)
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)

	// Write logs a message at the given level, attributing it to the caller
	// two frames up.
	Write(level slog.Level, msg string, attrs ...any)

	// Enabled reports whether l emits records at the given level.
	Enabled(ctx context.Context, level slog.Level) bool

	Handler() slog.Handler
}

type logger struct {
	inner *slog.Logger
}

// NewLogger returns a logger backed by the given handler.
func NewLogger(h slog.Handler) Logger {
	return &logger{slog.New(h)}
}

func (l *logger) Handler() slog.Handler {
	return l.inner.Handler()
}

func (l *logger) Write(level slog.Level, msg string, attrs ...any) {
	if !l.inner.Enabled(context.Background(), level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	if len(attrs)%2 != 0 {
		attrs = append(attrs, nil, errorKey, "Normalized odd number of arguments by adding nil")
	}
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(attrs...)
	l.inner.Handler().Handle(context.Background(), r)
}

func (l *logger) With(ctx ...any) Logger {
	return &logger{l.inner.With(ctx...)}
}

func (l *logger) Enabled(ctx context.Context, level slog.Level) bool {
	return l.inner.Enabled(ctx, level)
}

func (l *logger) Log(level slog.Level, msg string, ctx ...any) { l.Write(level, msg, ctx...) }
func (l *logger) Trace(msg string, ctx ...any)                 { l.Write(LevelTrace, msg, ctx...) }
func (l *logger) Debug(msg string, ctx ...any)                 { l.Write(LevelDebug, msg, ctx...) }
func (l *logger) Info(msg string, ctx ...any)                  { l.Write(LevelInfo, msg, ctx...) }
func (l *logger) Warn(msg string, ctx ...any)                  { l.Write(LevelWarn, msg, ctx...) }
func (l *logger) Error(msg string, ctx ...any)                 { l.Write(LevelError, msg, ctx...) }
