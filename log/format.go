package log

import (
	"bytes"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/holiman/uint256"
)

const (
	timeFormat     = "2006-01-02T15:04:05-0700"
	termTimeFormat = "01-02|15:04:05.000"
	termMsgJust    = 40
)

var levelColors = map[slog.Level]string{
	LevelCrit:       "\x1b[35m",
	slog.LevelError: "\x1b[31m",
	slog.LevelWarn:  "\x1b[33m",
	slog.LevelInfo:  "\x1b[32m",
	slog.LevelDebug: "\x1b[36m",
	LevelTrace:      "\x1b[34m",
}

// TerminalStringer is implemented by values that have a shorter rendering
// for the console than their String method.
type TerminalStringer interface {
	TerminalString() string
}

// format renders a record as
//
//	LEVEL[01-02|15:04:05.000] file.go:12 message                 key=value ...
func (h *TerminalHandler) format(buf []byte, r slog.Record, usecolor bool) []byte {
	var color string
	if usecolor {
		color = levelColors[r.Level]
	}
	b := bytes.NewBuffer(buf)
	if color != "" {
		b.WriteString(color + LevelAlignedString(r.Level) + "\x1b[0m")
	} else {
		b.WriteString(LevelAlignedString(r.Level))
	}
	b.WriteByte('[')
	b.Write(r.Time.AppendFormat(b.AvailableBuffer(), termTimeFormat))
	b.WriteString("] ")
	if src := h.source(r); src != "" {
		b.WriteString(src + " ")
	}
	msg := escapeMessage(r.Message)
	b.WriteString(msg)

	if r.NumAttrs()+len(h.attrs) > 0 && len(msg) < termMsgJust {
		b.WriteString(strings.Repeat(" ", termMsgJust-len(msg)))
	}
	write := func(attr slog.Attr) bool {
		b.WriteByte(' ')
		key := appendEscapeString(nil, attr.Key)
		if color != "" {
			b.WriteString(color)
			b.Write(key)
			b.WriteString("\x1b[0m=")
		} else {
			b.Write(key)
			b.WriteByte('=')
		}
		b.Write(FormatSlogValue(attr.Value, b.AvailableBuffer()))
		return true
	}
	for _, attr := range h.attrs {
		write(attr)
	}
	r.Attrs(write)
	b.WriteByte('\n')
	return b.Bytes()
}

// FormatSlogValue formats a slog.Value for the terminal. Numbers are printed
// in full decimal and byte slices as 0x-prefixed hex.
func FormatSlogValue(v slog.Value, tmp []byte) []byte {
	switch v.Kind() {
	case slog.KindString:
		return appendEscapeString(tmp, v.String())
	case slog.KindInt64:
		return strconv.AppendInt(tmp, v.Int64(), 10)
	case slog.KindUint64:
		return strconv.AppendUint(tmp, v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.AppendFloat(tmp, v.Float64(), 'f', 3, 64)
	case slog.KindBool:
		return strconv.AppendBool(tmp, v.Bool())
	case slog.KindTime:
		return v.Time().AppendFormat(tmp, timeFormat)
	case slog.KindDuration:
		return appendEscapeString(tmp, v.Duration().String())
	}
	value := v.Any()
	if isNil(value) {
		return append(tmp, "<nil>"...)
	}
	switch v := value.(type) {
	case *uint256.Int:
		return append(tmp, v.Dec()...)
	case []byte:
		return fmt.Appendf(tmp, "%#x", v)
	case error:
		return appendEscapeString(tmp, v.Error())
	case TerminalStringer:
		return appendEscapeString(tmp, v.TerminalString())
	case fmt.Stringer:
		return appendEscapeString(tmp, v.String())
	}
	return appendEscapeString(tmp, fmt.Sprintf("%+v", value))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// appendEscapeString quotes s when it holds spaces, '=' or characters outside
// printable ASCII.
func appendEscapeString(dst []byte, s string) []byte {
	if strings.ContainsFunc(s, func(r rune) bool { return r <= '"' || r > '~' || r == '=' }) {
		if strings.ContainsFunc(s, func(r rune) bool { return r < ' ' || r == '"' || r > '~' }) {
			return strconv.AppendQuote(dst, s)
		}
		return append(append(append(dst, '"'), s...), '"')
	}
	return append(dst, s...)
}

// escapeMessage is like appendEscapeString but leaves spaces and line breaks
// alone so that multi-line messages stay readable.
func escapeMessage(s string) string {
	needsQuoting := strings.ContainsFunc(s, func(r rune) bool {
		if r == '\r' || r == '\n' || r == '\t' {
			return false
		}
		return r < ' ' || r > '~' || r == '='
	})
	if needsQuoting {
		return strconv.Quote(s)
	}
	return s
}

func logfmtTime(t time.Time) string {
	return t.Format(timeFormat)
}
