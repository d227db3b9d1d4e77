package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalFormat(t *testing.T) {
	h := NewTerminalHandler(nil, false)
	r := slog.NewRecord(time.Date(2024, 3, 7, 9, 5, 1, 42e6, time.UTC), LevelWarn, "Truncating event filter", 0)
	r.Add("event", "Wide", "indexed", 4)
	want := "WARN [03-07|09:05:01.042] Truncating event filter                  event=Wide indexed=4\n"
	assert.Equal(t, want, string(h.format(nil, r, false)))
}

func TestLevelStrings(t *testing.T) {
	assert.Equal(t, "INFO ", LevelAlignedString(LevelInfo))
	assert.Equal(t, "TRACE", LevelAlignedString(LevelTrace))
	assert.Equal(t, "crit", LevelString(LevelCrit))
	assert.Equal(t, "unknown", LevelString(slog.Level(3)))
}

func TestFormatSlogValue(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{"plain", "plain"},
		{"two words", `"two words"`},
		{"a=b", `"a=b"`},
		{"line\nbreak", `"line\nbreak"`},
		{[]byte{0xa9, 0x05}, "0xa905"},
		{uint256.NewInt(1234567), "1234567"},
		{(*uint256.Int)(nil), "<nil>"},
		{-17, "-17"},
		{errors.New("bad input"), `"bad input"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(FormatSlogValue(slog.AnyValue(tt.value), nil)), "%v", tt.value)
	}
}

func TestTerminalHandlerLevelFilter(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandlerWithLevel(out, LevelInfo, false))
	l.Debug("hidden")
	l.Info("shown", "key", 1)
	require.NotContains(t, out.String(), "hidden")
	require.Contains(t, out.String(), "shown")
	require.True(t, strings.HasPrefix(out.String(), "INFO "))
	require.Contains(t, out.String(), "key=1")
}

func TestTerminalHandlerWith(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandler(out, false)).With("contract", "token")
	l.Info("Loaded", "functions", uint256.NewInt(7654321), "data", []byte{1, 2})
	require.Contains(t, out.String(), "contract=token functions=7654321 data=0x0102")
	require.Contains(t, out.String(), "logger_test.go:")
}

func TestJSONHandler(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(JSONHandlerWithLevel(out, LevelTrace))
	l.Trace("decoded", "value", uint256.NewInt(100))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "trace", rec["lvl"])
	assert.Equal(t, "decoded", rec["msg"])
	assert.Equal(t, "100", rec["value"])
	assert.Contains(t, rec, "t")
}

func TestLogfmtHandlerOddArgs(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(LogfmtHandler(out))
	l.Warn("odd", "key")
	require.Contains(t, out.String(), errorKey)
}

func TestRootDiscardsByDefault(t *testing.T) {
	require.False(t, Root().Enabled(context.Background(), LevelCrit))

	out := new(bytes.Buffer)
	prev := Root()
	defer SetDefault(prev)
	SetDefault(NewLogger(LogfmtHandlerWithLevel(out, slog.LevelDebug)))
	Debug("via root", "n", 3)
	require.Contains(t, out.String(), "n=3")
}

func TestFromLegacyLevel(t *testing.T) {
	assert.Equal(t, LevelCrit, FromLegacyLevel(0))
	assert.Equal(t, LevelInfo, FromLegacyLevel(3))
	assert.Equal(t, LevelTrace, FromLegacyLevel(5))
	assert.Equal(t, LevelTrace, FromLegacyLevel(9))
	assert.Equal(t, LevelCrit, FromLegacyLevel(-1))
}
