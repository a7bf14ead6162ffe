// Package logging configures the leveled logger shared by the binaries.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

var levelNames = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// ParseLevel returns the level named by str. Unknown names give info.
func ParseLevel(str string) slog.Level {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(str))]
	if !ok {
		return slog.LevelInfo
	}
	return l
}

func New(w io.Writer, level string) *slog.Logger {
	opts := slog.HandlerOptions{
		Level: ParseLevel(level),
	}
	return slog.New(slog.NewTextHandler(w, &opts))
}

// Discard returns a logger dropping everything, for tests.
func Discard() *slog.Logger {
	return New(io.Discard, "error")
}
