package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("%q: level mismatch: want %s, got %s", in, want, got)
		}
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")
	log.Info("hidden")
	log.Warn("dataset issue", "line", 2)
	str := buf.String()
	if strings.Contains(str, "hidden") {
		t.Errorf("info message should be filtered: %s", str)
	}
	if !strings.Contains(str, "dataset issue") || !strings.Contains(str, "line=2") {
		t.Errorf("warn message should be logged: %s", str)
	}
}
