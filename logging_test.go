package forge

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerRespectsLevel(t *testing.T) {
	logger := NewLogger("warn", "")
	if logger.Enabled(nil, slog.LevelInfo) {
		t.Error("expected info to be disabled at warn level")
	}
	if !logger.Enabled(nil, slog.LevelWarn) {
		t.Error("expected warn to be enabled at warn level")
	}
}

func TestLoggerWritesStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{Logger: slog.New(slog.NewTextHandler(&buf, nil))}
	logger.Info("connection accepted", "conn_id", "abc123")

	out := buf.String()
	if !strings.Contains(out, "connection accepted") || !strings.Contains(out, "conn_id=abc123") {
		t.Errorf("expected structured log line, got %q", out)
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if parseLevel("nonsense") != slog.LevelInfo {
		t.Error("expected unrecognized level names to default to info")
	}
	if parseLevel("trace") != LevelTrace {
		t.Error("expected trace to map to LevelTrace")
	}
}
