package forge

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the structured logging facility spec.md §9 names as an
// external collaborator ("levels {trace, debug, info, warn, error}").
// No corpus repo depends on a third-party structured logging library
// (zerolog/zap/logrus), so this is built on stdlib log/slog — the
// same choice rivaas-dev-rivaas's own logging package makes — with a
// rotating file sink borrowed from arkd0ng-go-utils's dependency on
// lumberjack.
type Logger struct {
	*slog.Logger
}

// LevelTrace is modeled as slog level -8 (one step below Debug),
// since slog's built-in levels stop at Debug and spec.md's taxonomy
// names trace as the finest level.
const LevelTrace = slog.Level(-8)

// NewLogger builds a Logger writing to both stderr and a rotating
// file at logPath (pass "" to disable file rotation and log to
// stderr only), filtered at the given level name ("trace", "debug",
// "info", "warn", "error" — matching spec.md §6's LOG_LEVEL/RUST_LOG
// input).
func NewLogger(levelName, logPath string) *Logger {
	level := parseLevel(levelName)

	var w io.Writer = os.Stderr
	if logPath != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler)}
}

func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Trace logs at LevelTrace.
func (l *Logger) Trace(msg string, args ...any) {
	l.Log(context.Background(), LevelTrace, msg, args...)
}
