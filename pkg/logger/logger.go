// Package logger provides a process-wide structured logger for the steno
// engine, built directly from pkg/config's already-parsed LogConfig so
// the CLI and tests don't need to thread a logger through every
// constructor, and so level/sink resolution happens once, at the same
// flags/file/env precedence as every other setting.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"stenoengine/pkg/config"
)

// Log is the global structured logger. Init must be called once at startup;
// until then Log is nil and the helper functions below are no-ops.
var Log *slog.Logger

// Init builds the global slog logger from cfg: cfg.Level selects the
// minimum severity logged ("debug", "info", "warn", "error"; unrecognized
// values default to info) and cfg.Sink selects the destination ("stdout",
// or "file:<path>" — falling back to stdout if the file can't be opened).
func Init(cfg config.LogConfig) {
	Log = slog.New(slog.NewTextHandler(sinkWriter(cfg.Sink), &slog.HandlerOptions{Level: parseLevel(cfg.Level)}))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

func sinkWriter(sink string) *os.File {
	path, ok := strings.CutPrefix(sink, "file:")
	if !ok {
		return os.Stdout
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", path, err)
		return os.Stdout
	}
	return f
}

// log dispatches to Log at level, a no-op until Init has run.
func log(level slog.Level, msg string, args ...any) {
	if Log == nil {
		return
	}
	Log.Log(context.Background(), level, msg, args...)
}

// Debug logs with slog-style key/value pairs.
func Debug(msg string, args ...any) { log(slog.LevelDebug, msg, args...) }

// Info logs with slog-style key/value pairs.
func Info(msg string, args ...any) { log(slog.LevelInfo, msg, args...) }

// Warn logs with slog-style key/value pairs.
func Warn(msg string, args ...any) { log(slog.LevelWarn, msg, args...) }

// Error logs with slog-style key/value pairs.
func Error(msg string, args ...any) { log(slog.LevelError, msg, args...) }
