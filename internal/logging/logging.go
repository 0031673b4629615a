package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init creates and sets the package-level default slog logger. Logs always
// go to stderr so they never mix with report JSON on stdout. When stdout
// carries the report, logs use the JSON handler so both streams stay
// machine-readable; otherwise the text handler is used.
func Init(reportOnStdout bool, level slog.Level) {
	slog.SetDefault(slog.New(handler(os.Stderr, reportOnStdout, level)))
}

func handler(w io.Writer, jsonFormat bool, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if jsonFormat {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to
// slog.Level. Unknown strings default to LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
