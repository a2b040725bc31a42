// Package logging configures structured logging for the server: colored
// output with tint in development, JSON everywhere else.
//
// Usage:
//
//	logging.Setup(true, "debug")   // colored, DEBUG level
//	logging.Setup(false, "info")   // JSON, INFO level
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the default logger. level is one of debug, info, warn or
// error; anything else means info.
func Setup(development bool, level string) {
	slog.SetDefault(New(os.Stderr, development, ParseLevel(level)))
}

// New builds a logger writing to w.
func New(w io.Writer, development bool, level slog.Level) *slog.Logger {
	if development {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
