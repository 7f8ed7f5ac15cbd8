// Package logging installs the process-wide slog logger with a tint
// handler.
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup logs to stderr at LOG_LEVEL.
func Setup() *slog.Logger {
	return SetupWriter(os.Stderr, LevelFromEnv())
}

// SetupWriter logs to w at level and makes it the default logger.
// Colors are only used when w is stderr.
func SetupWriter(w io.Writer, level slog.Level) *slog.Logger {
	l := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  level == slog.LevelDebug,
		NoColor:    w != os.Stderr,
	}))
	slog.SetDefault(l)
	return l
}

func LevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv("LOG_LEVEL"))
}

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
