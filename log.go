package table

import (
	"io"
	"log/slog"
	"strings"
)

// Log level names accepted by NewLogger.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// NewLogger returns a JSON logger writing to w at the given level.
// Unknown levels fall back to INFO. Pass the result to WithLogger.
func NewLogger(w io.Writer, level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	return slog.New(slog.NewJSONHandler(w, opts)).With(slog.String("component", "table"))
}

// NopLogger returns a logger that drops everything.
func NopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// parseLevel converts a level name to slog.Level, case-insensitively.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevels lists the accepted level names.
func ValidLevels() []string {
	return []string{LevelDebug, LevelInfo, LevelWarn, LevelError}
}
