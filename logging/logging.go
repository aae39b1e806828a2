package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/0xalexb/hjarta-settings/setting"
)

// Level is the "log.level" setting: debug, info, warn (or warning) or error, in any case.
//
//nolint:gochecknoglobals // settings are declared once.
var Level = setting.New[slog.Level]("log.level", ParseLevel, setting.Literal("info"))

// ParseLevel parses a log level name. It is the parser of the Level setting.
func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", raw)
	}
}

// NewLogger creates a new slog.Logger with JSON handler writing to w.
func NewLogger(level slog.Level, w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

// FromLookup creates a logger whose level is resolved from lookup.
func FromLookup(lookup setting.Lookup, w io.Writer) (*slog.Logger, error) {
	level, err := Level.Apply(lookup)
	if err != nil {
		return nil, fmt.Errorf("resolving log level: %w", err)
	}

	return NewLogger(level, w), nil
}
