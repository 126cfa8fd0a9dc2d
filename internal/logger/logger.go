package logger

// Package logger builds the zerolog loggers shared by the GUI, the lookup
// pipeline and the CLI. Every component logs through a sub-logger carrying a
// "component" field.

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Field names
const (
	FieldComponent = "component"
)

// New creates a logger writing to w in the given format at the given level.
// Unknown levels fall back to info.
func New(w io.Writer, format, level string) zerolog.Logger {
	if format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// NewConsole creates a human-readable logger on stderr
func NewConsole(level string) zerolog.Logger {
	return New(os.Stderr, FormatConsole, level)
}

// Nop returns a disabled logger, used by tests and as a zero value
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel converts a config value to a zerolog level
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

// Component returns a sub-logger tagged with the component name
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str(FieldComponent, name).Logger()
}
