// Package logger builds the zerolog logger shared by every component.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// New returns a logger writing JSON to stdout, or human-readable lines when console is set.
func New(level string, console bool) zerolog.Logger {
	return NewWithWriter(os.Stdout, level, console)
}

func NewWithWriter(out io.Writer, level string, console bool) zerolog.Logger {
	zerolog.TimeFieldFormat = consoleTimeFormat
	zerolog.ErrorFieldName = "err"

	if console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: consoleTimeFormat}
	}

	return zerolog.New(out).
		Level(ParseLevel(level, zerolog.InfoLevel)).
		With().
		Timestamp().
		Str("service", "shift-bot").
		Logger()
}

// ParseLevel maps a level name to zerolog, falling back to def on unknown input.
func ParseLevel(level string, def zerolog.Level) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return def
	}
}
