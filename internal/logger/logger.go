// Package logger builds the zerolog.Logger shared by the hello function.
//
// Output is JSON, one entry per line, which CloudWatch Logs stores as-is.
// Entries carry a "service" field and a timestamp. Request-scoped loggers
// are derived from it with zerolog's With() and travel in the context.
package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Service is the value of the "service" field on every entry.
const Service = "hello-service"

// New returns a logger writing to w at the given level. See ParseLevel for
// the accepted level names.
func New(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Str("service", Service).
		Timestamp().
		Logger()
}

// ParseLevel maps a LOG_LEVEL value to a zerolog level. Both the
// DEBUG/INFO/WARNING/ERROR/CRITICAL names used by the deployment templates
// and zerolog's own names are accepted, in any case. Anything else is info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "warning":
		return zerolog.WarnLevel
	case "critical":
		return zerolog.FatalLevel
	case "":
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
