// Package logging configures the zerolog logger backing --debug output.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to out. Without debug the logger is
// disabled entirely so the default CLI output stays quiet.
func New(out io.Writer, debug bool) zerolog.Logger {
	level := zerolog.Disabled
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out}).
		Level(level).
		With().Timestamp().Logger()
}

// Resty adapts a zerolog.Logger to resty's Logger interface so request and
// response traces land in the same stream as our own debug lines.
func Resty(l zerolog.Logger) restyLogger {
	return restyLogger{l: l}
}

type restyLogger struct {
	l zerolog.Logger
}

func (r restyLogger) Errorf(format string, v ...any) { r.l.Error().Msgf(format, v...) }
func (r restyLogger) Warnf(format string, v ...any)  { r.l.Warn().Msgf(format, v...) }
func (r restyLogger) Debugf(format string, v ...any) { r.l.Debug().Msgf(format, v...) }
