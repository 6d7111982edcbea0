// Package logging provides the diagnostic logger. Diagnostics are off unless
// NOTE_DEBUG is set; user-facing status lines are not written here.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger so components can take *Logger and tests can
// pass Nop().
type Logger struct {
	zerolog.Logger
}

// DebugEnabled returns true if debug mode is enabled via NOTE_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("NOTE_DEBUG") != ""
}

// New returns a debug-level console logger writing to w when debug mode is
// enabled, and a disabled logger otherwise.
func New(w io.Writer) *Logger {
	if !DebugEnabled() {
		return Nop()
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	l := zerolog.New(out).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("app", "note").
		Logger()
	return &Logger{l}
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Debug().Msgf(format, args...)
}
