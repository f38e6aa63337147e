// Package logging holds the zerolog logger shared by the app and widgets,
// plus a process-wide trace switch.
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

const defaultLevel = zerolog.InfoLevel

var (
	traceEnabled atomic.Bool
	current      atomic.Pointer[zerolog.Logger]
)

func init() {
	nop := zerolog.Nop()
	current.Store(&nop)
}

// SetTraceEnabled forces Trace level for loggers built afterwards. Call it
// before Setup.
func SetTraceEnabled(enabled bool) { traceEnabled.Store(enabled) }

// TraceEnabled reports whether trace logging was requested.
func TraceEnabled() bool { return traceEnabled.Load() }

// ParseLevel maps a config string such as "info" or "DEBUG" to a level,
// falling back to Info for unknown input.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return defaultLevel
	}
	return lvl
}

// New builds a console logger writing to w at the given level.
func New(w io.Writer, level string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl := ParseLevel(level)
	if TraceEnabled() {
		lvl = zerolog.TraceLevel
	}
	if zerolog.GlobalLevel() > lvl {
		zerolog.SetGlobalLevel(lvl)
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Setup installs a stderr logger as the shared one and returns it.
func Setup(level string) zerolog.Logger {
	l := New(os.Stderr, level)
	Set(l)
	return l
}

// Set replaces the shared logger.
func Set(l zerolog.Logger) { current.Store(&l) }

// L returns the shared logger. It discards everything until Setup or Set runs.
func L() *zerolog.Logger { return current.Load() }
