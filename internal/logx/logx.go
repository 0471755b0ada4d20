// Package logx is a thin three-level verbosity gate over the standard
// library's log.Logger, in the teacher's style of wrapping *log.Logger
// rather than reaching for a structured-logging library.
package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level selects how much detail gets logged. Higher levels are noisier
// and include everything lower levels print.
type Level int

const (
	// Quiet prints only Errorf messages.
	Quiet Level = iota
	// Normal additionally prints Infof messages (load summary, run
	// start/end, runtime).
	Normal
	// Verbose additionally prints Debugf messages.
	Verbose
)

// Logger gates *log.Logger output by Level.
type Logger struct {
	level Level
	std   *log.Logger
}

// New returns a Logger writing to w at the given verbosity level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, std: log.New(w, "", log.LstdFlags)}
}

// Default returns a Logger writing to stderr at Normal verbosity.
func Default() *Logger {
	return New(os.Stderr, Normal)
}

// ParseLevel maps spec.md §6's three configuration-facing verbosity
// names onto this package's Level values: MINIMAL -> Quiet, MEDIUM ->
// Normal, MAXIMUM -> Verbose. The empty string resolves to Normal, the
// same default a run gets when the optional log_verbosity config key is
// absent.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "MEDIUM":
		return Normal, nil
	case "MINIMAL":
		return Quiet, nil
	case "MAXIMUM":
		return Verbose, nil
	default:
		return Normal, fmt.Errorf("logx: unknown verbosity %q (want MINIMAL, MEDIUM, or MAXIMUM)", s)
	}
}

// Level reports the logger's configured verbosity.
func (lg *Logger) Level() Level { return lg.level }

// Errorf always prints, regardless of level.
func (lg *Logger) Errorf(format string, args ...any) {
	lg.std.Printf("ERROR "+format, args...)
}

// Infof prints at Normal verbosity and above.
func (lg *Logger) Infof(format string, args ...any) {
	if lg.level >= Normal {
		lg.std.Printf(format, args...)
	}
}

// Debugf prints at Verbose only.
func (lg *Logger) Debugf(format string, args ...any) {
	if lg.level >= Verbose {
		lg.std.Printf("DEBUG "+format, args...)
	}
}
