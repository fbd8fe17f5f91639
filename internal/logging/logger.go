// Package logging prints faxc messages and renders diagnostics for people.
// Machine-readable output does not go through this package.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

// Level controls how much a Logger prints.
type Level int

// Enumeration of the log levels
const (
	LevelSilent  Level = iota // no output at all
	LevelError                // errors only
	LevelWarning              // errors and warnings
	LevelVerbose              // everything, including phase timings
)

// ParseLevel returns the level named by name. Unknown names select
// LevelVerbose.
func ParseLevel(name string) Level {
	switch name {
	case "silent":
		return LevelSilent
	case "error":
		return LevelError
	case "warning", "warn":
		return LevelWarning
	}
	return LevelVerbose
}

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = pterm.FgLightCyan
	InfoStyleBG    = pterm.NewStyle(pterm.BgLightCyan, pterm.FgBlack)
)

// SetColor turns colored output on or off for every Logger. Color stays off
// when the NO_COLOR environment variable is set.
func SetColor(enabled bool) {
	if enabled && os.Getenv("NO_COLOR") == "" {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}
}

// Logger writes messages at or above its level to a writer. It is safe for
// concurrent use.
type Logger struct {
	level Level
	out   io.Writer

	m          sync.Mutex
	phase      string
	phaseStart time.Time
}

// New returns a logger that writes to out.
func New(out io.Writer, level Level) *Logger {
	return &Logger{level: level, out: out}
}

// Level returns the logger's level.
func (l *Logger) Level() Level { return l.level }

func (l *Logger) print(at Level, s string) {
	if l.level < at {
		return
	}
	l.m.Lock()
	defer l.m.Unlock()
	io.WriteString(l.out, s)
}

// Error prints err under a tag such as "Decode Error".
func (l *Logger) Error(tag string, err error) {
	l.print(LevelError, ErrorStyleBG.Sprint(tag)+" "+ErrorColorFG.Sprint(err.Error())+"\n")
}

// Warn prints a warning under a tag.
func (l *Logger) Warn(tag, msg string) {
	l.print(LevelWarning, WarnStyleBG.Sprint(tag)+" "+WarnColorFG.Sprint(msg)+"\n")
}

// Info prints an informational message under a tag at LevelVerbose.
func (l *Logger) Info(tag, msg string) {
	l.print(LevelVerbose, InfoStyleBG.Sprint(tag)+" "+InfoColorFG.Sprint(msg)+"\n")
}

// Verbosef prints a plain progress line at LevelVerbose.
func (l *Logger) Verbosef(format string, args ...any) {
	l.print(LevelVerbose, fmt.Sprintf(format, args...)+"\n")
}

const maxPhaseLength = len("Ownership")

// BeginPhase starts timing a named phase of the pipeline.
func (l *Logger) BeginPhase(phase string) {
	l.m.Lock()
	l.phase = phase
	l.phaseStart = time.Now()
	l.m.Unlock()
}

// EndPhase reports the current phase as done or failed at LevelVerbose.
func (l *Logger) EndPhase(success bool) {
	l.m.Lock()
	phase, start := l.phase, l.phaseStart
	l.phase = ""
	l.m.Unlock()
	if phase == "" {
		return
	}

	pad := strings.Repeat(" ", max(maxPhaseLength-len(phase), 0)+2)
	if success {
		l.print(LevelVerbose, fmt.Sprintf("%s %s%s(%.3fs)\n",
			SuccessStyleBG.Sprint("Done"), phase, pad, time.Since(start).Seconds()))
	} else {
		l.print(LevelVerbose, fmt.Sprintf("%s %s\n", ErrorStyleBG.Sprint("Fail"), phase))
	}
}
