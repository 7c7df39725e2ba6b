// Package biolog provides the diagnostic logging collaborator used by the
// BIOS SWI layer.
//
// Grounded directly on the teacher: nowhere in gone's dependency graph (nor
// in any other repo retrieved alongside it) is a structured logging library
// a direct dependency. The teacher's own cpu.decode, in its Relative
// addressing-mode branch, reaches for the standard library's log.Println
// without ceremony. This package follows that precedent rather than
// reaching for zap/logrus/zerolog: a thin wrapper around *log.Logger with
// level-tagged helpers matching the three error kinds of spec.md §7.
package biolog

import (
	"fmt"
	"log"
	"os"
)

// Level tags a log line with the error kind it represents.
type Level int

const (
	LevelStub Level = iota
	LevelGameError
	LevelWarn
	LevelInfo
)

func (l Level) String() string {
	switch l {
	case LevelStub:
		return "STUB"
	case LevelGameError:
		return "GAME_ERROR"
	case LevelWarn:
		return "WARN"
	default:
		return "INFO"
	}
}

// Logger wraps a *log.Logger with the level-tagged helpers the BIOS core
// uses to report stub calls, malformed guest arguments, and region
// warnings, without ever propagating an error to its caller.
type Logger struct {
	out *log.Logger
}

// New returns a Logger writing to os.Stderr, prefixed the way the teacher's
// single ad hoc log.Println call would have been had it gone through a
// *log.Logger: no prefix, standard flags.
func New() *Logger {
	return &Logger{out: log.New(os.Stderr, "", log.LstdFlags)}
}

// NewWithWriter builds a Logger around a caller-supplied *log.Logger, for
// tests that want to capture output.
func NewWithWriter(l *log.Logger) *Logger {
	return &Logger{out: l}
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || l.out == nil {
		return
	}
	l.out.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

// Stub logs an unimplemented or deliberately-stubbed SWI.
func (l *Logger) Stub(format string, args ...any) { l.log(LevelStub, format, args...) }

// GameError logs malformed guest arguments (divide by zero, unsupported
// destination region, unaligned Huffman width) that the core recovers from
// with defined fallback behavior.
func (l *Logger) GameError(format string, args ...any) { l.log(LevelGameError, format, args...) }

// Warn logs a condition that is suspicious but does not change behavior,
// e.g. a source address below working RAM.
func (l *Logger) Warn(format string, args ...any) { l.log(LevelWarn, format, args...) }

// Info logs routine diagnostics.
func (l *Logger) Info(format string, args ...any) { l.log(LevelInfo, format, args...) }
