package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Level represents the severity of a log message
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel parses a level name ("debug", "info", "warn", "error"),
// case-insensitively. Unknown names yield LevelInfo and false.
func ParseLevel(s string) (Level, bool) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARNING" {
		return LevelWarn, true
	}
	for l, n := range levelNames {
		if n == name {
			return Level(l), true
		}
	}
	return LevelInfo, false
}

// Logger writes leveled messages as "<prefix> <LEVEL>: <message>"
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	level  Level
	prefix string
}

// New creates a logger. A nil writer discards all messages.
func New(out io.Writer, level Level, prefix string) *Logger {
	return &Logger{out: out, level: level, prefix: prefix}
}

// SetOutput sets the output destination
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// SetLevel sets the minimum level to write
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Logf writes a message at the given level
func (l *Logger) Logf(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level || l.out == nil {
		return
	}
	fmt.Fprintf(l.out, "%s %s: %s\n", l.prefix, level, fmt.Sprintf(format, args...))
}

var std = New(os.Stderr, LevelInfo, "[CSS-THEME]")

// SetOutput sets the output destination (primarily for testing)
func SetOutput(w io.Writer) { std.SetOutput(w) }

// SetLevel sets the minimum log level to display
func SetLevel(level Level) { std.SetLevel(level) }

// Debug logs verbose debugging information
func Debug(format string, args ...any) { std.Logf(LevelDebug, format, args...) }

// Info logs an operational event, e.g. a written file
func Info(format string, args ...any) { std.Logf(LevelInfo, format, args...) }

// Warn logs a problem that does not stop the run
func Warn(format string, args ...any) { std.Logf(LevelWarn, format, args...) }

// Error logs a failure
func Error(format string, args ...any) { std.Logf(LevelError, format, args...) }
