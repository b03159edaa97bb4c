// Package log provides a small levelled logger with optional colour.
package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/logrusorgru/aurora"
)

// Level orders log severities.
type Level int

const (
	// LevelDebug logs everything, including per-input detail.
	LevelDebug Level = iota
	// LevelInfo logs lifecycle events.
	LevelInfo
	// LevelWarn logs recoverable problems.
	LevelWarn
	// LevelError logs failures.
	LevelError
	// LevelOff disables output.
	LevelOff
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "OFF"
	}
}

// ParseLevel maps a case-insensitive level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "off", "none":
		return LevelOff, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

type sink struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

// Logger writes tagged, levelled lines to a shared writer.
type Logger struct {
	sink  *sink
	level Level
	au    aurora.Aurora
	tag   string
}

// New returns a logger writing entries at or above level to w.
func New(w io.Writer, level Level, color bool) *Logger {
	return &Logger{
		sink:  &sink{out: w, now: time.Now},
		level: level,
		au:    aurora.NewAurora(color),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger { return New(io.Discard, LevelOff, false) }

// With returns a logger sharing the same output whose lines carry tag.
func (l *Logger) With(tag string) *Logger {
	c := *l
	c.tag = tag
	return &c
}

// Enabled reports whether entries at level are written.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && level >= l.level && l.level != LevelOff
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *Logger) logf(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	var b strings.Builder
	b.WriteString(l.sink.now().Format("15:04:05.000"))
	b.WriteByte(' ')
	b.WriteString(l.levelLabel(level))
	if l.tag != "" {
		b.WriteString(" [")
		b.WriteString(l.au.Bold(l.tag).String())
		b.WriteByte(']')
	}
	b.WriteByte(' ')
	fmt.Fprintf(&b, format, args...)
	b.WriteByte('\n')

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	_, _ = io.WriteString(l.sink.out, b.String())
}

func (l *Logger) levelLabel(level Level) string {
	name := fmt.Sprintf("%-5s", level)
	switch level {
	case LevelDebug:
		return l.au.Magenta(name).String()
	case LevelInfo:
		return l.au.Cyan(name).String()
	case LevelWarn:
		return l.au.Yellow(name).String()
	default:
		return l.au.Red(name).String()
	}
}
