// Package log is a leveled wrapper around the standard logger that tags every
// line with a coloured component prefix.
package log

import (
	"errors"
	"fmt"
	"io"
	"log"
)

const reset = "\033[0m"

// Logger writes "[PREFIX] [LEVEL] message" lines.
type Logger struct {
	out        *log.Logger
	prefix     string
	infoColor  string
	warnColor  string
	errorColor string
}

// Option configures a Logger.
type Option func(*Logger)

// WithLevelColors colours the level tags.
func WithLevelColors(info, warning, err string) Option {
	return func(l *Logger) {
		l.infoColor, l.warnColor, l.errorColor = info, warning, err
	}
}

// New returns a Logger writing to w. color wraps the prefix; pass "" for none.
func New(prefix, color string, w io.Writer, opts ...Option) (*Logger, error) {
	if w == nil {
		return nil, errors.New("log: nil writer")
	}
	l := &Logger{
		out:    log.New(w, "", log.LstdFlags),
		prefix: paint(color, "["+prefix+"]"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write(l.infoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write(l.warnColor, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write(l.errorColor, "ERROR", msg)
}

func (l *Logger) write(color, level, msg string) {
	l.out.Print(fmt.Sprintf("%s %s %s", l.prefix, paint(color, "["+level+"]"), msg))
}

func paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + reset
}
