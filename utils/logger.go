package utils

import (
	"fmt"
	"io"
	"log"
	"time"
)

// Logger provides structured, leveled logging throughout the application.
// The TUI owns the terminal, so the logger writes to whatever sink the
// caller hands it (normally a log file).
type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
	debug *log.Logger
}

// NewLogger creates a new Logger writing all levels to w.
func NewLogger(w io.Writer) *Logger {
	flags := 0
	return &Logger{
		info:  log.New(w, "", flags),
		warn:  log.New(w, "", flags),
		err:   log.New(w, "", flags),
		debug: log.New(w, "", flags),
	}
}

func (l *Logger) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (l *Logger) Info(format string, args ...any) {
	l.info.Printf(fmt.Sprintf("[%s] INFO  %s\n", l.timestamp(), format), args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.warn.Printf(fmt.Sprintf("[%s] WARN  %s\n", l.timestamp(), format), args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.err.Printf(fmt.Sprintf("[%s] ERROR %s\n", l.timestamp(), format), args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.debug.Printf(fmt.Sprintf("[%s] DEBUG %s\n", l.timestamp(), format), args...)
}
