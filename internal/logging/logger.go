// Package logging is a leveled logger for call tracing. Until Initialize
// or InitializeWriter is called every log call is a no-op.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level represents log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel maps a config value such as "debug" to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger writes timestamped lines at or above its level.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	level   Level
	enabled bool
}

var std *Logger

// Initialize routes the default logger to a dated file in logDir and
// returns the file's path.
func Initialize(logDir string, level Level) (string, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(logDir, "cellwin-"+time.Now().Format("2006-01-02")+".log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return "", err
	}
	InitializeWriter(file, level)
	return path, nil
}

// InitializeWriter routes the default logger to w.
func InitializeWriter(w io.Writer, level Level) {
	std = &Logger{w: w, level: level, enabled: true}
}

// SetEnabled enables or disables logging
func SetEnabled(enabled bool) {
	if l := std; l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

func (l *Logger) printf(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || level < l.level {
		return
	}
	stamp := time.Now().Format("2006-01-02 15:04:05.000")
	_, _ = fmt.Fprintf(l.w, "[%s] %s: %s\n", stamp, level, fmt.Sprintf(format, args...))
}

func logf(level Level, format string, args ...interface{}) {
	if l := std; l != nil {
		l.printf(level, format, args...)
	}
}

// Debug traces calls.
func Debug(format string, args ...interface{}) { logf(LevelDebug, format, args...) }

// Info logs an info message
func Info(format string, args ...interface{}) { logf(LevelInfo, format, args...) }

// Warn logs a warning message
func Warn(format string, args ...interface{}) { logf(LevelWarn, format, args...) }

// Error logs an error message
func Error(format string, args ...interface{}) { logf(LevelError, format, args...) }

// WithError logs err at error level, prefixed by context. A nil err is ignored.
func WithError(err error, context string) {
	if err != nil {
		logf(LevelError, "%s: %v", context, err)
	}
}

// Close detaches the default logger and closes its writer if it can be closed.
func Close() error {
	l := std
	if l == nil {
		return nil
	}
	std = nil
	if c, ok := l.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
