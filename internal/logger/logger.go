// Package logger provides structured JSON logging and run metrics for ffpoints.
//
// Log lines are JSON objects written by a log/slog handler. Callers pass
// structured fields as a Fields map:
//
//	logger.Info("table scored", logger.Fields{
//	    "position": "QB",
//	    "players":  32,
//	})
//
// Metrics collects counters, gauges and stage timings for one run:
//
//	m := logger.NewMetrics()
//	m.RecordTiming("fetch.QB", time.Since(start))
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// ParseLevel converts a level name, case-insensitively. Unknown names map to INFO.
func ParseLevel(s string) Level {
	switch Level(strings.ToUpper(strings.TrimSpace(s))) {
	case LevelDebug:
		return LevelDebug
	case LevelWarn:
		return LevelWarn
	case LevelError:
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Fields represents structured log fields
type Fields map[string]any

// attrs returns the fields as slog attributes in key order so output is stable
func (f Fields) attrs() []slog.Attr {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, f[k]))
	}
	return out
}

// Logger writes structured log lines
type Logger struct {
	handler slog.Handler
	level   *slog.LevelVar
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New(LevelInfo, os.Stderr)
)

// New creates a logger writing JSON lines to output. Messages below level
// are discarded.
func New(level Level, output io.Writer) *Logger {
	lv := new(slog.LevelVar)
	lv.Set(level.slogLevel())
	return &Logger{
		handler: slog.NewJSONHandler(output, &slog.HandlerOptions{Level: lv}),
		level:   lv,
	}
}

// SetLevel changes the minimum level
func (l *Logger) SetLevel(level Level) {
	l.level.Set(level.slogLevel())
}

// With returns a logger that adds fields to every entry
func (l *Logger) With(fields Fields) *Logger {
	attrs := fields.attrs()
	return &Logger{
		handler: l.handler.WithAttrs(attrs),
		level:   l.level,
	}
}

func (l *Logger) log(level Level, message string, fields Fields, err error) {
	lv := level.slogLevel()
	ctx := context.Background()
	if !l.handler.Enabled(ctx, lv) {
		return
	}

	r := slog.NewRecord(time.Now().UTC(), lv, message, 0)
	r.AddAttrs(fields.attrs()...)
	if err != nil {
		r.AddAttrs(slog.String("error", err.Error()))
	}
	_ = l.handler.Handle(ctx, r)
}

// Debug logs detailed diagnostic information
func (l *Logger) Debug(message string, fields Fields) {
	l.log(LevelDebug, message, fields, nil)
}

// Info logs general progress
func (l *Logger) Info(message string, fields Fields) {
	l.log(LevelInfo, message, fields, nil)
}

// Warn logs a problem that does not stop the run
func (l *Logger) Warn(message string, fields Fields) {
	l.log(LevelWarn, message, fields, nil)
}

// Error logs a failure along with its error
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

// SetDefault replaces the package-level logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Default returns the package-level logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Debug logs with the default logger
func Debug(message string, fields Fields) {
	Default().Debug(message, fields)
}

// Info logs with the default logger
func Info(message string, fields Fields) {
	Default().Info(message, fields)
}

// Warn logs with the default logger
func Warn(message string, fields Fields) {
	Default().Warn(message, fields)
}

// Error logs with the default logger
func Error(message string, fields Fields, err error) {
	Default().Error(message, fields, err)
}
