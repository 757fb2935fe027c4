// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     log
// Description: Structured logger with context fields and pluggable formats
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package log is the structured logger used by the bookstore CLI and services.
//
// Loggers are immutable: the With* methods return a derived logger that shares the
// output and formatter. A nil *Logger is valid and discards everything, so components
// can take an optional logger without nil checks at every call site.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/errors"
)

// Logger writes structured entries at or above its level
type Logger struct {
	level         Level
	formatter     Formatter
	out           *syncWriter
	name          string
	correlationID string
	contextFields Fields
}

// Config configures a Logger
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// syncWriter serialises writes from derived loggers sharing one output
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// New creates an info level JSON logger on stderr
func New() *Logger {
	return NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON})
}

// NewWithConfig creates a logger from cfg. A nil Output means stderr.
func NewWithConfig(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:         cfg.Level,
		formatter:     GetFormatter(cfg.Format),
		out:           &syncWriter{w: output},
		name:          cfg.Name,
		contextFields: make(Fields),
	}
}

// Discard returns a logger that drops every entry
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelFatal + 1, Output: io.Discard})
}

func (l *Logger) clone() *Logger {
	c := *l
	c.contextFields = l.contextFields.Merge(nil)
	return &c
}

// WithLevel returns a logger with a different minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	if l == nil {
		return nil
	}
	c := l.clone()
	c.level = level
	return c
}

// WithName returns a logger with a different name
func (l *Logger) WithName(name string) *Logger {
	if l == nil {
		return nil
	}
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a logger that adds key=value to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a logger that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	if l == nil {
		return nil
	}
	c := l.clone()
	c.contextFields = c.contextFields.Merge(fields)
	return c
}

// WithCorrelationID returns a logger tagging entries with id
func (l *Logger) WithCorrelationID(id string) *Logger {
	if l == nil {
		return nil
	}
	c := l.clone()
	c.correlationID = id
	return c
}

// Level returns the minimum level
func (l *Logger) Level() Level {
	if l == nil {
		return LevelFatal + 1
	}
	return l.level
}

// Name returns the logger name
func (l *Logger) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// IsLevelEnabled reports whether level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return l != nil && level.ShouldLog(l.level)
}

// Trace logs at trace level
func (l *Logger) Trace(message string, fields ...Fields) { l.log(LevelTrace, message, nil, fields) }

// Debug logs at debug level
func (l *Logger) Debug(message string, fields ...Fields) { l.log(LevelDebug, message, nil, fields) }

// Info logs at info level
func (l *Logger) Info(message string, fields ...Fields) { l.log(LevelInfo, message, nil, fields) }

// Warn logs at warn level
func (l *Logger) Warn(message string, fields ...Fields) { l.log(LevelWarn, message, nil, fields) }

// Error logs at error level
func (l *Logger) Error(message string, fields ...Fields) { l.log(LevelError, message, nil, fields) }

// ErrorWithErr logs err at error level
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields)
}

// WarnWithErr logs err at warn level
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields)
}

// LogError logs err at a level derived from its severity
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var coded *errors.Error
	if !errors.As(err, &coded) {
		l.log(LevelError, err.Error(), err, nil)
		return
	}

	fields := Fields{"error_code": coded.Code().String()}
	if op := coded.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range coded.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	switch coded.Severity() {
	case errors.SeverityLow:
		level = LevelInfo
	case errors.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, coded.Message(), err, []Fields{fields})
}

// StartTimer starts a timer that logs the operation's duration when stopped
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

func (l *Logger) log(level Level, message string, err error, fields []Fields) {
	if l == nil || !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err
	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}

	if formatted, ferr := l.formatter.Format(entry); ferr == nil {
		_, _ = l.out.Write(formatted)
	}
}
