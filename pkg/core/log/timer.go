// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     log
// Description: Operation timers
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package log

import (
	"time"
)

// Timer measures an operation and logs its duration once
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	stopped   bool
}

// NewTimer starts a timer for operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs "<operation> completed" at debug level. Only the first stop logs.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	t.logger.Debug(t.operation+" completed", t.completion(elapsed))
	return elapsed
}

// StopWithError logs "<operation> failed" with err at error level
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	fields := t.completion(elapsed)
	fields["success"] = false
	t.logger.ErrorWithErr(t.operation+" failed", err, fields)
	return elapsed
}

func (t *Timer) completion(elapsed time.Duration) Fields {
	fields := t.fields.Merge(nil)
	fields["operation"] = t.operation
	fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6
	return fields
}
