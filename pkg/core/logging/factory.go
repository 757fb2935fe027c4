// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating configured loggers
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	bslog "github.com/Tom7834/Bookstore-Patterns/pkg/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format (json, text, console)
	Format string

	// Output writer (default: stderr, demo output owns stdout)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "console",
	}
}

// NewLogger creates a logger from cfg. Unknown levels fall back to info and
// unknown formats to console.
func NewLogger(cfg LoggerConfig) *bslog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return bslog.NewWithConfig(bslog.Config{
		Level:  parseLevel(cfg.Level),
		Format: parseFormat(cfg.Format),
		Output: output,
		Name:   cfg.Name,
	})
}

// NewRunLogger creates a logger for one CLI invocation, tagged with a fresh
// correlation id
func NewRunLogger(cfg LoggerConfig) (*bslog.Logger, string) {
	id := uuid.NewString()
	return NewLogger(cfg).WithCorrelationID(id), id
}

// parseLevel converts a level string, defaulting to info
func parseLevel(level string) bslog.Level {
	parsed, err := bslog.ParseLevel(level)
	if err != nil {
		return bslog.LevelInfo
	}
	return parsed
}

// parseFormat converts a format string, defaulting to console
func parseFormat(format string) bslog.Format {
	parsed, err := bslog.ParseFormat(format)
	if err != nil {
		return bslog.FormatConsole
	}
	return parsed
}
