// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     errors
// Description: Error codes and severities
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package errors

// Code classifies an error
type Code string

const (
	CodeUnknown           Code = "UNKNOWN"
	CodeInternal          Code = "INTERNAL"
	CodeNotFound          Code = "NOT_FOUND"
	CodeInvalidInput      Code = "INVALID_INPUT"
	CodeInvalidOperation  Code = "INVALID_OPERATION"
	CodeInsufficientStock Code = "INSUFFICIENT_STOCK"
	CodeDatabaseError     Code = "DATABASE_ERROR"
	CodeConfigError       Code = "CONFIG_ERROR"
	CodeMissingConfig     Code = "MISSING_CONFIG"
	CodeInvalidConfig     Code = "INVALID_CONFIG"
)

// String returns the code as a string
func (c Code) String() string {
	return string(c)
}

// Severity ranks how serious an error is
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String returns the severity name
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
