// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     tui
// Description: Message types for async demo runs
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package tui

// demoFinishedMsg carries the captured output of one demo run
type demoFinishedMsg struct {
	name   string
	output string
	err    error
}
