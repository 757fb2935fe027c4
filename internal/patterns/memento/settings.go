// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     memento
// Description: Snapshots of user interface settings
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package memento

import "fmt"

// UserSettings are the preferences of one user
type UserSettings struct {
	Theme    string
	Language string
}

// ChangeSettings replaces both preferences
func (s *UserSettings) ChangeSettings(theme, language string) {
	s.Theme = theme
	s.Language = language
}

// CreateMemento snapshots the settings
func (s *UserSettings) CreateMemento() SettingsMemento {
	return SettingsMemento{theme: s.Theme, language: s.Language}
}

// Restore brings back the snapshot in m
func (s *UserSettings) Restore(m SettingsMemento) {
	s.Theme = m.theme
	s.Language = m.language
}

func (s *UserSettings) String() string {
	return fmt.Sprintf("Тема: %s, Мова: %s", s.Theme, s.Language)
}

// SettingsMemento is an opaque settings snapshot
type SettingsMemento struct {
	theme    string
	language string
}
