// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     store
// Description: Command invoker with undo history
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package store

import (
	"fmt"
	"strings"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/log"
)

// History executes commands and remembers the successful ones for undo
type History struct {
	done   []Command
	logger *log.Logger
}

// NewHistory creates an empty history; logger may be nil
func NewHistory(logger *log.Logger) *History {
	return &History{logger: logger.WithName("store.history")}
}

// Execute runs c and records it when it succeeds
func (h *History) Execute(c Command) error {
	name := commandName(c)
	if err := c.Execute(); err != nil {
		h.logger.WarnWithErr("command failed", err, log.String("command", name))
		return err
	}
	h.done = append(h.done, c)
	h.logger.Debug("command executed", log.String("command", name), log.Int("depth", len(h.done)))
	return nil
}

// Undo reverts the most recent command. ok is false when the history is
// empty.
func (h *History) Undo() (ok bool, err error) {
	if len(h.done) == 0 {
		return false, nil
	}
	last := len(h.done) - 1
	c := h.done[last]
	h.done = h.done[:last]

	name := commandName(c)
	if err := c.Undo(); err != nil {
		h.logger.ErrorWithErr("undo failed", err, log.String("command", name))
		return true, err
	}
	h.logger.Debug("command undone", log.String("command", name), log.Int("depth", len(h.done)))
	return true, nil
}

// Len returns the number of commands that can be undone
func (h *History) Len() int { return len(h.done) }

// commandName turns *store.CreateOrderCommand into CreateOrderCommand
func commandName(c Command) string {
	name := fmt.Sprintf("%T", c)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
