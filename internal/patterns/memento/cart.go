// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     memento
// Description: Snapshots of shopping carts and user settings
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package memento saves and restores object state without exposing it. The
// cart is generic over its item type so any comparable book value or pointer
// can be stored.
package memento

import "slices"

// Cart is a list of items with undoable history through mementos
type Cart[T comparable] struct {
	items []T
}

// AddBook appends item
func (c *Cart[T]) AddBook(item T) {
	c.items = append(c.items, item)
}

// RemoveBook removes the first entry equal to item; absent items are ignored
func (c *Cart[T]) RemoveBook(item T) {
	if i := slices.Index(c.items, item); i >= 0 {
		c.items = slices.Delete(c.items, i, i+1)
	}
}

// Books returns a copy of the cart contents
func (c *Cart[T]) Books() []T {
	return slices.Clone(c.items)
}

// Len returns the number of items
func (c *Cart[T]) Len() int { return len(c.items) }

// CreateMemento snapshots the cart
func (c *Cart[T]) CreateMemento() CartMemento[T] {
	return CartMemento[T]{state: slices.Clone(c.items)}
}

// Restore replaces the contents with the snapshot in m
func (c *Cart[T]) Restore(m CartMemento[T]) {
	c.items = m.State()
}

// CartMemento is an opaque cart snapshot
type CartMemento[T comparable] struct {
	state []T
}

// State returns a copy of the saved items
func (m CartMemento[T]) State() []T {
	return slices.Clone(m.state)
}

// CartHistory is a stack of cart snapshots
type CartHistory[T comparable] struct {
	history []CartMemento[T]
}

// Save pushes m
func (h *CartHistory[T]) Save(m CartMemento[T]) {
	h.history = append(h.history, m)
}

// Undo pops the most recent snapshot; ok is false when the history is empty
func (h *CartHistory[T]) Undo() (m CartMemento[T], ok bool) {
	if len(h.history) == 0 {
		return m, false
	}
	last := len(h.history) - 1
	m = h.history[last]
	h.history = h.history[:last]
	return m, true
}

// Len returns the number of saved snapshots
func (h *CartHistory[T]) Len() int { return len(h.history) }
