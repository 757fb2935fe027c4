// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     store
// Description: In-memory bookstore driven by undoable commands
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package store models a small bookstore (catalog, customers, orders) that
// is changed only through commands. Every command can be undone, macro
// commands bundle several commands into one transaction, and History keeps
// the executed commands for undo. Managers announce each change on the
// writer they were created with.
package store

import "io"

// Store bundles the three managers over one output writer
type Store struct {
	Catalog   *Catalog
	Customers *CustomerManager
	Orders    *OrderManager
}

// New creates an empty store writing to w
func New(w io.Writer) *Store {
	catalog := NewCatalog(w)
	customers := NewCustomerManager(w)
	return &Store{
		Catalog:   catalog,
		Customers: customers,
		Orders:    NewOrderManager(catalog, customers, w),
	}
}
