// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     facade
// Description: Facade hiding inventory, billing and stock subsystems
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package facade

import (
	"fmt"
	"io"
)

// Inventory answers stock questions. Every title is in stock unless marked
// unavailable.
type Inventory struct {
	unavailable map[string]bool
}

// MarkUnavailable takes title out of stock
func (i *Inventory) MarkUnavailable(title string) {
	if i.unavailable == nil {
		i.unavailable = make(map[string]bool)
	}
	i.unavailable[title] = true
}

// CheckStock reports whether title can be ordered
func (i *Inventory) CheckStock(title string) bool {
	return !i.unavailable[title]
}

// Billing issues invoices
type Billing struct {
	Out io.Writer
}

// CreateInvoice bills one copy of title
func (b *Billing) CreateInvoice(title string) {
	fmt.Fprintf(b.Out, "Invoice created for: %s\n", title)
}

// StockManager adjusts warehouse stock
type StockManager struct {
	Out io.Writer
}

// ReduceStock removes one copy of title
func (s *StockManager) ReduceStock(title string) {
	fmt.Fprintf(s.Out, "Stock reduced for: %s\n", title)
}

// BookOrderFacade places an order with a single call
type BookOrderFacade struct {
	Inventory *Inventory
	Billing   *Billing
	Stock     *StockManager
	out       io.Writer
}

// NewBookOrderFacade wires the three subsystems to w
func NewBookOrderFacade(w io.Writer) *BookOrderFacade {
	return &BookOrderFacade{
		Inventory: &Inventory{},
		Billing:   &Billing{Out: w},
		Stock:     &StockManager{Out: w},
		out:       w,
	}
}

// OrderBook checks stock, invoices and reduces stock. It returns false and
// prints nothing when title is out of stock.
func (f *BookOrderFacade) OrderBook(title string) bool {
	if !f.Inventory.CheckStock(title) {
		return false
	}
	f.Billing.CreateInvoice(title)
	f.Stock.ReduceStock(title)
	fmt.Fprintln(f.out, "Order completed")
	return true
}
