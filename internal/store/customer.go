// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     store
// Description: Customer registry
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package store

import (
	"fmt"
	"io"
	"slices"
)

// Customer is a registered buyer; Orders holds order IDs
type Customer struct {
	ID     int
	Name   string
	Email  string
	Orders []int
}

func (c *Customer) String() string {
	return fmt.Sprintf("%s (%s) | Замовлень: %d", c.Name, c.Email, len(c.Orders))
}

// CustomerManager keeps customers by ID
type CustomerManager struct {
	customers map[int]*Customer
	out       io.Writer
}

// NewCustomerManager creates an empty registry announcing changes on w
func NewCustomerManager(w io.Writer) *CustomerManager {
	return &CustomerManager{customers: make(map[int]*Customer), out: w}
}

// AddCustomer registers c, replacing any customer with the same ID
func (m *CustomerManager) AddCustomer(c *Customer) {
	m.customers[c.ID] = c
	fmt.Fprintf(m.out, "Додано клієнта: %s\n", c.Name)
}

// Customer returns the customer with id
func (m *CustomerManager) Customer(id int) (*Customer, bool) {
	c, ok := m.customers[id]
	return c, ok
}

// RemoveCustomer forgets the customer with id
func (m *CustomerManager) RemoveCustomer(id int) (*Customer, bool) {
	c, ok := m.customers[id]
	if ok {
		delete(m.customers, id)
	}
	return c, ok
}

// AddOrderToCustomer links orderID to the customer; unknown customers are
// ignored
func (m *CustomerManager) AddOrderToCustomer(customerID, orderID int) bool {
	c, ok := m.customers[customerID]
	if !ok {
		return false
	}
	c.Orders = append(c.Orders, orderID)
	fmt.Fprintf(m.out, "Додано замовлення %d до клієнта %s\n", orderID, c.Name)
	return true
}

// removeOrderFromCustomer unlinks orderID without announcing it
func (m *CustomerManager) removeOrderFromCustomer(customerID, orderID int) {
	c, ok := m.customers[customerID]
	if !ok {
		return
	}
	if i := slices.Index(c.Orders, orderID); i >= 0 {
		c.Orders = slices.Delete(c.Orders, i, i+1)
	}
}

// Len returns the number of customers
func (m *CustomerManager) Len() int { return len(m.customers) }
