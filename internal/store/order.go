// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     store
// Description: Orders with sequential IDs, totals and statuses
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package store

import (
	"fmt"
	"io"
	"slices"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/errors"
)

// Order statuses
const (
	StatusCreated    = "created"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

// OrderItem is a line of an order
type OrderItem struct {
	BookID   int
	Quantity int
}

// Order is a customer purchase
type Order struct {
	ID         int
	CustomerID int
	Items      []OrderItem
	Status     string
	Total      decimal.Decimal
}

func (o *Order) String() string {
	return fmt.Sprintf("Замовлення #%d | Статус: %s | Сума: $%s", o.ID, o.Status, o.Total.StringFixed(2))
}

// OrderManager creates and tracks orders
type OrderManager struct {
	orders    map[int]*Order
	catalog   *Catalog
	customers *CustomerManager
	nextID    int
	out       io.Writer
}

// NewOrderManager creates a manager whose first order gets ID 1
func NewOrderManager(catalog *Catalog, customers *CustomerManager, w io.Writer) *OrderManager {
	return &OrderManager{
		orders:    make(map[int]*Order),
		catalog:   catalog,
		customers: customers,
		nextID:    1,
		out:       w,
	}
}

// NextOrderID returns the ID the next created order will get
func (m *OrderManager) NextOrderID() int { return m.nextID }

// CreateOrder opens a new order for an existing customer
func (m *OrderManager) CreateOrder(customerID int, items []OrderItem) (*Order, error) {
	if _, ok := m.customers.Customer(customerID); !ok {
		return nil, errors.NotFound("store.OrderManager.CreateOrder", "customer", customerID)
	}

	id := m.nextID
	m.nextID++
	o := &Order{
		ID:         id,
		CustomerID: customerID,
		Items:      slices.Clone(items),
		Status:     StatusCreated,
	}
	m.orders[id] = o
	m.customers.AddOrderToCustomer(customerID, id)
	fmt.Fprintf(m.out, "Створено нове замовлення #%d\n", id)
	return o, nil
}

// Order returns the order with id
func (m *OrderManager) Order(id int) (*Order, bool) {
	o, ok := m.orders[id]
	return o, ok
}

// CalculateTotal prices the order from current catalog prices and stores
// the result. Books no longer in the catalog contribute nothing.
func (m *OrderManager) CalculateTotal(id int) (decimal.Decimal, error) {
	o, ok := m.orders[id]
	if !ok {
		return decimal.Zero, errors.NotFound("store.OrderManager.CalculateTotal", "order", id)
	}

	total := decimal.Zero
	for _, item := range o.Items {
		if b, ok := m.catalog.Book(item.BookID); ok {
			total = total.Add(b.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	o.Total = total
	fmt.Fprintf(m.out, "Розраховано суму замовлення #%d: $%s\n", id, total.StringFixed(2))
	return total, nil
}

// UpdateStatus sets the status of order id
func (m *OrderManager) UpdateStatus(id int, status string) error {
	o, ok := m.orders[id]
	if !ok {
		return errors.NotFound("store.OrderManager.UpdateStatus", "order", id)
	}
	o.Status = status
	fmt.Fprintf(m.out, "Оновлено статус замовлення #%d на '%s'\n", id, status)
	return nil
}

// RemoveOrder deletes order id and unlinks it from its customer
func (m *OrderManager) RemoveOrder(id int) (*Order, bool) {
	o, ok := m.orders[id]
	if !ok {
		return nil, false
	}
	delete(m.orders, id)
	m.customers.removeOrderFromCustomer(o.CustomerID, id)
	return o, true
}

// Orders returns every order ordered by ID
func (m *OrderManager) Orders() []*Order {
	orders := make([]*Order, 0, len(m.orders))
	for _, o := range m.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders
}
