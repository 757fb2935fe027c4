// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     visitor
// Description: Visitors computing analytics and reports over sales data
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package visitor

import (
	"fmt"
	"io"
	"strings"
)

// Visitor handles every element type
type Visitor interface {
	VisitBook(b *Book)
	VisitCustomer(c *Customer)
	VisitOrder(o *Order)
}

// Element accepts a visitor
type Element interface {
	Accept(v Visitor)
}

// Book is a sold title; Price is in UAH
type Book struct {
	Title string
	Genre string
	Price int
}

// Accept implements Element
func (b *Book) Accept(v Visitor) { v.VisitBook(b) }

// Customer is a buyer with their orders
type Customer struct {
	Name   string
	Orders []*Order
}

// AddOrder records o for the customer
func (c *Customer) AddOrder(o *Order) {
	c.Orders = append(c.Orders, o)
}

// Accept implements Element
func (c *Customer) Accept(v Visitor) { v.VisitCustomer(c) }

// Order is a purchase of several books
type Order struct {
	Customer *Customer
	Books    []*Book
}

// Accept implements Element
func (o *Order) Accept(v Visitor) { v.VisitOrder(o) }

// Counter is a string-keyed tally that remembers first-seen order
type Counter struct {
	keys   []string
	counts map[string]int
}

// Set stores n for key
func (c *Counter) Set(key string, n int) {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key] = n
}

// Add increments key by n
func (c *Counter) Add(key string, n int) {
	c.Set(key, c.Get(key)+n)
}

// Get returns the value for key, zero when absent
func (c *Counter) Get(key string) int { return c.counts[key] }

// Keys returns the keys in first-seen order
func (c *Counter) Keys() []string { return append([]string(nil), c.keys...) }

// String renders the tally as {'key': n, ...}
func (c *Counter) String() string {
	parts := make([]string, 0, len(c.keys))
	for _, k := range c.keys {
		parts = append(parts, fmt.Sprintf("'%s': %d", k, c.counts[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// SalesAnalyticsVisitor tallies genres, customer activity and revenue
type SalesAnalyticsVisitor struct {
	GenreCount       Counter
	CustomerActivity Counter
	TotalRevenue     int
}

// VisitBook implements Visitor
func (a *SalesAnalyticsVisitor) VisitBook(b *Book) {
	a.GenreCount.Add(b.Genre, 1)
	a.TotalRevenue += b.Price
}

// VisitCustomer implements Visitor
func (a *SalesAnalyticsVisitor) VisitCustomer(c *Customer) {
	a.CustomerActivity.Set(c.Name, len(c.Orders))
}

// VisitOrder implements Visitor; every book of the order is visited
func (a *SalesAnalyticsVisitor) VisitOrder(o *Order) {
	for _, b := range o.Books {
		b.Accept(a)
	}
}

// ReportVisitor writes one line per visited element
type ReportVisitor struct {
	Out io.Writer
}

// VisitBook implements Visitor
func (r ReportVisitor) VisitBook(b *Book) {
	fmt.Fprintf(r.Out, "Книга: %s, Жанр: %s, Ціна: %d\n", b.Title, b.Genre, b.Price)
}

// VisitCustomer implements Visitor
func (r ReportVisitor) VisitCustomer(c *Customer) {
	fmt.Fprintf(r.Out, "Клієнт: %s, Кількість замовлень: %d\n", c.Name, len(c.Orders))
}

// VisitOrder implements Visitor
func (r ReportVisitor) VisitOrder(o *Order) {
	fmt.Fprintf(r.Out, "Замовлення клієнта: %s, Кількість книг: %d\n", o.Customer.Name, len(o.Books))
	for _, b := range o.Books {
		b.Accept(r)
	}
}
