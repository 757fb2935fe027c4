// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     decorator
// Description: Decorator over book orders (gift wrap, autograph)
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package decorator

// Order is anything that can be described and priced, in UAH
type Order interface {
	Description() string
	Cost() int
}

// BookOrder is the undecorated order for a single book
type BookOrder struct {
	Title string
}

// Description implements Order
func (o BookOrder) Description() string { return "Book: " + o.Title }

// Cost implements Order
func (o BookOrder) Cost() int { return 100 }

// extra decorates an Order with a suffix and a surcharge
type extra struct {
	base   Order
	suffix string
	price  int
}

func (e extra) Description() string { return e.base.Description() + e.suffix }
func (e extra) Cost() int           { return e.base.Cost() + e.price }

// GiftWrap adds gift wrapping for 20 UAH
func GiftWrap(o Order) Order {
	return extra{base: o, suffix: ", with gift wrap", price: 20}
}

// Autograph adds an author's autograph for 50 UAH
func Autograph(o Order) Order {
	return extra{base: o, suffix: ", with autograph", price: 50}
}
