// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     interpreter
// Description: Terminal expressions for books and orders
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package interpreter

// BookRecord is the context for book queries; Price is in UAH
type BookRecord struct {
	Title  string
	Author string
	Price  int
	Year   int
}

// PriceLessThan matches books cheaper than Price
type PriceLessThan struct{ Price int }

// Interpret implements Expression
func (e PriceLessThan) Interpret(b *BookRecord) bool { return b != nil && b.Price < e.Price }

// AuthorIs matches books by Author
type AuthorIs struct{ Author string }

// Interpret implements Expression
func (e AuthorIs) Interpret(b *BookRecord) bool { return b != nil && b.Author == e.Author }

// YearIs matches books published in Year
type YearIs struct{ Year int }

// Interpret implements Expression
func (e YearIs) Interpret(b *BookRecord) bool { return b != nil && b.Year == e.Year }

// OrderContext is the context for order conditions
type OrderContext struct {
	DeliverySpeed string
	PaymentMethod string
}

// SpeedIs matches orders with the given delivery speed
type SpeedIs struct{ Speed string }

// Interpret implements Expression
func (e SpeedIs) Interpret(o OrderContext) bool { return o.DeliverySpeed == e.Speed }

// PaymentIs matches orders paid with the given method
type PaymentIs struct{ Method string }

// Interpret implements Expression
func (e PaymentIs) Interpret(o OrderContext) bool { return o.PaymentMethod == e.Method }
