// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     store
// Description: Book catalog with stock checks
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package store

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Book is a catalog entry
type Book struct {
	ID       int
	Title    string
	Author   string
	Price    decimal.Decimal
	Quantity int
}

func (b *Book) String() string {
	return fmt.Sprintf("%s (%s) - $%s | %d шт.", b.Title, b.Author, b.Price.StringFixed(2), b.Quantity)
}

// BookUpdate lists the fields to change; nil fields are left alone
type BookUpdate struct {
	Price    *decimal.Decimal
	Quantity *int
}

// String renders the changed fields as {'price': 27.99, 'quantity': 5}
func (u BookUpdate) String() string {
	var parts []string
	if u.Price != nil {
		price := u.Price.String()
		if u.Price.IsInteger() {
			price = u.Price.StringFixed(1)
		}
		parts = append(parts, "'price': "+price)
	}
	if u.Quantity != nil {
		parts = append(parts, fmt.Sprintf("'quantity': %d", *u.Quantity))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Catalog holds the books on sale, keyed by ID
type Catalog struct {
	books map[int]*Book
	out   io.Writer
}

// NewCatalog creates an empty catalog announcing changes on w
func NewCatalog(w io.Writer) *Catalog {
	return &Catalog{books: make(map[int]*Book), out: w}
}

// AddBook stores b, replacing any book with the same ID
func (c *Catalog) AddBook(b *Book) {
	c.books[b.ID] = b
	fmt.Fprintf(c.out, "Додано книгу: %s\n", b.Title)
}

// UpdateBook applies u to the book with id. It returns false when the book
// does not exist.
func (c *Catalog) UpdateBook(id int, u BookUpdate) bool {
	b, ok := c.books[id]
	if !ok {
		return false
	}
	if u.Price != nil {
		b.Price = *u.Price
	}
	if u.Quantity != nil {
		b.Quantity = *u.Quantity
	}
	fmt.Fprintf(c.out, "Оновлено книгу ID %d: %s\n", id, u)
	return true
}

// RemoveBook deletes the book with id; it returns the removed book
func (c *Catalog) RemoveBook(id int) (*Book, bool) {
	b, ok := c.books[id]
	if !ok {
		return nil, false
	}
	delete(c.books, id)
	fmt.Fprintf(c.out, "Видалено книгу: %s\n", b.Title)
	return b, true
}

// Book returns the book with id
func (c *Catalog) Book(id int) (*Book, bool) {
	b, ok := c.books[id]
	return b, ok
}

// CheckStock reports whether at least qty copies of book id are available
func (c *Catalog) CheckStock(id, qty int) bool {
	b, ok := c.books[id]
	if !ok {
		fmt.Fprintf(c.out, "Книга ID %d не знайдена\n", id)
		return false
	}
	return b.Quantity >= qty
}

// Books returns every book ordered by ID
func (c *Catalog) Books() []*Book {
	books := make([]*Book, 0, len(c.books))
	for _, b := range c.books {
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books
}

// Len returns the number of titles
func (c *Catalog) Len() int { return len(c.books) }
