// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     command
// Description: Undoable catalog commands issued by an administrator
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package command

import (
	"fmt"
	"io"
	"slices"
)

// CatalogBook is a catalog entry; Price is in UAH
type CatalogBook struct {
	Title string
	Price int
}

// Catalog is an ordered list of books
type Catalog struct {
	books []*CatalogBook
}

// Books returns the current entries in order
func (c *Catalog) Books() []*CatalogBook {
	return slices.Clone(c.books)
}

func (c *Catalog) add(b *CatalogBook) {
	c.books = append(c.books, b)
}

func (c *Catalog) remove(b *CatalogBook) bool {
	i := slices.Index(c.books, b)
	if i < 0 {
		return false
	}
	c.books = slices.Delete(c.books, i, i+1)
	return true
}

// Command is a reversible catalog operation
type Command interface {
	Execute()
	Undo()
}

// AddBookCommand puts a book into the catalog
type AddBookCommand struct {
	catalog *Catalog
	book    *CatalogBook
	out     io.Writer
}

// NewAddBookCommand prepares adding book to catalog
func NewAddBookCommand(catalog *Catalog, book *CatalogBook, w io.Writer) *AddBookCommand {
	return &AddBookCommand{catalog: catalog, book: book, out: w}
}

// Execute implements Command
func (c *AddBookCommand) Execute() {
	c.catalog.add(c.book)
	fmt.Fprintf(c.out, "Книга '%s' додана в каталог.\n", c.book.Title)
}

// Undo implements Command
func (c *AddBookCommand) Undo() {
	if c.catalog.remove(c.book) {
		fmt.Fprintf(c.out, "Книга '%s' видалена з каталогу.\n", c.book.Title)
	}
}

// UpdatePriceCommand changes a book price. The old price is captured when
// the command is created.
type UpdatePriceCommand struct {
	book     *CatalogBook
	oldPrice int
	newPrice int
	out      io.Writer
}

// NewUpdatePriceCommand prepares changing the price of book to price
func NewUpdatePriceCommand(book *CatalogBook, price int, w io.Writer) *UpdatePriceCommand {
	return &UpdatePriceCommand{book: book, oldPrice: book.Price, newPrice: price, out: w}
}

// Execute implements Command
func (c *UpdatePriceCommand) Execute() {
	c.book.Price = c.newPrice
	fmt.Fprintf(c.out, "Ціна книги '%s' оновлена на %d гривень.\n", c.book.Title, c.newPrice)
}

// Undo implements Command
func (c *UpdatePriceCommand) Undo() {
	c.book.Price = c.oldPrice
	fmt.Fprintf(c.out, "Ціна книги '%s' відновлена на %d гривень.\n", c.book.Title, c.oldPrice)
}

// Admin executes commands and keeps them for undo
type Admin struct {
	history []Command
}

// ExecuteCommand runs c and records it
func (a *Admin) ExecuteCommand(c Command) {
	c.Execute()
	a.history = append(a.history, c)
}

// UndoCommand reverts the most recent command. It returns false when there
// is nothing to undo.
func (a *Admin) UndoCommand() bool {
	if len(a.history) == 0 {
		return false
	}
	last := len(a.history) - 1
	c := a.history[last]
	a.history = a.history[:last]
	c.Undo()
	return true
}

// Pending returns the number of commands that can be undone
func (a *Admin) Pending() int { return len(a.history) }
