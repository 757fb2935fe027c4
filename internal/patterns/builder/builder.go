// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     builder
// Description: Step-by-step construction of books
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package builder

import "github.com/Tom7834/Bookstore-Patterns/internal/patterns/prototype"

// BookBuilder assembles a prototype.Book field by field
type BookBuilder struct {
	book *prototype.Book
}

// NewBookBuilder returns a builder holding an empty book
func NewBookBuilder() *BookBuilder {
	b := &BookBuilder{}
	b.Reset()
	return b
}

// Reset discards the book under construction
func (b *BookBuilder) Reset() *BookBuilder {
	b.book = &prototype.Book{}
	return b
}

// Title sets the title
func (b *BookBuilder) Title(title string) *BookBuilder {
	b.book.Title = title
	return b
}

// Author sets the author
func (b *BookBuilder) Author(author string) *BookBuilder {
	b.book.Author = author
	return b
}

// Price sets the price in UAH
func (b *BookBuilder) Price(price int) *BookBuilder {
	b.book.Price = price
	return b
}

// Genre sets the genre
func (b *BookBuilder) Genre(genre string) *BookBuilder {
	b.book.Genre = genre
	return b
}

// ISBN sets the ISBN
func (b *BookBuilder) ISBN(isbn string) *BookBuilder {
	b.book.ISBN = isbn
	return b
}

// Tag appends a tag
func (b *BookBuilder) Tag(tag string) *BookBuilder {
	b.book.Tags = append(b.book.Tags, tag)
	return b
}

// Build returns the finished book and starts a new one
func (b *BookBuilder) Build() *prototype.Book {
	book := b.book
	b.Reset()
	return book
}
