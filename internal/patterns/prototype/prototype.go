// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     prototype
// Description: Books that clone themselves
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package prototype

import (
	"fmt"
	"slices"
)

// Prototype is anything that can produce an independent copy of itself
type Prototype[T any] interface {
	Clone() T
}

// Book is a catalog entry; Price is in UAH
type Book struct {
	Title  string
	Author string
	Price  int
	Genre  string
	ISBN   string
	Tags   []string
}

var _ Prototype[*Book] = (*Book)(nil)

// Clone returns a deep copy of b
func (b *Book) Clone() *Book {
	if b == nil {
		return nil
	}
	c := *b
	c.Tags = slices.Clone(b.Tags)
	return &c
}

func (b *Book) String() string {
	return fmt.Sprintf("Книга: %s, Автор: %s, Жанр: %s, Ціна: %d, ISBN: %s",
		b.Title, b.Author, b.Genre, b.Price, b.ISBN)
}
