// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     factory
// Description: Factory Method over fiction and science books
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package factory creates books through per-kind factories.
package factory

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/errors"
)

// Kind names a book factory
type Kind string

// Known kinds
const (
	KindFiction Kind = "fiction"
	KindScience Kind = "science"
)

// Book is the product of a BookFactory
type Book interface {
	Title() string
	Author() string
	Price() decimal.Decimal
	Info() string
}

type base struct {
	title  string
	author string
	price  decimal.Decimal
}

func (b base) Title() string          { return b.title }
func (b base) Author() string         { return b.author }
func (b base) Price() decimal.Decimal { return b.price }

func (b base) info(label string) string {
	return fmt.Sprintf("%s: \"%s\" - %s, $%s", label, b.title, b.author, b.price.StringFixed(2))
}

// FictionBook is a novel or story collection
type FictionBook struct{ base }

// Info describes the book
func (b FictionBook) Info() string { return b.info("Художня книга") }

// ScienceBook is a non-fiction science title
type ScienceBook struct{ base }

// Info describes the book
func (b ScienceBook) Info() string { return b.info("Наукова книга") }

// BookFactory creates one kind of book
type BookFactory interface {
	CreateBook(title, author string, price decimal.Decimal) Book
}

// FictionBookFactory creates FictionBook values
type FictionBookFactory struct{}

// CreateBook implements BookFactory
func (FictionBookFactory) CreateBook(title, author string, price decimal.Decimal) Book {
	return FictionBook{base{title: title, author: author, price: price}}
}

// ScienceBookFactory creates ScienceBook values
type ScienceBookFactory struct{}

// CreateBook implements BookFactory
func (ScienceBookFactory) CreateBook(title, author string, price decimal.Decimal) Book {
	return ScienceBook{base{title: title, author: author, price: price}}
}

var factories = map[Kind]BookFactory{
	KindFiction: FictionBookFactory{},
	KindScience: ScienceBookFactory{},
}

// FactoryFor returns the factory registered for kind
func FactoryFor(kind Kind) (BookFactory, error) {
	f, ok := factories[kind]
	if !ok {
		return nil, errors.NotFound("factory.FactoryFor", "book factory", string(kind))
	}
	return f, nil
}

// Kinds lists the registered kinds, sorted
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
