// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     iterator
// Description: Iterators over promo campaigns and recommendation lists
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package iterator

import (
	"iter"
	"slices"
)

// Book is a promoted title; Price is in UAH
type Book struct {
	Title string
	Price int
}

// PromoCampaign groups books sold under one promotion
type PromoCampaign struct {
	Name  string
	books []Book
}

// NewPromoCampaign creates an empty campaign
func NewPromoCampaign(name string) *PromoCampaign {
	return &PromoCampaign{Name: name}
}

// AddBook appends b to the campaign
func (c *PromoCampaign) AddBook(b Book) {
	c.books = append(c.books, b)
}

// All yields the campaign books in insertion order
func (c *PromoCampaign) All() iter.Seq[Book] {
	return slices.Values(c.books)
}

// Len returns the number of books in the campaign
func (c *PromoCampaign) Len() int { return len(c.books) }

// RecommendationIterator walks a fixed selection of books
type RecommendationIterator struct {
	books []Book
}

// NewRecommendationIterator iterates over a private copy of books
func NewRecommendationIterator(books []Book) *RecommendationIterator {
	return &RecommendationIterator{books: slices.Clone(books)}
}

// All yields the recommended books in order
func (it *RecommendationIterator) All() iter.Seq[Book] {
	return slices.Values(it.books)
}

// Len returns the number of recommended books
func (it *RecommendationIterator) Len() int { return len(it.books) }
