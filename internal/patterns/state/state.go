// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     state
// Description: User states selecting book recommendations
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package state

import (
	"strings"

	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/iterator"
)

// UserState decides which books a user is offered
type UserState interface {
	Recommend(books []iterator.Book) *iterator.RecommendationIterator
}

func titleContains(books []iterator.Book, word string) *iterator.RecommendationIterator {
	var picked []iterator.Book
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), word) {
			picked = append(picked, b)
		}
	}
	return iterator.NewRecommendationIterator(picked)
}

// NewUserState offers popular titles to newcomers
type NewUserState struct{}

// Recommend implements UserState
func (NewUserState) Recommend(books []iterator.Book) *iterator.RecommendationIterator {
	return titleContains(books, "popular")
}

// RegularUserState offers classics to returning customers
type RegularUserState struct{}

// Recommend implements UserState
func (RegularUserState) Recommend(books []iterator.Book) *iterator.RecommendationIterator {
	return titleContains(books, "classic")
}

// VIPUserState offers everything
type VIPUserState struct{}

// Recommend implements UserState
func (VIPUserState) Recommend(books []iterator.Book) *iterator.RecommendationIterator {
	return iterator.NewRecommendationIterator(books)
}

// User delegates recommendations to its current state
type User struct {
	State UserState
}

// Recommendations returns the books the current state offers
func (u *User) Recommendations(books []iterator.Book) *iterator.RecommendationIterator {
	return u.State.Recommend(books)
}

// SetState moves the user to s
func (u *User) SetState(s UserState) {
	u.State = s
}
