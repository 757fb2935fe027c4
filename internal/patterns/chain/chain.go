// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     chain
// Description: Chain of responsibility for book return requests
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package chain

import (
	"fmt"
	"io"

	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/iterator"
)

// Return request statuses
const (
	StatusPending  = "На перевірці"
	StatusRestored = "Повернено у продаж"
)

// ReturnRequest is a customer returning a book
type ReturnRequest struct {
	Book   iterator.Book
	Status string
}

// NewReturnRequest creates a pending request for b
func NewReturnRequest(b iterator.Book) *ReturnRequest {
	return &ReturnRequest{Book: b, Status: StatusPending}
}

// Handler processes a request and usually passes it along
type Handler interface {
	// SetNext links h after this handler and returns h for chaining
	SetNext(h Handler) Handler
	Handle(req *ReturnRequest) *ReturnRequest
}

// link holds the successor; the end of the chain returns the request as is
type link struct {
	next Handler
}

func (l *link) setNext(h Handler) Handler {
	l.next = h
	return h
}

func (l *link) forward(req *ReturnRequest) *ReturnRequest {
	if l.next == nil {
		return req
	}
	return l.next.Handle(req)
}

// QualityCheckHandler inspects the physical condition of the book
type QualityCheckHandler struct {
	link
	Out io.Writer
}

// SetNext implements Handler
func (h *QualityCheckHandler) SetNext(next Handler) Handler { return h.setNext(next) }

// Handle implements Handler
func (h *QualityCheckHandler) Handle(req *ReturnRequest) *ReturnRequest {
	fmt.Fprintf(h.Out, "Перевірка цілісності книги '%s'\n", req.Book.Title)
	return h.forward(req)
}

// StockManagerHandler checks whether the title is still sold
type StockManagerHandler struct {
	link
	Out io.Writer
}

// SetNext implements Handler
func (h *StockManagerHandler) SetNext(next Handler) Handler { return h.setNext(next) }

// Handle implements Handler
func (h *StockManagerHandler) Handle(req *ReturnRequest) *ReturnRequest {
	fmt.Fprintf(h.Out, "Перевірка актуальності книги '%s'\n", req.Book.Title)
	return h.forward(req)
}

// AdminHandler makes the final decision and ends the chain
type AdminHandler struct {
	link
	Out io.Writer
}

// SetNext implements Handler
func (h *AdminHandler) SetNext(next Handler) Handler { return h.setNext(next) }

// Handle implements Handler
func (h *AdminHandler) Handle(req *ReturnRequest) *ReturnRequest {
	fmt.Fprintf(h.Out, "Адміністратор ухвалює рішення по книзі '%s'\n", req.Book.Title)
	req.Status = StatusRestored
	return req
}
