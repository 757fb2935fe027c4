// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     report
// Description: Inventory report over catalog stock
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/Tom7834/Bookstore-Patterns/internal/store"
)

type stockLine struct {
	bookID   int
	title    string
	quantity int
	price    decimal.Decimal
}

// InventoryReport summarises catalog stock and its value
type InventoryReport struct {
	catalog *store.Catalog
	out     io.Writer

	data       []stockLine
	TotalBooks int
	TotalValue decimal.Decimal
	Titles     int
}

// NewInventoryReport reports on catalog, announcing progress on w
func NewInventoryReport(catalog *store.Catalog, w io.Writer) *InventoryReport {
	return &InventoryReport{catalog: catalog, out: w}
}

// CollectData implements Steps
func (r *InventoryReport) CollectData() {
	fmt.Fprintln(r.out, "\nЗбір даних про інвентар...")
	r.data = r.data[:0]
	for _, b := range r.catalog.Books() {
		r.data = append(r.data, stockLine{bookID: b.ID, title: b.Title, quantity: b.Quantity, price: b.Price})
	}
}

// AnalyzeData implements Steps
func (r *InventoryReport) AnalyzeData() {
	fmt.Fprintln(r.out, "Аналіз даних про інвентар...")
	r.TotalBooks = 0
	r.TotalValue = decimal.Zero
	for _, l := range r.data {
		r.TotalBooks += l.quantity
		r.TotalValue = r.TotalValue.Add(l.price.Mul(decimal.NewFromInt(int64(l.quantity))))
	}
	r.Titles = len(r.data)
}

// FormatReport implements Steps
func (r *InventoryReport) FormatReport() string {
	return "=== Звіт про інвентар ===\n" +
		fmt.Sprintf("Загальна кількість книг: %d\n", r.TotalBooks) +
		fmt.Sprintf("Загальна вартість інвентарю: $%s\n", r.TotalValue.StringFixed(2)) +
		fmt.Sprintf("Кількість різних назв: %d", r.Titles)
}
