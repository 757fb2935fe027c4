// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     report
// Description: Sales report over completed orders
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

type sale struct {
	orderID    int
	customerID int
	total      decimal.Decimal
}

// SalesReport summarises completed orders
type SalesReport struct {
	orders *store.OrderManager
	out    io.Writer

	data    []sale
	Total   decimal.Decimal
	Average decimal.Decimal
	Count   int
}

// NewSalesReport reports on orders, announcing progress on w
func NewSalesReport(orders *store.OrderManager, w io.Writer) *SalesReport {
	return &SalesReport{orders: orders, out: w}
}

// CollectData implements Steps
func (r *SalesReport) CollectData() {
	fmt.Fprintln(r.out, "\nЗбір даних про продажі...")
	r.data = r.data[:0]
	for _, o := range r.orders.Orders() {
		if o.Status == store.StatusCompleted {
			r.data = append(r.data, sale{orderID: o.ID, customerID: o.CustomerID, total: o.Total})
		}
	}
}

// AnalyzeData implements Steps
func (r *SalesReport) AnalyzeData() {
	fmt.Fprintln(r.out, "Аналіз даних про продажі...")
	r.Total = decimal.Zero
	for _, s := range r.data {
		r.Total = r.Total.Add(s.total)
	}
	r.Count = len(r.data)
	r.Average = decimal.Zero
	if r.Count > 0 {
		r.Average = r.Total.Div(decimal.NewFromInt(int64(r.Count)))
	}
}

// FormatReport implements Steps
func (r *SalesReport) FormatReport() string {
	return "=== Звіт про продажі ===\n" +
		fmt.Sprintf("Загальний обсяг продажів: $%s\n", r.Total.StringFixed(2)) +
		fmt.Sprintf("Середній чек: $%s\n", r.Average.StringFixed(2)) +
		fmt.Sprintf("Кількість замовлень: %d", r.Count)
}
