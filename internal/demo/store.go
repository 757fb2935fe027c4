// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     demo
// Description: Bookstore scenario (commands, macros, undo, template reports)
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package demo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Tom7834/Bookstore-Patterns/internal/store"
	"github.com/Tom7834/Bookstore-Patterns/internal/store/report"
)

func storeDemo() Demo {
	return Demo{
		Name:     "store",
		Patterns: []string{"command", "macro command", "template method"},
		Run:      runStore,
	}
}

func runStore(ctx context.Context, env Env) error {
	w := env.Out
	section := func(title string) { fmt.Fprintf(w, "\n=== %s ===\n", title) }

	fmt.Fprint(w, "\n=== Ініціалізація системи книжкового магазину ===\n\n")
	s := store.New(w)
	history := store.NewHistory(env.Logger)

	section("Додавання тестових даних")
	for _, b := range []*store.Book{
		{ID: 1, Title: "Python для початківців", Author: "Джон Сміт", Price: decimal.RequireFromString("25.99"), Quantity: 15},
		{ID: 2, Title: "Чистий код", Author: "Роберт Мартін", Price: decimal.RequireFromString("35.50"), Quantity: 8},
		{ID: 3, Title: "Шаблони проєктування", Author: "Банда чотирьох", Price: decimal.RequireFromString("45.75"), Quantity: 5},
		{ID: 4, Title: "Гаррі Поттер", Author: "Дж. К. Роулінг", Price: decimal.RequireFromString("20.00"), Quantity: 20},
	} {
		s.Catalog.AddBook(b)
	}
	s.Customers.AddCustomer(&store.Customer{ID: 1, Name: "Іван Петренко", Email: "ivan@example.com"})
	s.Customers.AddCustomer(&store.Customer{ID: 2, Name: "Марія Сидоренко", Email: "maria@example.com"})

	section("Приклад оформлення замовлення")
	first := store.ProcessOrderMacro(s, 1, []store.OrderItem{
		{BookID: 1, Quantity: 2},
		{BookID: 2, Quantity: 1},
	}, w).WithLogger(env.Logger)
	if err := history.Execute(first); err != nil {
		return err
	}

	section("Завершення замовлення")
	if err := history.Execute(store.NewUpdateOrderStatusCommand(s.Orders, 1, store.StatusCompleted, w)); err != nil {
		return err
	}

	section("Оновлення цін на книги")
	pythonPrice, patternsPrice := decimal.RequireFromString("27.99"), decimal.RequireFromString("49.99")
	updateCatalog := store.UpdateCatalogMacro(s.Catalog, []store.CatalogUpdate{
		{BookID: 1, Price: &pythonPrice},
		{BookID: 3, Price: &patternsPrice},
	}, w).WithLogger(env.Logger)
	if err := history.Execute(updateCatalog); err != nil {
		return err
	}

	section("Генерація звітів")
	generator := report.Generator{Out: w}
	fmt.Fprintln(w, generator.Generate(report.NewSalesReport(s.Orders, w)))
	inventory := report.NewInventoryReport(s.Catalog, w)
	fmt.Fprintln(w, generator.Generate(inventory))

	section("Демонстрація скасування дій")
	if _, err := history.Undo(); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	section("Друге тестове замовлення")
	second := store.ProcessOrderMacro(s, 2, []store.OrderItem{
		{BookID: 3, Quantity: 1},
		{BookID: 4, Quantity: 2},
	}, w).WithLogger(env.Logger)
	if err := history.Execute(second); err != nil {
		return err
	}

	section("Фінальний стан інвентарю")
	fmt.Fprintln(w, generator.Generate(inventory))
	return nil
}
