// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     demo
// Description: Object state scenarios (memento, visitor, builder, prototype)
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package demo

import (
	"context"
	"fmt"

	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/builder"
	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/memento"
	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/visitor"
	"github.com/Tom7834/Bookstore-Patterns/pkg/core/log"
)

func mementoVisitorDemo() Demo {
	return Demo{
		Name:     "memento-visitor",
		Patterns: []string{"memento", "visitor"},
		Run: func(_ context.Context, env Env) error {
			book1 := &visitor.Book{Title: "1984", Genre: "Дистопія", Price: 300}
			book2 := &visitor.Book{Title: "Гаррі Поттер", Genre: "Фентезі", Price: 400}

			customer := &visitor.Customer{Name: "Олег"}
			var (
				cart    memento.Cart[*visitor.Book]
				history memento.CartHistory[*visitor.Book]
			)

			cart.AddBook(book1)
			history.Save(cart.CreateMemento())
			cart.AddBook(book2)
			history.Save(cart.CreateMemento())
			cart.RemoveBook(book1)
			history.Save(cart.CreateMemento())

			if m, ok := history.Undo(); ok {
				cart.Restore(m)
			}

			settings := &memento.UserSettings{Theme: "Світла", Language: "UA"}
			backup := settings.CreateMemento()
			settings.ChangeSettings("Темна", "EN")
			settings.Restore(backup)
			env.Logger.Debug("settings restored", log.String("settings", settings.String()))

			order := &visitor.Order{Customer: customer, Books: cart.Books()}
			customer.AddOrder(order)

			analytics := &visitor.SalesAnalyticsVisitor{}
			report := visitor.ReportVisitor{Out: env.Out}

			order.Accept(analytics)
			customer.Accept(analytics)
			order.Accept(report)
			customer.Accept(report)

			fmt.Fprintln(env.Out, "Аналітика за жанрами:", analytics.GenreCount.String())
			fmt.Fprintln(env.Out, "Активність клієнтів:", analytics.CustomerActivity.String())
			fmt.Fprintln(env.Out, "Загальний прибуток:", analytics.TotalRevenue)
			return nil
		},
	}
}

func builderPrototypeDemo() Demo {
	return Demo{
		Name:     "builder-prototype",
		Patterns: []string{"builder", "prototype"},
		Run: func(_ context.Context, env Env) error {
			book := builder.NewBookBuilder().
				Title("Володар перснів").
				Author("Дж. Р. Р. Толкін").
				Price(500).
				Genre("Фентезі").
				ISBN("978-617-12-1234-5").
				Build()

			fmt.Fprintln(env.Out, "Створена книга:")
			fmt.Fprintln(env.Out, book)

			clone := book.Clone()
			clone.Price = 450

			fmt.Fprintln(env.Out, "Клонована книга:")
			fmt.Fprintln(env.Out, clone)
			return nil
		},
	}
}
