// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     demo
// Description: Behavioral pattern scenarios
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package demo

import (
	"context"
	"fmt"

	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/chain"
	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/command"
	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/interpreter"
	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/iterator"
	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/mediator"
	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/observer"
	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/state"
	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/strategy"
)

func interpreterDemo() Demo {
	return Demo{
		Name:     "interpreter",
		Patterns: []string{"interpreter"},
		Run: func(_ context.Context, env Env) error {
			books := []*interpreter.BookRecord{
				{Title: "Володар Перснів", Author: "Дж. Р. Р. Толкін", Price: 95, Year: 1954},
				{Title: "Гаррі Поттер", Author: "Дж. К. Роулінг", Price: 120, Year: 1997},
				{Title: "1984", Author: "Джордж Орвелл", Price: 80, Year: 1949},
			}
			query := interpreter.And[*interpreter.BookRecord](
				interpreter.PriceLessThan{Price: 100},
				interpreter.AuthorIs{Author: "Дж. Р. Р. Толкін"},
			)

			for _, b := range interpreter.Filter(books, query) {
				fmt.Fprintln(env.Out, "Знайдена книга:", b.Title)
			}
			return nil
		},
	}
}

func mediatorDemo() Demo {
	return Demo{
		Name:     "mediator",
		Patterns: []string{"mediator"},
		Run: func(_ context.Context, env Env) error {
			mediator.NewOrderMediator(env.Out).WithLogger(env.Logger).Confirmation.Confirm()
			return nil
		},
	}
}

func interpreterMediatorDemo() Demo {
	return Demo{
		Name:     "interpreter-mediator",
		Patterns: []string{"interpreter", "mediator"},
		Run: func(_ context.Context, env Env) error {
			order := interpreter.OrderContext{DeliverySpeed: "express", PaymentMethod: "credit_card"}
			expr := interpreter.And[interpreter.OrderContext](
				interpreter.SpeedIs{Speed: "express"},
				interpreter.PaymentIs{Method: "credit_card"},
			)
			mediator.NewCombinedOrderMediator(env.Out).WithLogger(env.Logger).ProcessOrder(expr, order)
			return nil
		},
	}
}

func iteratorDemo() Demo {
	return Demo{
		Name:     "iterator",
		Patterns: []string{"iterator"},
		Run: func(_ context.Context, env Env) error {
			spring := iterator.NewPromoCampaign("Весняний настрій")
			spring.AddBook(iterator.Book{Title: "Весна в Парижі", Price: 120})
			spring.AddBook(iterator.Book{Title: "Квітучий сад", Price: 100})

			fmt.Fprintf(env.Out, "\n[Промо-кампанія: %s]\n", spring.Name)
			for b := range spring.All() {
				fmt.Fprintf(env.Out, "- %s (%d грн)\n", b.Title, b.Price)
			}
			return nil
		},
	}
}

func stateDemo() Demo {
	return Demo{
		Name:     "state",
		Patterns: []string{"state", "iterator"},
		Run: func(_ context.Context, env Env) error {
			books := []iterator.Book{
				{Title: "Popular science", Price: 200},
				{Title: "Classic tales", Price: 150},
				{Title: "Modern love", Price: 180},
			}
			user := &state.User{State: state.NewUserState{}}

			fmt.Fprintln(env.Out, "\n[Рекомендації для нового користувача]")
			for b := range user.Recommendations(books).All() {
				fmt.Fprintf(env.Out, "- %s\n", b.Title)
			}
			return nil
		},
	}
}

func chainDemo() Demo {
	return Demo{
		Name:     "chain",
		Patterns: []string{"chain of responsibility"},
		Run: func(_ context.Context, env Env) error {
			req := chain.NewReturnRequest(iterator.Book{Title: "Класика ХХ століття", Price: 130})

			head := &chain.QualityCheckHandler{Out: env.Out}
			head.SetNext(&chain.StockManagerHandler{Out: env.Out}).
				SetNext(&chain.AdminHandler{Out: env.Out})

			result := head.Handle(req)
			fmt.Fprintf(env.Out, "\n[Результат перевірки повернення]: %s\n", result.Status)
			return nil
		},
	}
}

func strategyDemo() Demo {
	return Demo{
		Name:     "strategy",
		Patterns: []string{"strategy"},
		Run: func(_ context.Context, env Env) error {
			cart := &strategy.ShoppingCart{Strategy: strategy.CreditCardPayment{Out: env.Out}}
			cart.Checkout(500)
			return nil
		},
	}
}

func observerDemo() Demo {
	return Demo{
		Name:     "observer",
		Patterns: []string{"observer"},
		Run: func(_ context.Context, env Env) error {
			var service observer.NotificationService
			service.Subscribe(&observer.EmailNotifier{Out: env.Out})
			service.Subscribe(&observer.SMSNotifier{Out: env.Out})
			service.Subscribe(&observer.PushNotifier{Out: env.Out})

			service.Notify("Ваше замовлення було відправлено!")
			return nil
		},
	}
}

func commandDemo() Demo {
	return Demo{
		Name:     "command",
		Patterns: []string{"command"},
		Run: func(_ context.Context, env Env) error {
			book := &command.CatalogBook{Title: "Python для початківців", Price: 250}
			catalog := &command.Catalog{}

			var admin command.Admin
			admin.ExecuteCommand(command.NewAddBookCommand(catalog, book, env.Out))
			admin.ExecuteCommand(command.NewUpdatePriceCommand(book, 300, env.Out))

			admin.UndoCommand()
			admin.UndoCommand()
			return nil
		},
	}
}
