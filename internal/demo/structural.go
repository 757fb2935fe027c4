// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     demo
// Description: Creational and structural pattern scenarios
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package demo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/adapter"
	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/bridge"
	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/decorator"
	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/facade"
	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/factory"
	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/proxy"
	"github.com/Tom7834/Bookstore-Patterns/pkg/core/log"
)

func factoryDemo() Demo {
	return Demo{
		Name:     "factory",
		Patterns: []string{"factory method"},
		Run: func(_ context.Context, env Env) error {
			fiction, err := factory.FactoryFor(factory.KindFiction)
			if err != nil {
				return err
			}
			science, err := factory.FactoryFor(factory.KindScience)
			if err != nil {
				return err
			}

			book1 := fiction.CreateBook("1984", "Джордж Орвелл", decimal.RequireFromString("12.99"))
			book2 := science.CreateBook("Коротка історія часу", "Стівен Хокінг", decimal.RequireFromString("15.50"))

			fmt.Fprintln(env.Out, book1.Info())
			fmt.Fprintln(env.Out, book2.Info())
			return nil
		},
	}
}

func decoratorDemo() Demo {
	return Demo{
		Name:     "decorator",
		Patterns: []string{"decorator"},
		Run: func(_ context.Context, env Env) error {
			var order decorator.Order = decorator.BookOrder{Title: "1984 by Orwell"}
			order = decorator.GiftWrap(order)
			order = decorator.Autograph(order)

			fmt.Fprintln(env.Out, order.Description())
			fmt.Fprintf(env.Out, "Total cost: %d UAH\n", order.Cost())
			return nil
		},
	}
}

func adapterDemo() Demo {
	return Demo{
		Name:     "adapter",
		Patterns: []string{"adapter"},
		Run: func(_ context.Context, env Env) error {
			payments := []struct {
				method string
				amount int
			}{
				{adapter.MethodPayPal, 120},
				{adapter.MethodLiqPay, 150},
			}
			for _, p := range payments {
				payer, err := adapter.NewPaymentAdapter(p.method, env.Out)
				if err != nil {
					return err
				}
				if err := payer.Pay(p.amount); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func facadeDemo() Demo {
	return Demo{
		Name:     "facade",
		Patterns: []string{"facade"},
		Run: func(_ context.Context, env Env) error {
			facade.NewBookOrderFacade(env.Out).OrderBook("The Hobbit")
			return nil
		},
	}
}

func proxyDemo() Demo {
	return Demo{
		Name:     "proxy",
		Patterns: []string{"proxy"},
		Run: func(ctx context.Context, env Env) error {
			db, closer, err := env.bookDatabase(ctx)
			if err != nil {
				return err
			}
			if closer != nil {
				defer func() {
					if err := closer.Close(); err != nil {
						env.Logger.WarnWithErr("closing book database failed", err)
					}
				}()
			}

			p := proxy.NewCachingProxy(db, env.Out)
			for range 2 {
				info, err := p.BookInfo(ctx, "Dune")
				if err != nil {
					return err
				}
				fmt.Fprintln(env.Out, info)
			}
			env.Logger.Debug("proxy cache", log.Int("hits", p.Hits()), log.Int("entries", p.Len()))
			return nil
		},
	}
}

func bridgeDemo() Demo {
	return Demo{
		Name:     "bridge",
		Patterns: []string{"bridge"},
		Run: func(_ context.Context, env Env) error {
			bridge.BookDisplay{Renderer: bridge.WebRenderer{Out: env.Out}}.Show("Brave New World")
			bridge.BookDisplay{Renderer: bridge.PDFRenderer{Out: env.Out}}.Show("Brave New World")
			return nil
		},
	}
}
