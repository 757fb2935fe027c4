// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     demo
// Description: Demo registry and runner
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package demo registers one runnable scenario per pattern walkthrough.
// Scenarios write their narration to Env.Out and never touch os.Stdout, so
// the CLI, the TUI and the golden tests can all capture them.
package demo

import (
	"context"
	"io"

	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/proxy"
	"github.com/Tom7834/Bookstore-Patterns/pkg/core/config"
	"github.com/Tom7834/Bookstore-Patterns/pkg/core/errors"
	"github.com/Tom7834/Bookstore-Patterns/pkg/core/log"
)

// Demo is one runnable scenario
type Demo struct {
	Name     string
	Patterns []string
	Run      func(ctx context.Context, env Env) error
}

// BookDatabaseFactory opens the real subject for the proxy demo. The
// returned closer may be nil.
type BookDatabaseFactory func(ctx context.Context, w io.Writer) (proxy.BookDatabase, io.Closer, error)

// Env is what a scenario may use
type Env struct {
	Out    io.Writer
	Logger *log.Logger
	// BookDatabase defaults to the in-process RealBookDatabase
	BookDatabase BookDatabaseFactory
}

func (e Env) bookDatabase(ctx context.Context) (proxy.BookDatabase, io.Closer, error) {
	if e.BookDatabase == nil {
		return &proxy.RealBookDatabase{Out: e.Out}, nil, nil
	}
	return e.BookDatabase(ctx, e.Out)
}

// BookDatabaseFor selects the proxy backend named in cfg
func BookDatabaseFor(cfg config.ProxyConfig) BookDatabaseFactory {
	switch cfg.Backend {
	case config.ProxyBackendSQLite:
		dsn := cfg.DSN
		return func(ctx context.Context, w io.Writer) (proxy.BookDatabase, io.Closer, error) {
			db, err := proxy.OpenSQLiteBookDatabase(ctx, dsn, w)
			if err != nil {
				return nil, nil, err
			}
			return db, db, nil
		}
	default:
		return nil
	}
}

// Registry keeps demos in registration order
type Registry struct {
	demos []Demo
	index map[string]int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds d; names must be unique
func (r *Registry) Register(d Demo) error {
	if d.Name == "" || d.Run == nil {
		return errors.InvalidInput("demo.Register", "demo needs a name and a run function")
	}
	if _, exists := r.index[d.Name]; exists {
		return errors.New("demo already registered").
			WithCode(errors.CodeInvalidOperation).
			WithOperation("demo.Register").
			WithDetail("name", d.Name)
	}
	r.index[d.Name] = len(r.demos)
	r.demos = append(r.demos, d)
	return nil
}

// MustRegister is Register for static tables
func (r *Registry) MustRegister(demos ...Demo) *Registry {
	for _, d := range demos {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}

// Lookup finds a demo by name
func (r *Registry) Lookup(name string) (Demo, error) {
	i, ok := r.index[name]
	if !ok {
		return Demo{}, errors.NotFound("demo.Lookup", "demo", name)
	}
	return r.demos[i], nil
}

// Names lists demo names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.demos))
	for i, d := range r.demos {
		names[i] = d.Name
	}
	return names
}

// Demos returns every demo in registration order
func (r *Registry) Demos() []Demo {
	return append([]Demo(nil), r.demos...)
}

// Run runs the named demo
func (r *Registry) Run(ctx context.Context, env Env, name string) error {
	d, err := r.Lookup(name)
	if err != nil {
		return err
	}
	return run(ctx, env, d)
}

// RunAll runs every demo in order and stops at the first failure
func (r *Registry) RunAll(ctx context.Context, env Env) error {
	for _, d := range r.demos {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := run(ctx, env, d); err != nil {
			return err
		}
	}
	return nil
}

func run(ctx context.Context, env Env, d Demo) error {
	timer := env.Logger.StartTimer("demo " + d.Name).WithField("demo", d.Name)
	if err := d.Run(ctx, env); err != nil {
		timer.StopWithError(err)
		return errors.Wrap(err, "demo failed").
			WithOperation("demo.Run").
			WithDetail("demo", d.Name)
	}
	timer.Stop()
	return nil
}

// Default returns the registry of every bookstore demo
func Default() *Registry {
	return NewRegistry().MustRegister(
		factoryDemo(),
		decoratorDemo(),
		adapterDemo(),
		facadeDemo(),
		proxyDemo(),
		bridgeDemo(),
		interpreterDemo(),
		mediatorDemo(),
		interpreterMediatorDemo(),
		iteratorDemo(),
		stateDemo(),
		chainDemo(),
		mementoVisitorDemo(),
		builderPrototypeDemo(),
		strategyDemo(),
		observerDemo(),
		commandDemo(),
		storeDemo(),
	)
}
