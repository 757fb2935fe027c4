// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     interpreter
// Description: Boolean query expressions over books and orders
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package interpreter builds small boolean query languages. Terminal
// expressions test one attribute of a context; And, Or and Not combine them.
// The same combinators serve book searches (*BookRecord) and order
// conditions (OrderContext).
package interpreter

// Expression evaluates to true or false against a context value
type Expression[C any] interface {
	Interpret(ctx C) bool
}

// Func adapts a plain predicate to Expression
type Func[C any] func(ctx C) bool

// Interpret implements Expression
func (f Func[C]) Interpret(ctx C) bool { return f(ctx) }

type and[C any] struct{ left, right Expression[C] }

func (e and[C]) Interpret(ctx C) bool { return e.left.Interpret(ctx) && e.right.Interpret(ctx) }

type or[C any] struct{ left, right Expression[C] }

func (e or[C]) Interpret(ctx C) bool { return e.left.Interpret(ctx) || e.right.Interpret(ctx) }

type not[C any] struct{ expr Expression[C] }

func (e not[C]) Interpret(ctx C) bool { return !e.expr.Interpret(ctx) }

// And holds when both operands hold; right is skipped when left fails
func And[C any](left, right Expression[C]) Expression[C] { return and[C]{left, right} }

// Or holds when either operand holds; right is skipped when left holds
func Or[C any](left, right Expression[C]) Expression[C] { return or[C]{left, right} }

// Not negates expr
func Not[C any](expr Expression[C]) Expression[C] { return not[C]{expr} }

// Filter returns the records matching expr, in input order
func Filter[C any](records []C, expr Expression[C]) []C {
	var out []C
	for _, r := range records {
		if expr.Interpret(r) {
			out = append(out, r)
		}
	}
	return out
}
