// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     strategy
// Description: Interchangeable payment strategies for checkout
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package strategy

import (
	"fmt"
	"io"
)

// PaymentStrategy settles an amount in UAH
type PaymentStrategy interface {
	ProcessPayment(amount int)
}

// CreditCardPayment pays by card
type CreditCardPayment struct{ Out io.Writer }

// ProcessPayment implements PaymentStrategy
func (p CreditCardPayment) ProcessPayment(amount int) {
	fmt.Fprintf(p.Out, "Оплата карткою на суму %d гривень.\n", amount)
}

// PayPalPayment pays through PayPal
type PayPalPayment struct{ Out io.Writer }

// ProcessPayment implements PaymentStrategy
func (p PayPalPayment) ProcessPayment(amount int) {
	fmt.Fprintf(p.Out, "Оплата через PayPal на суму %d гривень.\n", amount)
}

// CashOnDeliveryPayment pays the courier
type CashOnDeliveryPayment struct{ Out io.Writer }

// ProcessPayment implements PaymentStrategy
func (p CashOnDeliveryPayment) ProcessPayment(amount int) {
	fmt.Fprintf(p.Out, "Оплата при отриманні на суму %d гривень.\n", amount)
}

// CryptoPayment pays in cryptocurrency
type CryptoPayment struct{ Out io.Writer }

// ProcessPayment implements PaymentStrategy
func (p CryptoPayment) ProcessPayment(amount int) {
	fmt.Fprintf(p.Out, "Оплата криптовалютою на суму %d гривень.\n", amount)
}

// ShoppingCart checks out with whatever strategy it currently holds
type ShoppingCart struct {
	Strategy PaymentStrategy
}

// SetStrategy swaps the payment strategy
func (c *ShoppingCart) SetStrategy(s PaymentStrategy) {
	c.Strategy = s
}

// Checkout pays amount with the current strategy
func (c *ShoppingCart) Checkout(amount int) {
	c.Strategy.ProcessPayment(amount)
}
