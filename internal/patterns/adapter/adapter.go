// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     adapter
// Description: Adapter unifying two incompatible payment gateways
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package adapter

import (
	"fmt"
	"io"
	"strings"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/errors"
)

// Payment method names accepted by NewPaymentAdapter
const (
	MethodPayPal = "paypal"
	MethodLiqPay = "liqpay"
)

// PayPalAPI is a third-party gateway with its own calling convention
type PayPalAPI struct {
	Out io.Writer
}

// SendPayment transfers amount UAH
func (p *PayPalAPI) SendPayment(amount int) {
	fmt.Fprintf(p.Out, "PayPal: paid %d UAH\n", amount)
}

// LiqPayAPI is a second gateway with a different method name
type LiqPayAPI struct {
	Out io.Writer
}

// MakeTransaction transfers sum UAH
func (l *LiqPayAPI) MakeTransaction(sum int) {
	fmt.Fprintf(l.Out, "LiqPay: paid %d UAH\n", sum)
}

// Payer is the interface the shop expects from any gateway
type Payer interface {
	Pay(amount int) error
}

// PayPalAdapter adapts PayPalAPI to Payer
type PayPalAdapter struct {
	API *PayPalAPI
}

// Pay implements Payer
func (a PayPalAdapter) Pay(amount int) error {
	if amount <= 0 {
		return errors.InvalidInput("adapter.PayPal.Pay", "amount must be positive").WithDetail("amount", amount)
	}
	a.API.SendPayment(amount)
	return nil
}

// LiqPayAdapter adapts LiqPayAPI to Payer
type LiqPayAdapter struct {
	API *LiqPayAPI
}

// Pay implements Payer
func (a LiqPayAdapter) Pay(amount int) error {
	if amount <= 0 {
		return errors.InvalidInput("adapter.LiqPay.Pay", "amount must be positive").WithDetail("amount", amount)
	}
	a.API.MakeTransaction(amount)
	return nil
}

// NewPaymentAdapter picks the adapter for a method name ("paypal", "liqpay")
func NewPaymentAdapter(method string, w io.Writer) (Payer, error) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case MethodPayPal:
		return PayPalAdapter{API: &PayPalAPI{Out: w}}, nil
	case MethodLiqPay:
		return LiqPayAdapter{API: &LiqPayAPI{Out: w}}, nil
	default:
		return nil, errors.InvalidInput("adapter.NewPaymentAdapter", "unknown payment method").
			WithDetail("method", method)
	}
}
