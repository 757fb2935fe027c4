// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     mediator
// Description: Mediators coordinating order confirmation, payment and delivery
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package mediator

import (
	"fmt"
	"io"

	"github.com/Tom7834/Bookstore-Patterns/internal/patterns/interpreter"
	"github.com/Tom7834/Bookstore-Patterns/pkg/core/log"
)

// Event is announced by a component to its mediator
type Event string

// Events
const (
	EventConfirmed Event = "confirmed"
	EventPaid      Event = "paid"
)

// Component is a participant that only talks to its mediator
type Component interface {
	Name() string
}

// Mediator routes component events
type Mediator interface {
	Notify(sender Component, event Event)
}

// PaymentService takes payment for an order
type PaymentService struct {
	mediator Mediator
	out      io.Writer
}

// Name implements Component
func (*PaymentService) Name() string { return "payment" }

// Pay charges the order and announces EventPaid
func (s *PaymentService) Pay() {
	fmt.Fprintln(s.out, "[Оплата] Замовлення оплачено")
	s.mediator.Notify(s, EventPaid)
}

// DeliveryService ships an order
type DeliveryService struct {
	mediator Mediator
	out      io.Writer
}

// Name implements Component
func (*DeliveryService) Name() string { return "delivery" }

// Deliver ships the order
func (s *DeliveryService) Deliver() {
	fmt.Fprintln(s.out, "[Доставка] Замовлення доставлено")
}

// OrderConfirmation confirms an order with the customer
type OrderConfirmation struct {
	mediator Mediator
	out      io.Writer
}

// Name implements Component
func (*OrderConfirmation) Name() string { return "confirmation" }

// Confirm confirms the order and announces EventConfirmed
func (c *OrderConfirmation) Confirm() {
	fmt.Fprintln(c.out, "[Підтвердження] Замовлення підтверджено")
	c.mediator.Notify(c, EventConfirmed)
}

// OrderMediator runs confirmation -> payment -> delivery
type OrderMediator struct {
	Payment      *PaymentService
	Delivery     *DeliveryService
	Confirmation *OrderConfirmation
	logger       *log.Logger
}

// NewOrderMediator creates the mediator and its components, all writing to w
func NewOrderMediator(w io.Writer) *OrderMediator {
	m := &OrderMediator{}
	m.Payment = &PaymentService{mediator: m, out: w}
	m.Delivery = &DeliveryService{mediator: m, out: w}
	m.Confirmation = &OrderConfirmation{mediator: m, out: w}
	return m
}

// WithLogger traces routed events through l
func (m *OrderMediator) WithLogger(l *log.Logger) *OrderMediator {
	m.logger = l.WithName("mediator")
	return m
}

// Notify implements Mediator
func (m *OrderMediator) Notify(sender Component, event Event) {
	traceEvent(m.logger, sender, event)
	switch event {
	case EventConfirmed:
		m.Payment.Pay()
	case EventPaid:
		m.Delivery.Deliver()
	}
}

// CombinedOrderMediator pays for an order only when its conditions hold
type CombinedOrderMediator struct {
	Payment  *PaymentService
	Delivery *DeliveryService
	out      io.Writer
	logger   *log.Logger
}

// NewCombinedOrderMediator creates the mediator and its components
func NewCombinedOrderMediator(w io.Writer) *CombinedOrderMediator {
	m := &CombinedOrderMediator{out: w}
	m.Payment = &PaymentService{mediator: m, out: w}
	m.Delivery = &DeliveryService{mediator: m, out: w}
	return m
}

// ProcessOrder pays (and so delivers) when expr holds for order. It reports
// whether the conditions held.
func (m *CombinedOrderMediator) ProcessOrder(expr interpreter.Expression[interpreter.OrderContext], order interpreter.OrderContext) bool {
	if !expr.Interpret(order) {
		return false
	}
	fmt.Fprintln(m.out, "[Медіатор] Умови замовлення виконано")
	m.Payment.Pay()
	return true
}

// WithLogger traces routed events through l
func (m *CombinedOrderMediator) WithLogger(l *log.Logger) *CombinedOrderMediator {
	m.logger = l.WithName("mediator")
	return m
}

// Notify implements Mediator
func (m *CombinedOrderMediator) Notify(sender Component, event Event) {
	traceEvent(m.logger, sender, event)
	if event == EventPaid {
		m.Delivery.Deliver()
	}
}

func traceEvent(l *log.Logger, sender Component, event Event) {
	l.Debug("event routed", log.String("sender", sender.Name()), log.String("event", string(event)))
}
