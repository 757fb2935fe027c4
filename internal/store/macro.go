// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     store
// Description: Macro commands executed and undone as a unit
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package store

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/errors"
	"github.com/Tom7834/Bookstore-Patterns/pkg/core/log"
)

// MacroCommand runs its children in order and undoes them in reverse. If a
// child fails, the children that already ran are undone in reverse and the
// failure is returned.
type MacroCommand struct {
	commands []Command
	executed int
	logger   *log.Logger
}

// NewMacroCommand bundles commands
func NewMacroCommand(commands ...Command) *MacroCommand {
	return &MacroCommand{commands: commands}
}

// WithLogger reports rollbacks through l
func (m *MacroCommand) WithLogger(l *log.Logger) *MacroCommand {
	m.logger = l
	return m
}

// Commands returns the children
func (m *MacroCommand) Commands() []Command {
	return append([]Command(nil), m.commands...)
}

// Execute implements Command
func (m *MacroCommand) Execute() error {
	m.executed = 0
	for i, c := range m.commands {
		if err := c.Execute(); err != nil {
			m.logger.Warn("macro step failed, rolling back",
				log.Int("step", i), log.Int("rollback", m.executed), log.Err(err))
			m.rollback()
			return errors.Wrap(err, "macro command aborted").
				WithOperation("store.MacroCommand.Execute").
				WithDetail("step", i)
		}
		m.executed++
	}
	return nil
}

// Undo implements Command
func (m *MacroCommand) Undo() error {
	var first error
	for i := m.executed - 1; i >= 0; i-- {
		if err := m.commands[i].Undo(); err != nil {
			m.logger.ErrorWithErr("macro undo step failed", err, log.Int("step", i))
			if first == nil {
				first = err
			}
		}
	}
	m.executed = 0
	return first
}

func (m *MacroCommand) rollback() {
	if err := m.Undo(); err != nil {
		m.logger.ErrorWithErr("rollback incomplete", err)
	}
}

// ProcessOrderMacro checks stock for every item, creates the order, prices
// it, marks it processing and notifies the customer. The order id is taken
// from the create step each time the macro runs.
func ProcessOrderMacro(s *Store, customerID int, items []OrderItem, w io.Writer) *MacroCommand {
	commands := make([]Command, 0, len(items)+4)
	for _, item := range items {
		commands = append(commands, NewCheckStockCommand(s.Catalog, item.BookID, item.Quantity, w))
	}

	create := NewCreateOrderCommand(s.Orders, customerID, items, w)
	total := NewCalculateTotalCommand(s.Orders, 0, w)
	total.resolve = create.OrderID
	status := NewUpdateOrderStatusCommand(s.Orders, 0, StatusProcessing, w)
	status.resolve = create.OrderID
	notify := NewNotifyCustomerCommand(s.Customers, customerID, "", w)
	notify.compose = func() string {
		return fmt.Sprintf("Ваше замовлення #%d прийнято в обробку", create.OrderID())
	}

	commands = append(commands, create, total, status, notify)
	return NewMacroCommand(commands...)
}

// CatalogUpdate describes the changes for one book; nil fields are kept
type CatalogUpdate struct {
	BookID   int
	Price    *decimal.Decimal
	Quantity *int
}

// UpdateCatalogMacro applies price and quantity changes in order
func UpdateCatalogMacro(catalog *Catalog, updates []CatalogUpdate, w io.Writer) *MacroCommand {
	var commands []Command
	for _, u := range updates {
		if u.Price != nil {
			commands = append(commands, NewUpdateBookPriceCommand(catalog, u.BookID, *u.Price, w))
		}
		if u.Quantity != nil {
			commands = append(commands, NewUpdateBookQuantityCommand(catalog, u.BookID, *u.Quantity, w))
		}
	}
	return NewMacroCommand(commands...)
}
