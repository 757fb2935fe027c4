// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     store
// Description: Undoable commands over catalog, customers and orders
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
)

// Command is a reversible store operation. Undo of a command that never
// executed successfully does nothing.
type Command interface {
	Execute() error
	Undo() error
}

// AddBookCommand adds a new book to the catalog
type AddBookCommand struct {
	catalog *Catalog
	book    *Book
	out     io.Writer
	done    bool
}

// NewAddBookCommand prepares adding b
func NewAddBookCommand(catalog *Catalog, b *Book, w io.Writer) *AddBookCommand {
	return &AddBookCommand{catalog: catalog, book: b, out: w}
}

// Execute implements Command
func (c *AddBookCommand) Execute() error {
	if _, exists := c.catalog.Book(c.book.ID); exists {
		return errors.New("book already in catalog").
			WithCode(errors.CodeInvalidOperation).
			WithOperation("store.AddBookCommand").
			WithDetail("id", c.book.ID)
	}
	c.catalog.AddBook(c.book)
	c.done = true
	return nil
}

// Undo implements Command
func (c *AddBookCommand) Undo() error {
	if !c.done {
		return nil
	}
	c.catalog.RemoveBook(c.book.ID)
	c.done = false
	fmt.Fprintf(c.out, "(Скасування) Видалено книгу %s\n", c.book.Title)
	return nil
}

// UpdateBookPriceCommand changes the price of a book. The old price is read
// at execution time.
type UpdateBookPriceCommand struct {
	catalog  *Catalog
	bookID   int
	newPrice decimal.Decimal
	oldPrice *decimal.Decimal
	out      io.Writer
}

// NewUpdateBookPriceCommand prepares setting the price of book id
func NewUpdateBookPriceCommand(catalog *Catalog, id int, price decimal.Decimal, w io.Writer) *UpdateBookPriceCommand {
	return &UpdateBookPriceCommand{catalog: catalog, bookID: id, newPrice: price, out: w}
}

// Execute implements Command
func (c *UpdateBookPriceCommand) Execute() error {
	b, ok := c.catalog.Book(c.bookID)
	if !ok {
		return errors.NotFound("store.UpdateBookPriceCommand", "book", c.bookID)
	}
	old := b.Price
	c.oldPrice = &old
	c.catalog.UpdateBook(c.bookID, BookUpdate{Price: &c.newPrice})
	return nil
}

// Undo implements Command
func (c *UpdateBookPriceCommand) Undo() error {
	if c.oldPrice == nil {
		return nil
	}
	old := *c.oldPrice
	c.oldPrice = nil
	c.catalog.UpdateBook(c.bookID, BookUpdate{Price: &old})
	fmt.Fprintf(c.out, "(Скасування) Відновлено ціну %s для книги ID %d\n", old, c.bookID)
	return nil
}

// UpdateBookQuantityCommand changes the stock of a book
type UpdateBookQuantityCommand struct {
	catalog     *Catalog
	bookID      int
	newQuantity int
	oldQuantity *int
	out         io.Writer
}

// NewUpdateBookQuantityCommand prepares setting the stock of book id
func NewUpdateBookQuantityCommand(catalog *Catalog, id, quantity int, w io.Writer) *UpdateBookQuantityCommand {
	return &UpdateBookQuantityCommand{catalog: catalog, bookID: id, newQuantity: quantity, out: w}
}

// Execute implements Command
func (c *UpdateBookQuantityCommand) Execute() error {
	if c.newQuantity < 0 {
		return errors.InvalidInput("store.UpdateBookQuantityCommand", "quantity cannot be negative").
			WithDetail("quantity", c.newQuantity)
	}
	b, ok := c.catalog.Book(c.bookID)
	if !ok {
		return errors.NotFound("store.UpdateBookQuantityCommand", "book", c.bookID)
	}
	old := b.Quantity
	c.oldQuantity = &old
	c.catalog.UpdateBook(c.bookID, BookUpdate{Quantity: &c.newQuantity})
	return nil
}

// Undo implements Command
func (c *UpdateBookQuantityCommand) Undo() error {
	if c.oldQuantity == nil {
		return nil
	}
	old := *c.oldQuantity
	c.oldQuantity = nil
	c.catalog.UpdateBook(c.bookID, BookUpdate{Quantity: &old})
	fmt.Fprintf(c.out, "(Скасування) Відновлено кількість %d для книги ID %d\n", old, c.bookID)
	return nil
}

// CheckStockCommand verifies that enough copies are available. It fails
// with CodeInsufficientStock otherwise, which aborts an enclosing macro.
type CheckStockCommand struct {
	catalog  *Catalog
	bookID   int
	quantity int
	inStock  bool
	out      io.Writer
}

// NewCheckStockCommand prepares checking quantity copies of book id
func NewCheckStockCommand(catalog *Catalog, id, quantity int, w io.Writer) *CheckStockCommand {
	return &CheckStockCommand{catalog: catalog, bookID: id, quantity: quantity, out: w}
}

// Execute implements Command
func (c *CheckStockCommand) Execute() error {
	c.inStock = c.catalog.CheckStock(c.bookID, c.quantity)
	verdict := "Недостатньо на складі"
	if c.inStock {
		verdict = "Є в наявності"
	}
	fmt.Fprintf(c.out, "Перевірка наявності книги ID %d: %s\n", c.bookID, verdict)

	if !c.inStock {
		return errors.New("insufficient stock").
			WithCode(errors.CodeInsufficientStock).
			WithSeverity(errors.SeverityLow).
			WithOperation("store.CheckStockCommand").
			WithDetail("id", c.bookID).
			WithDetail("quantity", c.quantity)
	}
	return nil
}

// InStock reports the result of the last execution
func (c *CheckStockCommand) InStock() bool { return c.inStock }

// Undo implements Command
func (c *CheckStockCommand) Undo() error {
	fmt.Fprintln(c.out, "(Скасування) Перевірка наявності не змінює стан системи")
	return nil
}

// RegisterCustomerCommand adds a customer
type RegisterCustomerCommand struct {
	customers *CustomerManager
	customer  *Customer
	out       io.Writer
	done      bool
}

// NewRegisterCustomerCommand prepares registering c
func NewRegisterCustomerCommand(customers *CustomerManager, c *Customer, w io.Writer) *RegisterCustomerCommand {
	return &RegisterCustomerCommand{customers: customers, customer: c, out: w}
}

// Execute implements Command
func (c *RegisterCustomerCommand) Execute() error {
	if _, exists := c.customers.Customer(c.customer.ID); exists {
		return errors.New("customer already registered").
			WithCode(errors.CodeInvalidOperation).
			WithOperation("store.RegisterCustomerCommand").
			WithDetail("id", c.customer.ID)
	}
	c.customers.AddCustomer(c.customer)
	c.done = true
	return nil
}

// Undo implements Command
func (c *RegisterCustomerCommand) Undo() error {
	if !c.done {
		return nil
	}
	c.customers.RemoveCustomer(c.customer.ID)
	c.done = false
	fmt.Fprintf(c.out, "(Скасування) Видалено клієнта %s\n", c.customer.Name)
	return nil
}

// NotifyCustomerCommand sends a message to a customer. Sent messages cannot
// be recalled.
type NotifyCustomerCommand struct {
	customers  *CustomerManager
	customerID int
	message    string
	compose    func() string
	out        io.Writer
}

// NewNotifyCustomerCommand prepares sending message to customer id
func NewNotifyCustomerCommand(customers *CustomerManager, id int, message string, w io.Writer) *NotifyCustomerCommand {
	return &NotifyCustomerCommand{customers: customers, customerID: id, message: message, out: w}
}

// Execute implements Command
func (c *NotifyCustomerCommand) Execute() error {
	customer, ok := c.customers.Customer(c.customerID)
	if !ok {
		return errors.NotFound("store.NotifyCustomerCommand", "customer", c.customerID)
	}
	if c.compose != nil {
		c.message = c.compose()
	}
	fmt.Fprintf(c.out, "Надіслано сповіщення для %s: %s\n", customer.Email, c.message)
	return nil
}

// Undo implements Command
func (c *NotifyCustomerCommand) Undo() error {
	fmt.Fprintln(c.out, "(Скасування) Неможливо відкликати сповіщення")
	return nil
}

// CreateOrderCommand opens an order
type CreateOrderCommand struct {
	orders     *OrderManager
	customerID int
	items      []OrderItem
	orderID    int
	out        io.Writer
}

// NewCreateOrderCommand prepares an order of items for customer id
func NewCreateOrderCommand(orders *OrderManager, customerID int, items []OrderItem, w io.Writer) *CreateOrderCommand {
	return &CreateOrderCommand{orders: orders, customerID: customerID, items: items, out: w}
}

// Execute implements Command
func (c *CreateOrderCommand) Execute() error {
	o, err := c.orders.CreateOrder(c.customerID, c.items)
	if err != nil {
		return err
	}
	c.orderID = o.ID
	return nil
}

// OrderID returns the ID of the created order, zero before execution
func (c *CreateOrderCommand) OrderID() int { return c.orderID }

// Undo implements Command
func (c *CreateOrderCommand) Undo() error {
	if c.orderID == 0 {
		return nil
	}
	c.orders.RemoveOrder(c.orderID)
	fmt.Fprintf(c.out, "(Скасування) Видалено замовлення #%d\n", c.orderID)
	c.orderID = 0
	return nil
}

// CalculateTotalCommand prices an order
type CalculateTotalCommand struct {
	orders        *OrderManager
	orderID       int
	resolve       func() int
	previousTotal *decimal.Decimal
	out           io.Writer
}

// NewCalculateTotalCommand prepares pricing order id
func NewCalculateTotalCommand(orders *OrderManager, id int, w io.Writer) *CalculateTotalCommand {
	return &CalculateTotalCommand{orders: orders, orderID: id, out: w}
}

// Execute implements Command
func (c *CalculateTotalCommand) Execute() error {
	if c.resolve != nil {
		c.orderID = c.resolve()
	}
	o, ok := c.orders.Order(c.orderID)
	if !ok {
		return errors.NotFound("store.CalculateTotalCommand", "order", c.orderID)
	}
	previous := o.Total
	c.previousTotal = &previous
	_, err := c.orders.CalculateTotal(c.orderID)
	return err
}

// Undo implements Command
func (c *CalculateTotalCommand) Undo() error {
	if c.previousTotal == nil {
		return nil
	}
	previous := *c.previousTotal
	c.previousTotal = nil
	if o, ok := c.orders.Order(c.orderID); ok {
		o.Total = previous
		fmt.Fprintf(c.out, "(Скасування) Відновлено попередню суму замовлення #%d\n", c.orderID)
	}
	return nil
}

// UpdateOrderStatusCommand moves an order to a new status
type UpdateOrderStatusCommand struct {
	orders    *OrderManager
	orderID   int
	resolve   func() int
	newStatus string
	oldStatus *string
	out       io.Writer
}

// NewUpdateOrderStatusCommand prepares setting the status of order id
func NewUpdateOrderStatusCommand(orders *OrderManager, id int, status string, w io.Writer) *UpdateOrderStatusCommand {
	return &UpdateOrderStatusCommand{orders: orders, orderID: id, newStatus: status, out: w}
}

// Execute implements Command
func (c *UpdateOrderStatusCommand) Execute() error {
	if c.resolve != nil {
		c.orderID = c.resolve()
	}
	o, ok := c.orders.Order(c.orderID)
	if !ok {
		return errors.NotFound("store.UpdateOrderStatusCommand", "order", c.orderID)
	}
	old := o.Status
	c.oldStatus = &old
	return c.orders.UpdateStatus(c.orderID, c.newStatus)
}

// Undo implements Command
func (c *UpdateOrderStatusCommand) Undo() error {
	if c.oldStatus == nil {
		return nil
	}
	old := *c.oldStatus
	c.oldStatus = nil
	if err := c.orders.UpdateStatus(c.orderID, old); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "(Скасування) Відновлено статус замовлення #%d на '%s'\n", c.orderID, old)
	return nil
}
