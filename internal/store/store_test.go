package store

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/errors"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seeded(t *testing.T) (*Store, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	s := New(&buf)
	s.Catalog.AddBook(&Book{ID: 1, Title: "Python для початківців", Author: "Джон Сміт", Price: price("25.99"), Quantity: 15})
	s.Catalog.AddBook(&Book{ID: 2, Title: "Чистий код", Author: "Роберт Мартін", Price: price("35.50"), Quantity: 8})
	s.Customers.AddCustomer(&Customer{ID: 1, Name: "Іван Петренко", Email: "ivan@example.com"})
	buf.Reset()
	return s, &buf
}

func TestCatalog(t *testing.T) {
	s, buf := seeded(t)

	b, ok := s.Catalog.Book(1)
	require.True(t, ok)
	assert.Equal(t, "Python для початківців (Джон Сміт) - $25.99 | 15 шт.", b.String())

	assert.True(t, s.Catalog.CheckStock(2, 8))
	assert.False(t, s.Catalog.CheckStock(2, 9))
	assert.False(t, s.Catalog.CheckStock(9, 1))
	assert.Equal(t, "Книга ID 9 не знайдена\n", buf.String())

	buf.Reset()
	qty := 3
	p := price("30")
	assert.True(t, s.Catalog.UpdateBook(2, BookUpdate{Price: &p, Quantity: &qty}))
	assert.False(t, s.Catalog.UpdateBook(7, BookUpdate{Quantity: &qty}))
	assert.Equal(t, "Оновлено книгу ID 2: {'price': 30.0, 'quantity': 3}\n", buf.String())

	removed, ok := s.Catalog.RemoveBook(1)
	require.True(t, ok)
	assert.Equal(t, 1, removed.ID)
	_, ok = s.Catalog.RemoveBook(1)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Catalog.Len())
}

func TestCatalog_BooksOrderedByID(t *testing.T) {
	c := NewCatalog(&bytes.Buffer{})
	for _, id := range []int{3, 1, 2} {
		c.AddBook(&Book{ID: id})
	}

	var ids []int
	for _, b := range c.Books() {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestOrderManager(t *testing.T) {
	s, buf := seeded(t)

	assert.Equal(t, 1, s.Orders.NextOrderID())
	o, err := s.Orders.CreateOrder(1, []OrderItem{{BookID: 1, Quantity: 2}, {BookID: 2, Quantity: 1}, {BookID: 99, Quantity: 5}})
	require.NoError(t, err)
	assert.Equal(t, 1, o.ID)
	assert.Equal(t, StatusCreated, o.Status)
	assert.Equal(t, 2, s.Orders.NextOrderID())

	total, err := s.Orders.CalculateTotal(o.ID)
	require.NoError(t, err)
	assert.Equal(t, "87.48", total.StringFixed(2))

	require.NoError(t, s.Orders.UpdateStatus(o.ID, StatusCompleted))
	assert.Equal(t, "Замовлення #1 | Статус: completed | Сума: $87.48", o.String())

	assert.Equal(t, "Додано замовлення 1 до клієнта Іван Петренко\n"+
		"Створено нове замовлення #1\n"+
		"Розраховано суму замовлення #1: $87.48\n"+
		"Оновлено статус замовлення #1 на 'completed'\n", buf.String())

	c, _ := s.Customers.Customer(1)
	assert.Equal(t, "Іван Петренко (ivan@example.com) | Замовлень: 1", c.String())

	_, ok := s.Orders.RemoveOrder(1)
	assert.True(t, ok)
	assert.Empty(t, c.Orders)
	assert.Empty(t, s.Orders.Orders())
}

func TestOrderManager_Errors(t *testing.T) {
	s, _ := seeded(t)

	_, err := s.Orders.CreateOrder(42, nil)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	assert.Equal(t, 1, s.Orders.NextOrderID())

	_, err = s.Orders.CalculateTotal(5)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	assert.True(t, errors.HasCode(s.Orders.UpdateStatus(5, StatusCompleted), errors.CodeNotFound))
}

func TestCustomerManager(t *testing.T) {
	var buf bytes.Buffer
	m := NewCustomerManager(&buf)
	m.AddCustomer(&Customer{ID: 2, Name: "Марія Сидоренко", Email: "maria@example.com"})

	assert.True(t, m.AddOrderToCustomer(2, 7))
	assert.False(t, m.AddOrderToCustomer(3, 7))

	_, ok := m.RemoveCustomer(2)
	assert.True(t, ok)
	assert.Zero(t, m.Len())
	assert.Equal(t, "Додано клієнта: Марія Сидоренко\nДодано замовлення 7 до клієнта Марія Сидоренко\n", buf.String())
}

func TestBookUpdate_String(t *testing.T) {
	p := price("27.99")
	whole := price("30")
	qty := 40

	tests := []struct {
		name     string
		update   BookUpdate
		expected string
	}{
		{name: "price", update: BookUpdate{Price: &p}, expected: "{'price': 27.99}"},
		{name: "whole price", update: BookUpdate{Price: &whole}, expected: "{'price': 30.0}"},
		{name: "quantity", update: BookUpdate{Quantity: &qty}, expected: "{'quantity': 40}"},
		{name: "both", update: BookUpdate{Price: &p, Quantity: &qty}, expected: "{'price': 27.99, 'quantity': 40}"},
		{name: "empty", update: BookUpdate{}, expected: "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.update.String())
		})
	}
}
