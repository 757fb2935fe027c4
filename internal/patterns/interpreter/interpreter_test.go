package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var books = []*BookRecord{
	{Title: "Володар Перснів", Author: "Дж. Р. Р. Толкін", Price: 95, Year: 1954},
	{Title: "Гаррі Поттер", Author: "Дж. К. Роулінг", Price: 120, Year: 1997},
	{Title: "1984", Author: "Джордж Орвелл", Price: 80, Year: 1949},
}

func titles(records []*BookRecord) []string {
	var out []string
	for _, r := range records {
		out = append(out, r.Title)
	}
	return out
}

func TestBookQueries(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expression[*BookRecord]
		expected []string
	}{
		{
			name:     "cheap tolkien",
			expr:     And[*BookRecord](PriceLessThan{100}, AuthorIs{"Дж. Р. Р. Толкін"}),
			expected: []string{"Володар Перснів"},
		},
		{
			name:     "price bound is exclusive",
			expr:     PriceLessThan{95},
			expected: []string{"1984"},
		},
		{
			name:     "either year",
			expr:     Or[*BookRecord](YearIs{1949}, YearIs{1997}),
			expected: []string{"Гаррі Поттер", "1984"},
		},
		{
			name:     "not rowling",
			expr:     Not[*BookRecord](AuthorIs{"Дж. К. Роулінг"}),
			expected: []string{"Володар Перснів", "1984"},
		},
		{
			name:     "nothing matches",
			expr:     And[*BookRecord](YearIs{1954}, YearIs{1949}),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, titles(Filter(books, tt.expr)))
		})
	}
}

func TestNilRecordNeverMatches(t *testing.T) {
	exprs := []Expression[*BookRecord]{PriceLessThan{1000}, AuthorIs{""}, YearIs{0}}
	for _, e := range exprs {
		assert.False(t, e.Interpret(nil))
	}
}

func TestOrderConditions(t *testing.T) {
	express := And[OrderContext](SpeedIs{"express"}, PaymentIs{"credit_card"})

	assert.True(t, express.Interpret(OrderContext{DeliverySpeed: "express", PaymentMethod: "credit_card"}))
	assert.False(t, express.Interpret(OrderContext{DeliverySpeed: "standard", PaymentMethod: "credit_card"}))
	assert.False(t, express.Interpret(OrderContext{DeliverySpeed: "express", PaymentMethod: "cash"}))
}

func TestShortCircuit(t *testing.T) {
	calls := 0
	counting := Func[int](func(int) bool { calls++; return true })

	And[int](Func[int](func(int) bool { return false }), counting).Interpret(0)
	Or[int](Func[int](func(int) bool { return true }), counting).Interpret(0)
	assert.Zero(t, calls)
}
