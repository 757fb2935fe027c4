package decorator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecorators(t *testing.T) {
	tests := []struct {
		name        string
		order       Order
		description string
		cost        int
	}{
		{"plain", BookOrder{Title: "Dune"}, "Book: Dune", 100},
		{"gift wrap", GiftWrap(BookOrder{Title: "Dune"}), "Book: Dune, with gift wrap", 120},
		{"autograph", Autograph(BookOrder{Title: "Dune"}), "Book: Dune, with autograph", 150},
		{
			"both in order",
			Autograph(GiftWrap(BookOrder{Title: "1984 by Orwell"})),
			"Book: 1984 by Orwell, with gift wrap, with autograph",
			170,
		},
		{
			"stacked twice",
			GiftWrap(GiftWrap(BookOrder{Title: "Dune"})),
			"Book: Dune, with gift wrap, with gift wrap",
			140,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.description, tt.order.Description())
			assert.Equal(t, tt.cost, tt.order.Cost())
		})
	}
}
