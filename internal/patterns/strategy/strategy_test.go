package strategy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShoppingCart_Checkout(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		name     string
		strategy PaymentStrategy
		expected string
	}{
		{"card", CreditCardPayment{Out: &buf}, "Оплата карткою на суму 500 гривень.\n"},
		{"paypal", PayPalPayment{Out: &buf}, "Оплата через PayPal на суму 500 гривень.\n"},
		{"cash", CashOnDeliveryPayment{Out: &buf}, "Оплата при отриманні на суму 500 гривень.\n"},
		{"crypto", CryptoPayment{Out: &buf}, "Оплата криптовалютою на суму 500 гривень.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			cart := &ShoppingCart{Strategy: tt.strategy}
			cart.Checkout(500)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestShoppingCart_SetStrategy(t *testing.T) {
	var buf bytes.Buffer
	cart := &ShoppingCart{Strategy: CreditCardPayment{Out: &buf}}

	cart.SetStrategy(CryptoPayment{Out: &buf})
	cart.Checkout(42)
	assert.Equal(t, "Оплата криптовалютою на суму 42 гривень.\n", buf.String())
}
