package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		discount string
		expected string
	}{
		{name: "ZeroDiscount", price: "1000.00", discount: "0", expected: "1000.00"},
		{name: "TenPercent", price: "1000.00", discount: "10", expected: "900.00"},
		{name: "RoundsHalfUp", price: "99.99", discount: "15", expected: "84.99"},
		{name: "FullDiscount", price: "250.00", discount: "100", expected: "0.00"},
		{name: "FractionalDiscount", price: "149.99", discount: "12.5", expected: "131.24"},
		{name: "NegativeDiscountIgnored", price: "500.00", discount: "-5", expected: "500.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := decimal.RequireFromString(tt.price)
			discount := decimal.RequireFromString(tt.discount)
			expected := decimal.RequireFromString(tt.expected)

			actual := EffectivePrice(price, discount)

			assert.True(
				t,
				expected.Equal(actual),
				"expected=%s actual=%s",
				expected.String(),
				actual.String(),
			)
		})
	}
}

func TestLineTotal(t *testing.T) {
	price := decimal.RequireFromString("1000.00")
	discount := decimal.RequireFromString("10")

	actual := LineTotal(price, discount, 3)

	expected := decimal.RequireFromString("2700.00")
	assert.True(t, expected.Equal(actual), "expected=%s actual=%s", expected.String(), actual.String())
}

func TestDiscountAmount(t *testing.T) {
	price := decimal.RequireFromString("1000.00")
	discount := decimal.RequireFromString("10")

	actual := DiscountAmount(price, discount)

	expected := decimal.RequireFromString("100.00")
	assert.True(t, expected.Equal(actual), "expected=%s actual=%s", expected.String(), actual.String())
}
