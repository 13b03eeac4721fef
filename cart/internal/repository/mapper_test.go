package repository

import (
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDecimalFromNumeric(t *testing.T) {
	tests := []struct {
		name     string
		numeric  pgtype.Numeric
		expected decimal.Decimal
	}{
		{
			name:     "TwoDecimalPlaces",
			numeric:  pgtype.Numeric{Int: big.NewInt(270000), Exp: -2, Valid: true},
			expected: decimal.RequireFromString("2700.00"),
		},
		{
			name:     "Invalid",
			numeric:  pgtype.Numeric{},
			expected: decimal.Zero,
		},
		{
			name:     "NilInt",
			numeric:  pgtype.Numeric{Valid: true},
			expected: decimal.Zero,
		},
		{
			name:     "NaN",
			numeric:  pgtype.Numeric{Int: big.NewInt(42), NaN: true, Valid: true},
			expected: decimal.Zero,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual := DecimalFromNumeric(test.numeric)
			assert.True(
				t,
				test.expected.Equal(actual),
				"expected=%s actual=%s",
				test.expected.String(),
				actual.String(),
			)
		})
	}
}

func TestNumericFromDecimalRoundTrip(t *testing.T) {
	expected := decimal.RequireFromString("149.99")
	actual := DecimalFromNumeric(NumericFromDecimal(expected))
	assert.True(t, expected.Equal(actual), "expected=%s actual=%s", expected.String(), actual.String())
}
