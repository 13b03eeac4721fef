package pricing

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// EffectivePrice applies the product discount percentage to the catalog
// price. The discount amount is rounded to two decimal places half-up
// before it is subtracted. A zero discount returns the price unchanged.
func EffectivePrice(price, discount decimal.Decimal) decimal.Decimal {
	if discount.LessThanOrEqual(decimal.Zero) {
		return price
	}
	discountAmount := price.Mul(discount).DivRound(oneHundred, 2)
	return price.Sub(discountAmount)
}

// DiscountAmount is the difference between the catalog price and the
// effective price for a single unit.
func DiscountAmount(price, discount decimal.Decimal) decimal.Decimal {
	return price.Sub(EffectivePrice(price, discount))
}

// LineTotal is the effective price multiplied by the quantity.
func LineTotal(price, discount decimal.Decimal, quantity int32) decimal.Decimal {
	return EffectivePrice(price, discount).Mul(decimal.NewFromInt32(quantity))
}
