package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Alturino/computer-store/cart/internal/otel"
	"github.com/Alturino/computer-store/cart/internal/pricing"
	"github.com/Alturino/computer-store/cart/internal/repository"
	"github.com/Alturino/computer-store/cart/pkg/response"
	"github.com/Alturino/computer-store/internal/log"
	inOtel "github.com/Alturino/computer-store/internal/otel"
)

// NoItemName is the sentinel for the most/least expensive item names
// when the cart is empty.
const NoItemName = "N/A"

func isAccessory(componentType repository.ComponentType) bool {
	switch componentType {
	case repository.ComponentTypeMONITOR,
		repository.ComponentTypeKEYBOARD,
		repository.ComponentTypeMOUSE,
		repository.ComponentTypeHEADSET:
		return true
	}
	return false
}

func (svc CartService) CartSummary(
	c context.Context,
	userId uuid.UUID,
	kind repository.CartKind,
) (response.CartSummary, error) {
	c, span := otel.Tracer.Start(c, "CartService CartSummary")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService CartSummary").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyCartKind, string(kind)).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart items").Logger()
	logger.Info().Msg("finding cart items")
	rows, err := svc.queries.FindCartItemsByUserId(c, repository.FindCartItemsByUserIdParams{
		UserID: userId,
		Kind:   kind,
	})
	if err != nil {
		err = fmt.Errorf("failed finding cart items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartSummary{}, err
	}
	logger = logger.With().Int(log.KeyCartItems, len(rows)).Logger()
	logger.Info().Msg("found cart items")

	summary := response.CartSummary{
		Subtotal:           decimal.Zero,
		TotalDiscount:      decimal.Zero,
		TotalPrice:         decimal.Zero,
		AveragePrice:       decimal.Zero,
		MostExpensiveItem:  NoItemName,
		LeastExpensiveItem: NoItemName,
	}
	if len(rows) == 0 {
		logger.Info().Msg("cart is empty")
		return summary, nil
	}

	logger = logger.With().Str(log.KeyProcess, "aggregating cart summary").Logger()
	logger.Info().Msg("aggregating cart summary")
	var mostExpensive, leastExpensive decimal.Decimal
	for i, row := range rows {
		price := repository.DecimalFromNumeric(row.Price)
		discount := repository.DecimalFromNumeric(row.Discount)
		effectivePrice := pricing.EffectivePrice(price, discount)
		quantity := decimal.NewFromInt32(row.Quantity)

		summary.TotalItems++
		summary.TotalQuantity += int64(row.Quantity)
		summary.Subtotal = summary.Subtotal.Add(price.Mul(quantity))
		summary.TotalPrice = summary.TotalPrice.Add(effectivePrice.Mul(quantity))

		switch {
		case row.ProductComponentType == repository.ComponentTypePC:
			summary.PcBuilds++
		case isAccessory(row.ProductComponentType):
			summary.Accessories++
		default:
			summary.Components++
		}

		if row.Stock > 0 {
			summary.InStockItems++
		} else {
			summary.OutOfStockItems++
		}
		if discount.GreaterThan(decimal.Zero) {
			summary.DiscountedItems++
		}

		// Ranked by catalog price, ties keep the first encountered item.
		if i == 0 || price.GreaterThan(mostExpensive) {
			mostExpensive = price
			summary.MostExpensiveItem = row.ProductName
		}
		if i == 0 || price.LessThan(leastExpensive) {
			leastExpensive = price
			summary.LeastExpensiveItem = row.ProductName
		}
	}
	summary.TotalDiscount = summary.Subtotal.Sub(summary.TotalPrice)
	summary.AveragePrice = summary.TotalPrice.
		DivRound(decimal.NewFromInt(int64(summary.TotalItems)), 2)
	logger = logger.With().Any(log.KeyCartSummary, summary).Logger()
	logger.Info().Msg("aggregated cart summary")

	return summary, nil
}
