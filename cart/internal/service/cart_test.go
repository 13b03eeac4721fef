package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alturino/computer-store/cart/internal/repository"
	"github.com/Alturino/computer-store/cart/pkg/request"
	inErrors "github.com/Alturino/computer-store/internal/errors"
)

func assertDecimalEqual(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	e := decimal.RequireFromString(expected)
	assert.True(t, e.Equal(actual), "expected=%s actual=%s", e.String(), actual.String())
}

func TestAddCartItemComputesTotalPrice(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	// price 1000.00 discount 10 -> effective price 900.00
	cartItem, err := env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productCpu, Quantity: 3},
	)
	require.NoError(t, err)

	assert.Equal(t, int32(3), cartItem.Quantity)
	assertDecimalEqual(t, "2700.00", cartItem.TotalPrice)
	assertDecimalEqual(t, "900.00", cartItem.Product.FinalPrice)

	cart, err := env.service.FindCartItems(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 1)
	assert.Equal(t, productCpu, cart.CartItems[0].Product.ID)
	assertDecimalEqual(t, "2700.00", cart.CartItems[0].TotalPrice)
}

func TestAddCartItemMergesQuantity(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	_, err := env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productCpu, Quantity: 2},
	)
	require.NoError(t, err)

	cartItem, err := env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productCpu, Quantity: 2},
	)
	require.NoError(t, err)
	assert.Equal(t, int32(4), cartItem.Quantity)
	assertDecimalEqual(t, "3600.00", cartItem.TotalPrice)

	cart, err := env.service.FindCartItems(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)
	assert.Len(t, cart.CartItems, 1)
}

func TestAddCartItemInsufficientStock(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	// stock is 5
	_, err := env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productCpu, Quantity: 6},
	)
	assert.ErrorIs(t, err, inErrors.ErrInsufficientStock)
	assert.ErrorContains(t, err, "stock=5")

	cart, err := env.service.FindCartItems(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)
	assert.Empty(t, cart.CartItems)
}

func TestAddCartItemMergedQuantityExceedsStock(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	_, err := env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productCpu, Quantity: 3},
	)
	require.NoError(t, err)

	_, err = env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productCpu, Quantity: 3},
	)
	assert.ErrorIs(t, err, inErrors.ErrInsufficientStock)

	cart, err := env.service.FindCartItems(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 1)
	assert.Equal(t, int32(3), cart.CartItems[0].Quantity)
}

func TestAddCartItemUnknownUserAndProduct(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	_, err := env.service.AddCartItem(
		c,
		uuid.New(),
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productCpu, Quantity: 1},
	)
	assert.ErrorIs(t, err, inErrors.ErrUserNotFound)

	_, err = env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: uuid.New(), Quantity: 1},
	)
	assert.ErrorIs(t, err, inErrors.ErrProductNotFound)
}

func TestAddCartItemBuildCartRecordsComponentType(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	cartItem, err := env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindBUILDPC,
		request.AddCartItem{ProductId: productGpu, Quantity: 1},
	)
	require.NoError(t, err)
	assert.Equal(t, string(repository.CartKindBUILDPC), cartItem.Kind)
	assert.Equal(t, string(repository.ComponentTypeVGA), cartItem.ComponentType)

	// the build cart does not leak into the standard cart
	cart, err := env.service.FindCartItems(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)
	assert.Empty(t, cart.CartItems)
}

func TestUpdateCartItemQuantityReplacesQuantity(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	_, err := env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productCpu, Quantity: 3},
	)
	require.NoError(t, err)

	cartItem, err := env.service.UpdateCartItemQuantity(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.UpdateCartItemQuantity{ProductId: productCpu, Quantity: 2},
	)
	require.NoError(t, err)
	assert.Equal(t, int32(2), cartItem.Quantity)
	assertDecimalEqual(t, "1800.00", cartItem.TotalPrice)
}

func TestUpdateCartItemQuantityNotInCart(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	_, err := env.service.UpdateCartItemQuantity(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.UpdateCartItemQuantity{ProductId: productCpu, Quantity: 2},
	)
	assert.ErrorIs(t, err, inErrors.ErrProductNotInCart)
}

func TestUpdateCartItemQuantityInsufficientStock(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	_, err := env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productGpu, Quantity: 1},
	)
	require.NoError(t, err)

	// stock is 2
	_, err = env.service.UpdateCartItemQuantity(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.UpdateCartItemQuantity{ProductId: productGpu, Quantity: 3},
	)
	assert.ErrorIs(t, err, inErrors.ErrInsufficientStock)
}

func TestRemoveCartItemByProductId(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	_, err := env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productRam, Quantity: 1},
	)
	require.NoError(t, err)

	err = env.service.RemoveCartItemByProductId(c, userJohn, repository.CartKindSTANDARD, productRam)
	require.NoError(t, err)

	cart, err := env.service.FindCartItems(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)
	assert.Empty(t, cart.CartItems)

	err = env.service.RemoveCartItemByProductId(c, userJohn, repository.CartKindSTANDARD, productRam)
	assert.ErrorIs(t, err, inErrors.ErrProductNotInCart)
}

func TestRemoveCartItemByIdForbidden(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	cartItem, err := env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productRam, Quantity: 1},
	)
	require.NoError(t, err)

	err = env.service.RemoveCartItemById(c, userJane, repository.CartKindSTANDARD, cartItem.ID)
	assert.ErrorIs(t, err, inErrors.ErrForbidden)

	err = env.service.RemoveCartItemById(c, userJohn, repository.CartKindSTANDARD, cartItem.ID)
	require.NoError(t, err)

	err = env.service.RemoveCartItemById(c, userJohn, repository.CartKindSTANDARD, cartItem.ID)
	assert.ErrorIs(t, err, inErrors.ErrCartItemNotFound)
}

func TestClearCartIsIdempotent(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	err := env.service.ClearCart(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)

	_, err = env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productRam, Quantity: 2},
	)
	require.NoError(t, err)

	err = env.service.ClearCart(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)

	cart, err := env.service.FindCartItems(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)
	assert.Empty(t, cart.CartItems)
}

func TestUpdateCartInfo(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	err := env.service.UpdateCartInfo(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.UpdateCartInfo{FullName: "John Doe", Phone: "+123456789", Address: "Main St 1"},
	)
	assert.ErrorIs(t, err, inErrors.ErrEmptyCart)

	_, err = env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productCpu, Quantity: 1},
	)
	require.NoError(t, err)
	_, err = env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productRam, Quantity: 1},
	)
	require.NoError(t, err)

	err = env.service.UpdateCartInfo(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.UpdateCartInfo{FullName: "John Doe", Phone: "+123456789", Address: "Main St 1"},
	)
	require.NoError(t, err)

	cart, err := env.service.FindCartItems(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 2)
	for _, item := range cart.CartItems {
		assert.Equal(t, "John Doe", item.FullName)
		assert.Equal(t, "+123456789", item.Phone)
		assert.Equal(t, "Main St 1", item.Address)
	}
}

func TestValidateCartStock(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	_, err := env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productCpu, Quantity: 5},
	)
	require.NoError(t, err)
	_, err = env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productRam, Quantity: 1},
	)
	require.NoError(t, err)

	err = env.service.ValidateCartStock(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)

	// simulate concurrent stock depletion
	_, err = env.queries.UpdateProductStock(c, repository.UpdateProductStockParams{
		ID:    productCpu,
		Stock: 3,
	})
	require.NoError(t, err)

	err = env.service.ValidateCartStock(c, userJohn, repository.CartKindSTANDARD)
	assert.ErrorIs(t, err, inErrors.ErrStockConflict)
	assert.ErrorContains(t, err, "Ryzen 7 9800X3D")
	assert.ErrorContains(t, err, "short by 2")
}

func TestCartSummaryEmptyCart(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	summary, err := env.service.CartSummary(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalItems)
	assert.Equal(t, int64(0), summary.TotalQuantity)
	assertDecimalEqual(t, "0", summary.Subtotal)
	assertDecimalEqual(t, "0", summary.TotalDiscount)
	assertDecimalEqual(t, "0", summary.TotalPrice)
	assertDecimalEqual(t, "0", summary.AveragePrice)
	assert.Equal(t, NoItemName, summary.MostExpensiveItem)
	assert.Equal(t, NoItemName, summary.LeastExpensiveItem)
}

func TestCartSummary(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	// CPU qty 2: price 1000.00 discount 10 -> 1800.00
	// RAM qty 1: price 150.00 no discount -> 150.00
	// PC qty 1: price 2000.00 discount 15 -> 1700.00
	_, err := env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productCpu, Quantity: 2},
	)
	require.NoError(t, err)
	_, err = env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productRam, Quantity: 1},
	)
	require.NoError(t, err)
	_, err = env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productPc, Quantity: 1},
	)
	require.NoError(t, err)

	summary, err := env.service.CartSummary(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, int64(4), summary.TotalQuantity)
	assertDecimalEqual(t, "4150.00", summary.Subtotal)
	assertDecimalEqual(t, "3650.00", summary.TotalPrice)
	assertDecimalEqual(t, "500.00", summary.TotalDiscount)
	assert.Equal(t, 1, summary.PcBuilds)
	assert.Equal(t, 2, summary.Components)
	assert.Equal(t, 0, summary.Accessories)
	assert.Equal(t, 3, summary.InStockItems)
	assert.Equal(t, 0, summary.OutOfStockItems)
	assert.Equal(t, 2, summary.DiscountedItems)
	assertDecimalEqual(t, "1216.67", summary.AveragePrice)
	assert.Equal(t, "Aurora Gaming PC", summary.MostExpensiveItem)
	assert.Equal(t, "Kingston Fury Beast 32GB", summary.LeastExpensiveItem)
}

func TestCartSummaryRanksByCatalogPrice(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	// CPU lists at 1000.00 but discounts to 900.00, SSD lists at 950.00
	// undiscounted. The ranking follows the catalog price, so the CPU
	// stays the most expensive item.
	_, err := env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productCpu, Quantity: 1},
	)
	require.NoError(t, err)
	_, err = env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productSsd, Quantity: 1},
	)
	require.NoError(t, err)

	summary, err := env.service.CartSummary(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)
	assert.Equal(t, "Ryzen 7 9800X3D", summary.MostExpensiveItem)
	assert.Equal(t, "Samsung 990 Pro 2TB", summary.LeastExpensiveItem)
}

func TestCartSummaryTieKeepsFirstItem(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	// RAM and keyboard both list at 150.00, RAM enters the cart first.
	_, err := env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productRam, Quantity: 1},
	)
	require.NoError(t, err)
	_, err = env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productKeyboard, Quantity: 1},
	)
	require.NoError(t, err)

	summary, err := env.service.CartSummary(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)
	assert.Equal(t, "Kingston Fury Beast 32GB", summary.MostExpensiveItem)
	assert.Equal(t, "Kingston Fury Beast 32GB", summary.LeastExpensiveItem)
	assert.Equal(t, 1, summary.Components)
	assert.Equal(t, 1, summary.Accessories)
	assert.Equal(t, 0, summary.PcBuilds)
}

func TestCartSummaryOutOfStockCount(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	_, err := env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productCpu, Quantity: 2},
	)
	require.NoError(t, err)
	_, err = env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productRam, Quantity: 1},
	)
	require.NoError(t, err)

	// simulate the cpu selling out after it entered the cart
	_, err = env.queries.UpdateProductStock(c, repository.UpdateProductStockParams{
		ID:    productCpu,
		Stock: 0,
	})
	require.NoError(t, err)

	summary, err := env.service.CartSummary(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.InStockItems)
	assert.Equal(t, 1, summary.OutOfStockItems)
}

func TestAddCartItemSucceedsWhenCacheUnavailable(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	env.cache.Close()

	cartItem, err := env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productCpu, Quantity: 1},
	)
	require.NoError(t, err)
	assertDecimalEqual(t, "900.00", cartItem.TotalPrice)

	stored, err := env.queries.FindCartItemByUserIdAndProductId(
		c,
		repository.FindCartItemByUserIdAndProductIdParams{
			UserID:    userJohn,
			ProductID: productCpu,
			Kind:      repository.CartKindSTANDARD,
		},
	)
	require.NoError(t, err)
	assert.Equal(t, int32(1), stored.Quantity)
}

func TestCartCount(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	count, err := env.service.CartCount(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count.Count)
	assert.Equal(t, int64(0), count.TotalQuantity)
	assertDecimalEqual(t, "0", count.TotalPrice)

	_, err = env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productCpu, Quantity: 3},
	)
	require.NoError(t, err)
	_, err = env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productRam, Quantity: 2},
	)
	require.NoError(t, err)

	count, err = env.service.CartCount(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count.Count)
	assert.Equal(t, int64(5), count.TotalQuantity)
	assertDecimalEqual(t, "3000.00", count.TotalPrice)
}

func TestIsProductInCart(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	inCart, err := env.service.IsProductInCart(c, userJohn, repository.CartKindSTANDARD, productCpu)
	require.NoError(t, err)
	assert.False(t, inCart)

	_, err = env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindSTANDARD,
		request.AddCartItem{ProductId: productCpu, Quantity: 1},
	)
	require.NoError(t, err)

	inCart, err = env.service.IsProductInCart(c, userJohn, repository.CartKindSTANDARD, productCpu)
	require.NoError(t, err)
	assert.True(t, inCart)

	inCart, err = env.service.IsProductInCart(c, userJohn, repository.CartKindBUILDPC, productCpu)
	require.NoError(t, err)
	assert.False(t, inCart)
}
