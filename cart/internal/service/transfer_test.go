package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alturino/computer-store/cart/internal/repository"
	"github.com/Alturino/computer-store/cart/pkg/request"
)

func TestTransferBuildCartIntoEmptyCart(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

	_, err := env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindBUILDPC,
		request.AddCartItem{ProductId: productCpu, Quantity: 2},
	)
	require.NoError(t, err)
	_, err = env.service.AddCartItem(
		c,
		userJohn,
		repository.CartKindBUILDPC,
		request.AddCartItem{ProductId: productGpu, Quantity: 1},
	)
	require.NoError(t, err)

	err = env.service.TransferBuildCart(c, userJohn)
	require.NoError(t, err)

	buildCart, err := env.service.FindCartItems(c, userJohn, repository.CartKindBUILDPC)
	require.NoError(t, err)
	assert.Empty(t, buildCart.CartItems)

	cart, err := env.service.FindCartItems(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 2)

	for _, item := range cart.CartItems {
		switch item.Product.ID {
		case productCpu:
			assert.Equal(t, int32(2), item.Quantity)
			assertDecimalEqual(t, "1800.00", item.TotalPrice)
		case productGpu:
			assert.Equal(t, int32(1), item.Quantity)
			assertDecimalEqual(t, "665.00", item.TotalPrice)
		default:
			t.Fatalf("unexpected product=%s in cart", item.Product.ID)
		}
	}
}

func TestTransferBuildCartMergesExistingLine(t *testing.T) {
	c := context.Background()
	env := setup(t, c)
	defer teardown(t, env)

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
		repository.CartKindBUILDPC,
		request.AddCartItem{ProductId: productCpu, Quantity: 2},
	)
	require.NoError(t, err)

	err = env.service.TransferBuildCart(c, userJohn)
	require.NoError(t, err)

	cart, err := env.service.FindCartItems(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 1)
	assert.Equal(t, int32(3), cart.CartItems[0].Quantity)
	assertDecimalEqual(t, "2700.00", cart.CartItems[0].TotalPrice)

	buildCart, err := env.service.FindCartItems(c, userJohn, repository.CartKindBUILDPC)
	require.NoError(t, err)
	assert.Empty(t, buildCart.CartItems)
}

func TestTransferBuildCartEmptyBuildCart(t *testing.T) {
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

	err = env.service.TransferBuildCart(c, userJohn)
	require.NoError(t, err)

	cart, err := env.service.FindCartItems(c, userJohn, repository.CartKindSTANDARD)
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 1)
	assert.Equal(t, int32(1), cart.CartItems[0].Quantity)
}
