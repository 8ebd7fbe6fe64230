package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/cart"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

func TestCheckout_CreaVentaYDescuentaStock(t *testing.T) {
	store, uc, cat := newCart(t)
	prod := store.AddProduct(cat, "Café Premium", "10.00", 5)
	_, err := uc.Add(context.Background(), cliente, prod, 7)
	require.NoError(t, err)

	res, err := uc.Checkout(context.Background(), cliente)
	require.NoError(t, err)

	require.Len(t, res.Sales, 1)
	assert.Equal(t, 5, res.Sales[0].Quantity)
	assert.True(t, decimal.RequireFromString("50.00").Equal(res.Sales[0].Total))
	assert.True(t, decimal.RequireFromString("50.00").Equal(res.Total))
	require.NotNil(t, res.Sales[0].Seller)
	assert.Equal(t, "ana", *res.Sales[0].Seller)
	assert.Empty(t, res.Skipped)

	assert.Equal(t, 0, store.Product(prod).Stock)
	assert.Equal(t, 0, store.CartSize(cliente.UserID))
	assert.Equal(t, 1, store.Invalidations)
}

func TestCheckout_OmiteLineaSinStockYVaciaCarrito(t *testing.T) {
	store, uc, cat := newCart(t)
	cafe := store.AddProduct(cat, "Café Premium", "10.00", 5)
	miel := store.AddProduct(cat, "Miel", "8.00", 3)
	_, err := uc.Add(context.Background(), cliente, cafe, 2)
	require.NoError(t, err)
	_, err = uc.Add(context.Background(), cliente, miel, 3)
	require.NoError(t, err)

	// otra compra deja la miel con menos stock que el pedido
	require.NoError(t, store.Products().DecrementStock(context.Background(), miel, 2))

	res, err := uc.Checkout(context.Background(), cliente)
	require.NoError(t, err)

	require.Len(t, res.Sales, 1)
	assert.Equal(t, cafe, res.Sales[0].ProductID)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, miel, res.Skipped[0].ProductID)
	assert.Equal(t, 3, res.Skipped[0].Requested)
	assert.Equal(t, 1, res.Skipped[0].Available)
	assert.Equal(t, cart.SkipReasonStock, res.Skipped[0].Reason)

	assert.Equal(t, 3, store.Product(cafe).Stock)
	assert.Equal(t, 1, store.Product(miel).Stock, "la línea omitida no toca el stock")
	assert.Equal(t, 0, store.CartSize(cliente.UserID))
}

func TestCheckout_TodoOmitido_SinInvalidarCache(t *testing.T) {
	store, uc, cat := newCart(t)
	prod := store.AddProduct(cat, "Café Premium", "10.00", 2)
	_, err := uc.Add(context.Background(), cliente, prod, 2)
	require.NoError(t, err)
	require.NoError(t, store.Products().DecrementStock(context.Background(), prod, 2))

	res, err := uc.Checkout(context.Background(), cliente)
	require.NoError(t, err)
	assert.Empty(t, res.Sales)
	assert.Len(t, res.Skipped, 1)
	assert.Equal(t, 0, store.SaleCount())
	assert.Equal(t, 0, store.CartSize(cliente.UserID))
	assert.Equal(t, 0, store.Invalidations)
}

func TestCheckout_CarritoVacio(t *testing.T) {
	_, uc, _ := newCart(t)
	_, err := uc.Checkout(context.Background(), cliente)
	assert.True(t, errors.Is(err, domain.ErrEmptyCart))
}

func TestCheckout_ErrorDeInfraestructuraRevierteTodo(t *testing.T) {
	store, uc, cat := newCart(t)
	prod := store.AddProduct(cat, "Café Premium", "10.00", 5)
	_, err := uc.Add(context.Background(), cliente, prod, 2)
	require.NoError(t, err)
	store.FailSaleCreate = errors.New("conexión perdida")

	_, err = uc.Checkout(context.Background(), cliente)
	require.Error(t, err)
	assert.Equal(t, 5, store.Product(prod).Stock)
	assert.Equal(t, 1, store.CartSize(cliente.UserID), "el carrito queda intacto tras el rollback")
}

func TestCheckout_SoloCarritoPropio(t *testing.T) {
	store, uc, cat := newCart(t)
	prod := store.AddProduct(cat, "Café Premium", "10.00", 5)
	_, err := uc.Add(context.Background(), cliente, prod, 1)
	require.NoError(t, err)
	_, err = uc.Add(context.Background(), otro, prod, 2)
	require.NoError(t, err)

	_, err = uc.Checkout(context.Background(), otro)
	require.NoError(t, err)
	assert.Equal(t, 1, store.CartSize(cliente.UserID))
	assert.Equal(t, 3, store.Product(prod).Stock)
}
