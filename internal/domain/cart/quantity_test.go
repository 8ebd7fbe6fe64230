package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Tienda-api/internal/domain/cart"
)

func TestAddQuantity(t *testing.T) {
	cases := []struct {
		name                       string
		existing, requested, stock int
		want                       int
	}{
		{"linea nueva dentro del stock", 0, 3, 5, 3},
		{"linea nueva excede stock", 0, 7, 5, 5},
		{"merge dentro del stock", 2, 2, 5, 4},
		{"merge excede stock", 4, 3, 5, 5},
		{"sin stock", 0, 2, 0, 0},
		{"stock reducido bajo lo existente", 6, 1, 4, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cart.AddQuantity(tc.existing, tc.requested, tc.stock)
			assert.Equal(t, tc.want, got)
			assert.LessOrEqual(t, got, tc.stock, "la cantidad nunca excede el stock")
		})
	}
}

func TestSetQuantity(t *testing.T) {
	q, remove := cart.SetQuantity(0, 5)
	assert.True(t, remove)
	assert.Zero(t, q)

	q, remove = cart.SetQuantity(-3, 5)
	assert.True(t, remove)

	q, remove = cart.SetQuantity(3, 5)
	assert.False(t, remove)
	assert.Equal(t, 3, q)

	q, remove = cart.SetQuantity(9, 5)
	assert.False(t, remove)
	assert.Equal(t, 5, q)

	_, remove = cart.SetQuantity(2, 0)
	assert.True(t, remove, "producto agotado elimina la línea")
}
