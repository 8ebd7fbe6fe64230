package cart

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// CheckoutTxRunner ejecuta fn en una transacción con los repos de carrito, productos y ventas atados a ella.
type CheckoutTxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		cartRepo repository.CartRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
