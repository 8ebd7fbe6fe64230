package sales

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// SaleTxRunner ejecuta fn en una transacción con los repos de producto y ventas atados a ella.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReportInvalidator se notifica cada vez que cambia algo que aparece en los reportes de ventas.
type ReportInvalidator interface {
	Invalidate(ctx context.Context) error
}
