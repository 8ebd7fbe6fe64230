package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// CategorySalesResult fila cruda del reporte por categoría.
type CategorySalesResult struct {
	CategoryID   int64
	CategoryName string
	SaleCount    int
	Revenue      decimal.Decimal
	ProductCount int // productos de la categoría (vendidos o no)
}

// ProductSalesResult fila cruda del reporte por producto.
type ProductSalesResult struct {
	ProductID    int64
	ProductName  string
	CategoryName string
	SaleCount    int
	UnitsSold    int
	Revenue      decimal.Decimal
}

// ReportRepository consultas de solo lectura agregadas sobre el libro de ventas.
// Solo devuelven grupos con al menos una venta.
type ReportRepository interface {
	SalesByCategory(ctx context.Context, categoryID *int64) ([]CategorySalesResult, error)
	SalesByProduct(ctx context.Context) ([]ProductSalesResult, error)
}
