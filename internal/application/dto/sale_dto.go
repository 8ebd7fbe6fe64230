package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para el registro manual de una venta (POST /api/ventas).
type CreateSaleRequest struct {
	ProductID int64  `json:"producto_id" validate:"required,gt=0"`
	Quantity  int    `json:"cantidad" validate:"required,gte=1"`
	Date      string `json:"fecha" validate:"omitempty,datetime=2006-01-02"` // por defecto hoy
}

// SaleResponse venta materializada.
type SaleResponse struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"producto_id"`
	ProductName  string          `json:"producto"`
	CategoryID   int64           `json:"categoria_id"`
	CategoryName string          `json:"categoria"`
	Quantity     int             `json:"cantidad"`
	UnitPrice    decimal.Decimal `json:"precio_unitario"`
	Total        decimal.Decimal `json:"total"`
	Date         string          `json:"fecha"` // YYYY-MM-DD
	Seller       *string         `json:"vendedor"`
	CreatedAt    time.Time       `json:"creado_en"`
}

// SaleListResponse listado de ventas con sus totales.
type SaleListResponse struct {
	Sales        []SaleResponse `json:"ventas"`
	TotalSales   int            `json:"total_ventas"`
	TotalRevenue float64        `json:"ingreso_total"`
	AveragePer   float64        `json:"promedio_venta"`
	Filters      ReportFilters  `json:"filtros"`
}
