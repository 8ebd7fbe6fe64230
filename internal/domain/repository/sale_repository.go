package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// SaleFilter filtros del libro de ventas. Campos nil = sin filtro. Las fechas son inclusivas.
type SaleFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *int64
	ProductID  *int64
}

// SaleRepository libro de ventas: solo inserción y lectura.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// List devuelve las ventas materializadas que cumplen el filtro, más recientes primero.
	List(ctx context.Context, filter SaleFilter) ([]entity.SaleRecord, error)
}
