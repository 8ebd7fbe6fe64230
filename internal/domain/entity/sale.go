package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es un registro inmutable del libro de ventas.
// UnitPrice congela el precio del producto al crear la venta, así Total no cambia si el precio se edita.
type Sale struct {
	ID        int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Date      time.Time // solo fecha (DATE)
	SellerID  *string   // nil si el vendedor fue eliminado
	CreatedAt time.Time
}

// Total devuelve cantidad × precio unitario, exacto.
func (s *Sale) Total() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// SaleRecord venta materializada con los datos de producto, categoría y vendedor para listados y reportes.
type SaleRecord struct {
	Sale
	ProductName    string
	CategoryID     int64
	CategoryName   string
	SellerUsername *string
}
