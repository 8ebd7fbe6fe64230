package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddToCartRequest entrada para POST /api/carrito/agregar.
type AddToCartRequest struct {
	ProductID int64 `json:"producto_id" validate:"required,gt=0"`
	Quantity  int   `json:"cantidad" validate:"required,gt=0"`
}

// UpdateCartItemRequest entrada para POST /api/carrito/actualizar/:item_id. cantidad <= 0 elimina la línea.
type UpdateCartItemRequest struct {
	Quantity int `json:"cantidad"`
}

// CartLineResponse línea del carrito con subtotal.
type CartLineResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"producto_id"`
	ProductName string          `json:"producto"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	Quantity    int             `json:"cantidad"`
	Stock       int             `json:"stock_disponible"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	AddedAt     time.Time       `json:"fecha_agregado"`
}

// CartResponse carrito completo del usuario.
type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

// SkippedLineResponse línea del carrito que no se pudo vender en el checkout.
type SkippedLineResponse struct {
	ProductID   int64  `json:"producto_id"`
	ProductName string `json:"producto"`
	Requested   int    `json:"cantidad_solicitada"`
	Available   int    `json:"stock_disponible"`
	Reason      string `json:"motivo"`
}

// CheckoutResponse resultado del checkout: ventas creadas y líneas omitidas.
type CheckoutResponse struct {
	Sales   []SaleResponse        `json:"ventas"`
	Skipped []SkippedLineResponse `json:"omitidos"`
	Total   decimal.Decimal       `json:"total"`
}
