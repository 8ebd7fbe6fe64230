package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem línea del carrito de un usuario. (UserID, ProductID) es único.
type CartItem struct {
	ID        int64
	UserID    string
	ProductID int64
	Quantity  int
	AddedAt   time.Time
}

// CartLine línea del carrito con el producto materializado.
type CartLine struct {
	CartItem
	ProductName  string
	UnitPrice    decimal.Decimal
	ProductStock int
}

// Subtotal devuelve cantidad × precio actual del producto.
func (l *CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
