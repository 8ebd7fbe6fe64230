package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo.
// Stock es el único contador compartido que modifican checkout y ventas manuales; nunca es negativo.
type Product struct {
	ID           int64
	CategoryID   int64
	CategoryName string // materializado por los repositorios (join)
	Name         string
	Price        decimal.Decimal // NUMERIC(10,2)
	Stock        int
}

// ClampToStock acota qty al stock disponible del producto.
func (p *Product) ClampToStock(qty int) int {
	if qty > p.Stock {
		return p.Stock
	}
	return qty
}
