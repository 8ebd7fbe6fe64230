package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ProductFilter filtros del catálogo. Cero = sin filtro.
type ProductFilter struct {
	CategoryID int64
	Query      string // coincide con nombre de producto o de categoría, sin distinguir mayúsculas
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE). Solo dentro de una tx.
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// DecrementStock resta qty solo si hay stock suficiente; devuelve ErrInsufficientStock si no.
	DecrementStock(ctx context.Context, id int64, qty int) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
