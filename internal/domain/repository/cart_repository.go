package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// CartRepository persistencia del carrito. Todas las operaciones van acotadas al usuario.
type CartRepository interface {
	// GetByUserAndProduct devuelve la línea del usuario para el producto o nil.
	GetByUserAndProduct(ctx context.Context, userID string, productID int64) (*entity.CartItem, error)
	// GetByIDForUser devuelve la línea solo si pertenece al usuario; nil en otro caso.
	GetByIDForUser(ctx context.Context, id int64, userID string) (*entity.CartItem, error)
	Create(ctx context.Context, item *entity.CartItem) error
	UpdateQuantity(ctx context.Context, id int64, qty int) error
	Delete(ctx context.Context, id int64) error
	// ListLines devuelve las líneas del usuario con su producto, más recientes primero.
	ListLines(ctx context.Context, userID string) ([]entity.CartLine, error)
	// ListLinesForUpdate igual que ListLines pero bloquea las filas del carrito. Solo dentro de una tx.
	ListLinesForUpdate(ctx context.Context, userID string) ([]entity.CartLine, error)
	DeleteByUser(ctx context.Context, userID string) error
}
