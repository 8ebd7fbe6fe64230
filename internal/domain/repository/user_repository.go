package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	SetRole(ctx context.Context, id, roleType string) error
	// Delete elimina al usuario; sus ventas quedan con vendedor NULL y su carrito se borra.
	Delete(ctx context.Context, id string) error
}
