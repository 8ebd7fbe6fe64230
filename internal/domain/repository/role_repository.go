package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// RoleRepository registro de roles y sus permisos.
type RoleRepository interface {
	// Upsert crea el rol por tipo o actualiza descripción y permisos.
	Upsert(ctx context.Context, role *entity.Role) error
	GetByType(ctx context.Context, roleType string) (*entity.Role, error)
	List(ctx context.Context) ([]*entity.Role, error)
	SetPermissions(ctx context.Context, roleType string, permissions []string) error
}
