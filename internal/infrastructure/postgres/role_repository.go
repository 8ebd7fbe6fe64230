package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo registro de roles sobre PostgreSQL. Los permisos se guardan como TEXT[].
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Upsert crea el rol o actualiza descripción y permisos si el tipo ya existe.
func (r *RoleRepo) Upsert(ctx context.Context, role *entity.Role) error {
	perms := role.Permissions
	if perms == nil {
		perms = []string{}
	}
	err := r.q.QueryRow(ctx, `
		INSERT INTO roles (tipo, descripcion, permisos)
		VALUES ($1, $2, $3)
		ON CONFLICT (tipo)
		DO UPDATE SET descripcion = EXCLUDED.descripcion, permisos = EXCLUDED.permisos
		RETURNING id`,
		role.Type, role.Description, perms,
	).Scan(&role.ID)
	if err != nil {
		return fmt.Errorf("upsert rol: %w", err)
	}
	return nil
}

// GetByType obtiene un rol por tipo.
func (r *RoleRepo) GetByType(ctx context.Context, roleType string) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(ctx,
		`SELECT id, tipo, descripcion, permisos FROM roles WHERE tipo = $1`, roleType,
	).Scan(&role.ID, &role.Type, &role.Description, &role.Permissions)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rol: %w", err)
	}
	return &role, nil
}

// List lista los roles en el orden admin, vendedor, gerente, cliente.
func (r *RoleRepo) List(ctx context.Context) ([]*entity.Role, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, tipo, descripcion, permisos FROM roles
		ORDER BY array_position($1::text[], tipo), tipo`, entity.RoleTypes)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Type, &role.Description, &role.Permissions); err != nil {
			return nil, fmt.Errorf("scan rol: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// SetPermissions reemplaza los permisos del rol.
func (r *RoleRepo) SetPermissions(ctx context.Context, roleType string, permissions []string) error {
	if permissions == nil {
		permissions = []string{}
	}
	cmd, err := r.q.Exec(ctx, `UPDATE roles SET permisos = $2 WHERE tipo = $1`, roleType, permissions)
	if err != nil {
		return fmt.Errorf("update permisos rol: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
