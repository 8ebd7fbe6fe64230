package usecase

import (
	"context"
	"sort"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// RoleUseCase administración de roles y sus permisos.
// Los cambios aplican a los tokens emitidos después; los tokens vigentes conservan sus permisos hasta expirar.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// List devuelve los roles y el catálogo de permisos.
func (uc *RoleUseCase) List(ctx context.Context) (*dto.RoleListResponse, error) {
	roles, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.RoleListResponse{
		Roles:       make([]dto.RoleResponse, 0, len(roles)),
		Permissions: make([]dto.PermissionResponse, 0, len(entity.AllPermissions)),
	}
	for _, r := range roles {
		out.Roles = append(out.Roles, toRoleResponse(r))
	}
	for _, p := range entity.AllPermissions {
		out.Permissions = append(out.Permissions, dto.PermissionResponse{Codename: p.Codename, Name: p.Name})
	}
	return out, nil
}

// Update reemplaza el conjunto de permisos del rol (y opcionalmente su descripción).
// Tipo desconocido → ErrNotFound; codename desconocido → ErrUnknownPermission.
func (uc *RoleUseCase) Update(ctx context.Context, roleType string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	if !entity.IsValidRoleType(roleType) {
		return nil, domain.ErrNotFound
	}
	perms, err := normalizePermissions(in.Permissions)
	if err != nil {
		return nil, err
	}
	role, err := uc.repo.GetByType(ctx, roleType)
	if err != nil {
		return nil, err
	}
	if role == nil {
		role = &entity.Role{Type: roleType}
	}
	role.Permissions = perms
	if in.Description != nil {
		role.Description = *in.Description
	}
	if err := uc.repo.Upsert(ctx, role); err != nil {
		return nil, err
	}
	resp := toRoleResponse(role)
	return &resp, nil
}

func normalizePermissions(in []string) ([]string, error) {
	set := make(map[string]struct{}, len(in))
	for _, p := range in {
		if !entity.IsKnownPermission(p) {
			return nil, domain.ErrUnknownPermission
		}
		set[p] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

func toRoleResponse(r *entity.Role) dto.RoleResponse {
	perms := r.Permissions
	if perms == nil {
		perms = []string{}
	}
	return dto.RoleResponse{Type: r.Type, Description: r.Description, Permissions: perms}
}
