package dto

// RoleResponse salida de un rol.
type RoleResponse struct {
	Type        string   `json:"tipo"`
	Description string   `json:"descripcion"`
	Permissions []string `json:"permisos"`
}

// PermissionResponse permiso del catálogo.
type PermissionResponse struct {
	Codename string `json:"codename"`
	Name     string `json:"nombre"`
}

// RoleListResponse roles y catálogo de permisos disponibles.
type RoleListResponse struct {
	Roles       []RoleResponse       `json:"roles"`
	Permissions []PermissionResponse `json:"permisos_disponibles"`
}

// UpdateRoleRequest entrada para PUT /api/roles/:tipo. Reemplaza el conjunto de permisos.
type UpdateRoleRequest struct {
	Description *string  `json:"descripcion,omitempty" validate:"omitempty,max=500"`
	Permissions []string `json:"permisos" validate:"dive,required"`
}
