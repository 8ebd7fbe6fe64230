package dto

import "time"

// SignupRequest entrada para POST /api/auth/signup.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150,alphanum"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"rol"`
	IsSuperuser bool      `json:"is_superuser"`
	Permissions []string  `json:"permisos"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoginResponse token JWT más el usuario con sus permisos resueltos.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AssignRoleRequest entrada para PUT /api/usuarios/:id/rol.
type AssignRoleRequest struct {
	Role string `json:"rol" validate:"required,oneof=admin vendedor gerente cliente"`
}
