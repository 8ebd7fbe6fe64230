package entity

import "time"

// Estados de usuario.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string   // bcrypt hash, nunca plano en dominio después de persistir
	Role         string   // tipo de rol; vacío si no tiene
	IsSuperuser  bool
	Permissions  []string // permisos directos, además de los del rol
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
