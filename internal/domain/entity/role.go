package entity

// Tipos de rol válidos.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
	RoleGerente  = "gerente"
	RoleCliente  = "cliente"
)

// RoleTypes en el orden en que se listan.
var RoleTypes = []string{RoleAdmin, RoleVendedor, RoleGerente, RoleCliente}

// Role agrupación estática de permisos configurada por el administrador.
type Role struct {
	ID          int64
	Type        string
	Description string
	Permissions []string
}

// IsValidRoleType indica si t es uno de los tipos de rol conocidos.
func IsValidRoleType(t string) bool {
	for _, r := range RoleTypes {
		if r == t {
			return true
		}
	}
	return false
}
