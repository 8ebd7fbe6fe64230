// Package access modela al usuario autenticado y su conjunto de permisos.
package access

import (
	"sort"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// Principal es el contexto explícito de la petición: quién actúa y qué puede hacer.
// Se construye en el middleware de auth y se pasa por valor a los casos de uso.
type Principal struct {
	UserID      string
	Username    string
	Role        string
	Permissions []string
}

// Has indica si el principal tiene el permiso codename.
func (p Principal) Has(codename string) bool {
	for _, perm := range p.Permissions {
		if perm == codename {
			return true
		}
	}
	return false
}

// IsAuthenticated es false para el principal cero.
func (p Principal) IsAuthenticated() bool {
	return p.UserID != ""
}

// ResolvePermissions une los permisos del rol y los directos del usuario (sin duplicados, ordenados).
// Un superusuario recibe todos los permisos conocidos. role puede ser nil.
func ResolvePermissions(user *entity.User, role *entity.Role) []string {
	if user == nil {
		return nil
	}
	if user.IsSuperuser {
		return entity.AllPermissionCodenames()
	}
	set := make(map[string]struct{})
	if role != nil {
		for _, p := range role.Permissions {
			set[p] = struct{}{}
		}
	}
	for _, p := range user.Permissions {
		set[p] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
