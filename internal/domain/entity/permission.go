package entity

// Codenames de permisos que chequean las rutas protegidas.
const (
	PermViewSale            = "view_venta"
	PermAddSale             = "add_venta"
	PermViewSalesReports    = "view_sales_reports"
	PermExportSalesReports  = "export_sales_reports"
	PermViewProductReports  = "view_product_reports"
	PermViewCategoryReports = "view_categoria_reports"
	PermManageCatalog       = "manage_catalog"
	PermManageRoles         = "manage_roles"
)

// Permission codename y descripción legible.
type Permission struct {
	Codename string
	Name     string
}

// AllPermissions catálogo completo; un superusuario los tiene todos.
var AllPermissions = []Permission{
	{PermViewSale, "Puede ver ventas"},
	{PermAddSale, "Puede registrar ventas"},
	{PermViewSalesReports, "Puede ver reportes de ventas"},
	{PermExportSalesReports, "Puede descargar reportes en PDF"},
	{PermViewProductReports, "Puede ver reportes de productos"},
	{PermViewCategoryReports, "Puede ver reportes de categorías"},
	{PermManageCatalog, "Puede administrar categorías y productos"},
	{PermManageRoles, "Puede administrar roles y usuarios"},
}

// AllPermissionCodenames devuelve solo los codenames de AllPermissions.
func AllPermissionCodenames() []string {
	out := make([]string, 0, len(AllPermissions))
	for _, p := range AllPermissions {
		out = append(out, p.Codename)
	}
	return out
}

// IsKnownPermission indica si codename existe en el catálogo.
func IsKnownPermission(codename string) bool {
	for _, p := range AllPermissions {
		if p.Codename == codename {
			return true
		}
	}
	return false
}

// DefaultRolePermissions permisos con que se siembra cada rol.
var DefaultRolePermissions = map[string][]string{
	RoleAdmin:    AllPermissionCodenames(),
	RoleVendedor: {PermAddSale, PermViewSale, PermViewProductReports},
	RoleGerente:  {PermViewSalesReports, PermExportSalesReports, PermViewProductReports, PermViewCategoryReports},
	RoleCliente:  {},
}
