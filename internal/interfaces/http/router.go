package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/cart"
	"github.com/jhoicas/Tienda-api/internal/application/reporting"
	"github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	CartUC     *cart.CartUseCase
	SaleUC     *sales.SaleUseCase
	ReportUC   *reporting.ReportUseCase
	RoleUC     *usecase.RoleUseCase
	UserUC     *usecase.UserUseCase
	JWTSecret  string
	Logger     *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, log.Component("auth"))
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	manageCatalog := RequirePermission(entity.PermManageCatalog)

	// Catálogo: lectura para cualquier usuario autenticado, escritura con manage_catalog
	catalogHandler := NewCatalogHandler(deps.CategoryUC, deps.ProductUC, log.Component("catalogo"))
	categories := protected.Group("/categorias")
	categories.Get("/", catalogHandler.ListCategories)
	categories.Post("/", manageCatalog, catalogHandler.CreateCategory)
	categories.Put("/:id", manageCatalog, catalogHandler.UpdateCategory)
	categories.Delete("/:id", manageCatalog, catalogHandler.DeleteCategory)

	products := protected.Group("/productos")
	products.Get("/", catalogHandler.ListProducts)
	products.Get("/:id", catalogHandler.GetProduct)
	products.Post("/", manageCatalog, catalogHandler.CreateProduct)
	products.Put("/:id", manageCatalog, catalogHandler.UpdateProduct)
	products.Delete("/:id", manageCatalog, catalogHandler.DeleteProduct)

	// Carrito
	cartGroup := protected.Group("/carrito")
	cartHandler := NewCartHandler(deps.CartUC, log.Component("carrito"))
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Post("/agregar", cartHandler.Add)
	cartGroup.Post("/eliminar/:item_id", cartHandler.Remove)
	cartGroup.Post("/actualizar/:item_id", cartHandler.Update)
	cartGroup.Post("/procesar", cartHandler.Checkout)

	// Ventas
	salesGroup := protected.Group("/ventas")
	saleHandler := NewSaleHandler(deps.SaleUC, log.Component("ventas"))
	salesGroup.Get("/", RequirePermission(entity.PermViewSale), saleHandler.List)
	salesGroup.Post("/", RequirePermission(entity.PermAddSale), saleHandler.Create)

	// Reportes
	reports := protected.Group("/reportes")
	reportHandler := NewReportHandler(deps.ReportUC, log.Component("reportes"))
	reports.Get("/ventas", RequirePermission(entity.PermViewSalesReports), reportHandler.Sales)
	reports.Get("/categorias", RequirePermission(entity.PermViewCategoryReports), reportHandler.Categories)
	reports.Get("/productos", RequirePermission(entity.PermViewProductReports), reportHandler.Products)

	// Administración de roles y usuarios
	adminHandler := NewAdminHandler(deps.RoleUC, deps.UserUC, log.Component("admin"))
	manageRoles := RequirePermission(entity.PermManageRoles)
	roles := protected.Group("/roles", manageRoles)
	roles.Get("/", adminHandler.ListRoles)
	roles.Put("/:tipo", adminHandler.UpdateRole)
	users := protected.Group("/usuarios", manageRoles)
	users.Put("/:id/rol", adminHandler.AssignRole)
	users.Delete("/:id", adminHandler.DeleteUser)
}
