// seed inicializa la base con usuarios de prueba, categorías, productos y algunas ventas.
//
// Uso: go run ./cmd/seed
// Es idempotente: lo que ya existe (por username o nombre) no se vuelve a crear.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain/access"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Tienda-api/pkg/config"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

type seedUser struct {
	username, email, password, role string
	superuser                       bool
}

var seedUsers = []seedUser{
	{"admin", "admin@tienda.local", "admin123", entity.RoleAdmin, true},
	{"vendedor", "vendedor@tienda.local", "vendedor123", entity.RoleVendedor, false},
	{"gerente", "gerente@tienda.local", "gerente123", entity.RoleGerente, false},
}

var seedCategories = []dto.CategoryRequest{
	{Name: "Electrónica", Description: "Productos electrónicos y tecnología"},
	{Name: "Ropa", Description: "Prendas de vestir y accesorios"},
	{Name: "Alimentos", Description: "Productos alimenticios"},
	{Name: "Hogar", Description: "Productos para el hogar"},
}

type seedProduct struct {
	name, category, price string
	stock                 int
}

var seedProducts = []seedProduct{
	{"Laptop Dell", "Electrónica", "1200.00", 15},
	{"Mouse Inalámbrico", "Electrónica", "35.00", 50},
	{"Teclado Mecánico", "Electrónica", "150.00", 25},
	{"Monitor 24\"", "Electrónica", "250.00", 10},
	{"Camiseta Básica", "Ropa", "25.00", 100},
	{"Pantalón Jeans", "Ropa", "60.00", 80},
	{"Zapatos Deportivos", "Ropa", "85.00", 40},
	{"Chaqueta de Cuero", "Ropa", "180.00", 20},
	{"Arroz (1kg)", "Alimentos", "5.00", 200},
	{"Aceite de Oliva (500ml)", "Alimentos", "8.50", 150},
	{"Café Premium (250g)", "Alimentos", "12.00", 100},
	{"Almohada de Memoria", "Hogar", "45.00", 60},
	{"Juego de Sábanas", "Hogar", "80.00", 40},
	{"Lámpara LED", "Hogar", "35.00", 75},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)

	admin, err := seedAllUsers(ctx, userRepo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("usuarios")
	}
	categoryIDs, err := seedAllCategories(ctx, usecase.NewCategoryUseCase(categoryRepo, nil, log), log)
	if err != nil {
		log.Fatal().Err(err).Msg("categorías")
	}
	if err := seedAllProducts(ctx, productRepo, usecase.NewProductUseCase(productRepo, categoryRepo, nil, log), categoryIDs, log); err != nil {
		log.Fatal().Err(err).Msg("productos")
	}
	saleUC := sales.NewSaleUseCase(saleRepo, postgres.NewTxRunner(pool), nil, log)
	if err := seedSales(ctx, saleRepo, productRepo, saleUC, admin, log); err != nil {
		log.Fatal().Err(err).Msg("ventas")
	}

	fmt.Println("Usuarios de prueba:")
	for _, u := range seedUsers {
		fmt.Printf("  %-9s / %-12s rol %s\n", u.username, u.password, u.role)
	}
}

func seedAllUsers(ctx context.Context, repo repository.UserRepository, log *logger.Logger) (access.Principal, error) {
	var admin access.Principal
	for _, su := range seedUsers {
		existing, err := repo.GetByUsername(ctx, su.username)
		if err != nil {
			return admin, err
		}
		if existing == nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
			if err != nil {
				return admin, err
			}
			now := time.Now()
			existing = &entity.User{
				ID:           uuid.New().String(),
				Username:     su.username,
				Email:        su.email,
				PasswordHash: string(hash),
				Role:         su.role,
				IsSuperuser:  su.superuser,
				Status:       entity.UserStatusActive,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := repo.Create(ctx, existing); err != nil {
				return admin, err
			}
			log.Info().Str("username", su.username).Msg("usuario creado")
		}
		if su.superuser {
			admin = access.Principal{
				UserID:      existing.ID,
				Username:    existing.Username,
				Role:        existing.Role,
				Permissions: access.ResolvePermissions(existing, nil),
			}
		}
	}
	return admin, nil
}

func seedAllCategories(ctx context.Context, uc *usecase.CategoryUseCase, log *logger.Logger) (map[string]int64, error) {
	list, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int64, len(list))
	for _, c := range list {
		ids[c.Name] = c.ID
	}
	for _, in := range seedCategories {
		if _, ok := ids[in.Name]; ok {
			continue
		}
		c, err := uc.Create(ctx, in)
		if err != nil {
			return nil, err
		}
		ids[c.Name] = c.ID
		log.Info().Str("nombre", c.Name).Msg("categoría creada")
	}
	return ids, nil
}

func seedAllProducts(ctx context.Context, repo repository.ProductRepository, uc *usecase.ProductUseCase, categoryIDs map[string]int64, log *logger.Logger) error {
	existing, err := repo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return err
	}
	names := make(map[string]bool, len(existing))
	for _, p := range existing {
		names[p.Name] = true
	}
	for _, sp := range seedProducts {
		if names[sp.name] {
			continue
		}
		p, err := uc.Create(ctx, dto.CreateProductRequest{
			Name:       sp.name,
			CategoryID: categoryIDs[sp.category],
			Price:      decimal.RequireFromString(sp.price),
			Stock:      sp.stock,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", sp.name, err)
		}
		log.Info().Str("nombre", p.Name).Str("precio", p.Price.StringFixed(2)).Msg("producto creado")
	}
	return nil
}

// seedSales registra una venta por cada uno de los primeros cinco productos, con fechas
// escalonadas hacia atrás desde hoy. Solo si el libro está vacío.
func seedSales(ctx context.Context, saleRepo repository.SaleRepository, productRepo repository.ProductRepository, uc *sales.SaleUseCase, admin access.Principal, log *logger.Logger) error {
	current, err := saleRepo.List(ctx, repository.SaleFilter{})
	if err != nil {
		return err
	}
	if len(current) > 0 {
		log.Info().Int("ventas", len(current)).Msg("ya existen ventas registradas")
		return nil
	}
	products, err := productRepo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return err
	}
	if len(products) > 5 {
		products = products[:5]
	}
	today := sales.DateOnly(time.Now())
	for i, p := range products {
		out, err := uc.Create(ctx, admin, dto.CreateSaleRequest{
			ProductID: p.ID,
			Quantity:  i + 1,
			Date:      today.AddDate(0, 0, -i).Format(sales.DateLayout),
		})
		if err != nil {
			return fmt.Errorf("venta %s: %w", p.Name, err)
		}
		log.Info().Str("producto", out.ProductName).Str("total", out.Total.StringFixed(2)).Msg("venta creada")
	}
	return nil
}
