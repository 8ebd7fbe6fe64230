package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	invalidator  sales.ReportInvalidator
	log          *logger.Logger
}

// NewProductUseCase construye el caso de uso. invalidator puede ser nil.
// Renombrar, mover o borrar un producto cambia los reportes de ventas, por eso se invalida la caché.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	invalidator sales.ReportInvalidator,
	log *logger.Logger,
) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, invalidator: invalidator, log: log}
}

// Create crea un producto en una categoría existente.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() || in.Stock < 0 || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrInvalidInput // categoría no existe
	}
	product := &entity.Product{
		CategoryID:   in.CategoryID,
		CategoryName: category.Name,
		Name:         strings.TrimSpace(in.Name),
		Price:        in.Price.Round(2),
		Stock:        in.Stock,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos presentes. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	reported := false // nombre o categoría: aparecen en el reporte de ventas
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		reported = name != product.Name
		product.Name = name
	}
	if in.CategoryID != nil && *in.CategoryID != product.CategoryID {
		category, err := uc.categoryRepo.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrInvalidInput
		}
		product.CategoryID = category.ID
		product.CategoryName = category.Name
		reported = true
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = in.Price.Round(2)
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	if reported {
		sales.InvalidateReports(ctx, uc.invalidator, uc.log)
	}
	return toProductResponse(product), nil
}

// Catalog lista productos filtrados por categoría y texto, junto con todas las categorías.
// Un categoryID <= 0 no filtra.
func (uc *ProductUseCase) Catalog(ctx context.Context, categoryID int64, q string) (*dto.CatalogResponse, error) {
	q = strings.TrimSpace(q)
	filter := repository.ProductFilter{Query: q}
	if categoryID > 0 {
		filter.CategoryID = categoryID
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.CatalogResponse{
		Items:      make([]dto.ProductResponse, 0, len(list)),
		Categories: make([]dto.CategoryResponse, 0, len(categories)),
		Query:      q,
	}
	if filter.CategoryID > 0 {
		out.CategoryID = &filter.CategoryID
	}
	for _, p := range list {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	for _, c := range categories {
		out.Categories = append(out.Categories, *toCategoryResponse(c))
	}
	return out, nil
}

// Delete elimina un producto por ID junto con sus ventas.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	sales.InvalidateReports(ctx, uc.invalidator, uc.log)
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Price:        p.Price,
		Stock:        p.Stock,
	}
}
