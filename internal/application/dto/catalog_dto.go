package dto

import "github.com/shopspring/decimal"

// CategoryRequest entrada para crear o editar una categoría.
type CategoryRequest struct {
	Name        string `json:"nombre" validate:"required,max=100"`
	Description string `json:"descripcion" validate:"omitempty,max=2000"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name       string          `json:"nombre" validate:"required,max=100"`
	CategoryID int64           `json:"categoria_id" validate:"required,gt=0"`
	Price      decimal.Decimal `json:"precio" validate:"gte=0"`
	Stock      int             `json:"stock" validate:"gte=0"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name       *string          `json:"nombre,omitempty" validate:"omitempty,min=1,max=100"`
	CategoryID *int64           `json:"categoria_id,omitempty" validate:"omitempty,gt=0"`
	Price      *decimal.Decimal `json:"precio,omitempty"`
	Stock      *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
}

// ProductResponse salida de un producto con su categoría.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"nombre"`
	CategoryID   int64           `json:"categoria_id"`
	CategoryName string          `json:"categoria"`
	Price        decimal.Decimal `json:"precio"`
	Stock        int             `json:"stock"`
}

// CatalogResponse listado del catálogo con los filtros aplicados.
type CatalogResponse struct {
	Items      []ProductResponse  `json:"productos"`
	Categories []CategoryResponse `json:"categorias"`
	CategoryID *int64             `json:"categoria_seleccionada,omitempty"`
	Query      string             `json:"q,omitempty"`
}
