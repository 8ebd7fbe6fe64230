package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/memstore"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

func TestProductUseCase_CreateYCatalogo(t *testing.T) {
	store := memstore.New()
	cats := usecase.NewCategoryUseCase(store.Categories(), nil, nil)
	prods := usecase.NewProductUseCase(store.Products(), store.Categories(), nil, nil)
	ctx := context.Background()

	elec, err := cats.Create(ctx, dto.CategoryRequest{Name: "Electrónica"})
	require.NoError(t, err)
	ropa, err := cats.Create(ctx, dto.CategoryRequest{Name: "Ropa"})
	require.NoError(t, err)

	laptop, err := prods.Create(ctx, dto.CreateProductRequest{Name: "Laptop Dell", CategoryID: elec.ID, Price: decimal.RequireFromString("1200.004"), Stock: 15})
	require.NoError(t, err)
	assert.Equal(t, "Electrónica", laptop.CategoryName)
	assert.True(t, decimal.RequireFromString("1200.00").Equal(laptop.Price))
	_, err = prods.Create(ctx, dto.CreateProductRequest{Name: "Camisa Formal", CategoryID: ropa.ID, Price: decimal.RequireFromString("45"), Stock: 30})
	require.NoError(t, err)

	all, err := prods.Catalog(ctx, 0, "")
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
	assert.Len(t, all.Categories, 2)
	assert.Nil(t, all.CategoryID)

	byCat, err := prods.Catalog(ctx, ropa.ID, "")
	require.NoError(t, err)
	require.Len(t, byCat.Items, 1)
	assert.Equal(t, "Camisa Formal", byCat.Items[0].Name)

	byCategoryName, err := prods.Catalog(ctx, 0, "electr")
	require.NoError(t, err)
	require.Len(t, byCategoryName.Items, 1, "q también busca en el nombre de la categoría")
	assert.Equal(t, "Laptop Dell", byCategoryName.Items[0].Name)

	byName, err := prods.Catalog(ctx, 0, "CAMISA")
	require.NoError(t, err)
	assert.Len(t, byName.Items, 1)
}

func TestProductUseCase_Create_Invalidos(t *testing.T) {
	store := memstore.New()
	prods := usecase.NewProductUseCase(store.Products(), store.Categories(), nil, nil)
	cat := store.AddCategory("Hogar")

	_, err := prods.Create(context.Background(), dto.CreateProductRequest{Name: "X", CategoryID: 999, Price: decimal.NewFromInt(1)})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "categoría inexistente")

	_, err = prods.Create(context.Background(), dto.CreateProductRequest{Name: "X", CategoryID: cat, Price: decimal.NewFromInt(-1)})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "precio negativo")
}

func TestProductUseCase_Update(t *testing.T) {
	store := memstore.New()
	prods := usecase.NewProductUseCase(store.Products(), store.Categories(), nil, nil)
	cat := store.AddCategory("Hogar")
	otra := store.AddCategory("Deportes")
	id := store.AddProduct(cat, "Sartén", "30.00", 4)

	price := decimal.RequireFromString("27.50")
	stock := 10
	out, err := prods.Update(context.Background(), id, dto.UpdateProductRequest{Price: &price, Stock: &stock, CategoryID: &otra})
	require.NoError(t, err)
	assert.True(t, price.Equal(out.Price))
	assert.Equal(t, 10, out.Stock)
	assert.Equal(t, "Deportes", out.CategoryName)

	neg := -1
	_, err = prods.Update(context.Background(), id, dto.UpdateProductRequest{Stock: &neg})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	missing, err := prods.Update(context.Background(), 999, dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCategoryUseCase_DeleteBorraProductosEnCascada(t *testing.T) {
	store := memstore.New()
	cats := usecase.NewCategoryUseCase(store.Categories(), nil, nil)
	prods := usecase.NewProductUseCase(store.Products(), store.Categories(), nil, nil)
	cat := store.AddCategory("Alimentos")
	id := store.AddProduct(cat, "Café", "12.00", 3)
	store.AddSale(id, 1, "12.00", time.Now(), nil)

	require.NoError(t, cats.Delete(context.Background(), cat))

	p, err := prods.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Equal(t, 0, store.SaleCount())

	assert.True(t, errors.Is(cats.Delete(context.Background(), cat), domain.ErrNotFound))
}

func TestCategoryUseCase_NombreVacio(t *testing.T) {
	cats := usecase.NewCategoryUseCase(memstore.New().Categories(), nil, nil)
	_, err := cats.Create(context.Background(), dto.CategoryRequest{Name: "   "})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
