package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/memstore"
	"github.com/jhoicas/Tienda-api/internal/application/reporting"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain/access"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// versionedCache caché de reportes en memoria con la misma semántica de versión que la de Redis.
type versionedCache struct {
	version int64
	data    map[string]*dto.SalesReportDTO
}

func newVersionedCache() *versionedCache {
	return &versionedCache{data: map[string]*dto.SalesReportDTO{}}
}

func (c *versionedCache) GetSalesReport(ctx context.Context, key string) (*dto.SalesReportDTO, int64, bool, error) {
	r, ok := c.data[key]
	return r, c.version, ok, nil
}

func (c *versionedCache) SetSalesReport(ctx context.Context, version int64, key string, r *dto.SalesReportDTO) error {
	if version == c.version {
		c.data[key] = r
	}
	return nil
}

func (c *versionedCache) Invalidate(ctx context.Context) error {
	c.version++
	c.data = map[string]*dto.SalesReportDTO{}
	return nil
}

type reportFixture struct {
	store   *memstore.Store
	cache   *versionedCache
	reports *reporting.ReportUseCase
	cat     int64
	prod    int64
}

func newReportFixture(t *testing.T) reportFixture {
	t.Helper()
	store := memstore.New()
	store.AddUser(entity.User{ID: "u-1", Username: "vendedor"})
	cat := store.AddCategory("Hogar")
	prod := store.AddProduct(cat, "Lámpara", "10.00", 5)
	seller := "u-1"
	store.AddSale(prod, 2, "10.00", time.Now(), &seller)
	cache := newVersionedCache()
	return reportFixture{
		store:   store,
		cache:   cache,
		reports: reporting.NewReportUseCase(store.Sales(), store.Reports(), cache, nil, nil),
		cat:     cat,
		prod:    prod,
	}
}

func (f reportFixture) report(t *testing.T) *dto.SalesReportDTO {
	t.Helper()
	r, err := f.reports.SalesReport(context.Background(), reporting.RawFilters{})
	require.NoError(t, err)
	return r
}

func TestProductUseCase_Delete_InvalidaReportes(t *testing.T) {
	f := newReportFixture(t)
	prods := usecase.NewProductUseCase(f.store.Products(), f.store.Categories(), f.cache, nil)

	before := f.report(t)
	require.Equal(t, 1, before.TotalSales)

	require.NoError(t, prods.Delete(context.Background(), f.prod))
	require.Equal(t, 0, f.store.SaleCount())

	after := f.report(t)
	assert.Equal(t, 0, after.TotalSales)
	assert.InDelta(t, 0.0, after.TotalRevenue, 1e-9)
}

func TestProductUseCase_Update_InvalidaSoloSiCambiaNombreOCategoria(t *testing.T) {
	f := newReportFixture(t)
	prods := usecase.NewProductUseCase(f.store.Products(), f.store.Categories(), f.store, nil)
	otra := f.store.AddCategory("Deportes")
	ctx := context.Background()

	stock := 9
	_, err := prods.Update(ctx, f.prod, dto.UpdateProductRequest{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 0, f.store.Invalidations, "el stock no aparece en el reporte")

	_, err = prods.Update(ctx, f.prod, dto.UpdateProductRequest{CategoryID: &otra})
	require.NoError(t, err)
	assert.Equal(t, 1, f.store.Invalidations)

	name := "Lámpara LED"
	_, err = prods.Update(ctx, f.prod, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, 2, f.store.Invalidations)
}

func TestProductUseCase_Update_MoverCategoriaRefrescaDesglose(t *testing.T) {
	f := newReportFixture(t)
	prods := usecase.NewProductUseCase(f.store.Products(), f.store.Categories(), f.cache, nil)
	otra := f.store.AddCategory("Deportes")

	before := f.report(t)
	require.Len(t, before.ByCategory, 1)
	require.Equal(t, "Hogar", before.ByCategory[0].CategoryName)

	_, err := prods.Update(context.Background(), f.prod, dto.UpdateProductRequest{CategoryID: &otra})
	require.NoError(t, err)

	after := f.report(t)
	require.Len(t, after.ByCategory, 1)
	assert.Equal(t, "Deportes", after.ByCategory[0].CategoryName)
}

func TestCategoryUseCase_UpdateYDelete_InvalidanReportes(t *testing.T) {
	f := newReportFixture(t)
	cats := usecase.NewCategoryUseCase(f.store.Categories(), f.cache, nil)
	ctx := context.Background()

	require.Equal(t, "Hogar", f.report(t).ByCategory[0].CategoryName)

	_, err := cats.Update(ctx, f.cat, dto.CategoryRequest{Name: "Casa"})
	require.NoError(t, err)
	renamed := f.report(t)
	require.Len(t, renamed.ByCategory, 1)
	assert.Equal(t, "Casa", renamed.ByCategory[0].CategoryName)

	require.NoError(t, cats.Delete(ctx, f.cat))
	assert.Equal(t, 0, f.report(t).TotalSales)
}

func TestUserUseCase_Delete_InvalidaVendedorTop(t *testing.T) {
	f := newReportFixture(t)
	users := usecase.NewUserUseCase(f.store.Users(), f.cache, nil)

	before := f.report(t)
	require.NotNil(t, before.TopSeller)
	require.Equal(t, "vendedor", before.TopSeller.Username)

	require.NoError(t, users.Delete(context.Background(), access.Principal{UserID: "u-admin"}, "u-1"))

	after := f.report(t)
	assert.Equal(t, 1, after.TotalSales)
	assert.Nil(t, after.TopSeller)
}

func TestCatalogo_FallosNoInvalidan(t *testing.T) {
	store := memstore.New()
	prods := usecase.NewProductUseCase(store.Products(), store.Categories(), store, nil)
	cats := usecase.NewCategoryUseCase(store.Categories(), store, nil)
	ctx := context.Background()

	assert.Error(t, prods.Delete(ctx, 999))
	assert.Error(t, cats.Delete(ctx, 999))
	missing, err := cats.Update(ctx, 999, dto.CategoryRequest{Name: "X"})
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.Equal(t, 0, store.Invalidations)
}
