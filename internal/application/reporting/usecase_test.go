package reporting_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/memstore"
	"github.com/jhoicas/Tienda-api/internal/application/reporting"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/access"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

type fakeCache struct {
	data    map[string]*dto.SalesReportDTO
	version int64
	gets    int
	getErr  error
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string]*dto.SalesReportDTO{}} }

func (c *fakeCache) GetSalesReport(ctx context.Context, key string) (*dto.SalesReportDTO, int64, bool, error) {
	c.gets++
	if c.getErr != nil {
		return nil, 0, false, c.getErr
	}
	r, ok := c.data[key]
	return r, c.version, ok, nil
}

func (c *fakeCache) SetSalesReport(ctx context.Context, version int64, key string, r *dto.SalesReportDTO) error {
	if version != c.version {
		return nil
	}
	c.data[key] = r
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context) error {
	c.version++
	c.data = map[string]*dto.SalesReportDTO{}
	return nil
}

type fakePDF struct {
	err  error
	seen *dto.SalesReportDTO
}

func (g *fakePDF) GenerateSalesReport(r *dto.SalesReportDTO) ([]byte, error) {
	g.seen = r
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

var gerente = access.Principal{
	UserID:      "u-ger",
	Username:    "gerente",
	Role:        entity.RoleGerente,
	Permissions: entity.DefaultRolePermissions[entity.RoleGerente],
}

func seedLedger(t *testing.T) (*memstore.Store, int64, int64) {
	t.Helper()
	store := memstore.New()
	admin := "u-admin"
	store.AddUser(entity.User{ID: admin, Username: "admin"})
	elec := store.AddCategory("Electrónica")
	ropa := store.AddCategory("Ropa")
	store.AddCategory("Hogar")
	laptop := store.AddProduct(elec, "Laptop Dell", "1200.00", 15)
	store.AddProduct(elec, "Mouse Inalámbrico", "35.00", 50)
	camisa := store.AddProduct(ropa, "Camisa Formal", "45.00", 30)
	day := func(d int) time.Time { return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC) }
	store.AddSale(laptop, 1, "1200.00", day(1), &admin)
	store.AddSale(laptop, 2, "1200.00", day(3), &admin)
	store.AddSale(camisa, 3, "45.00", day(5), nil)
	return store, elec, ropa
}

func TestReportUseCase_SalesReport_FiltroCategoria(t *testing.T) {
	store, _, ropa := seedLedger(t)
	uc := reporting.NewReportUseCase(store.Sales(), store.Reports(), nil, nil, nil)

	r, err := uc.SalesReport(context.Background(), reporting.RawFilters{Category: itoa(ropa)})
	require.NoError(t, err)

	assert.Equal(t, 1, r.TotalSales)
	assert.InDelta(t, 135.0, r.TotalRevenue, 1e-9)
	require.Len(t, r.ByCategory, 1)
	assert.Equal(t, "Ropa", r.ByCategory[0].CategoryName)
	assert.Nil(t, r.TopSeller)
	require.NotNil(t, r.Filters.CategoryID)
}

func TestReportUseCase_SalesReport_RangoSinVentasDeCategoria(t *testing.T) {
	store, _, ropa := seedLedger(t)
	uc := reporting.NewReportUseCase(store.Sales(), store.Reports(), nil, nil, nil)

	r, err := uc.SalesReport(context.Background(), reporting.RawFilters{Start: "2024-06-01", End: "2024-06-03", Category: itoa(ropa)})
	require.NoError(t, err)
	assert.Equal(t, 0, r.TotalSales)
	assert.Empty(t, r.ByCategory)

	all, err := uc.SalesReport(context.Background(), reporting.RawFilters{Start: "2024-06-01", End: "2024-06-03"})
	require.NoError(t, err)
	assert.InDelta(t, 3600.0, all.TotalRevenue, 1e-9)
	require.NotNil(t, all.TopSeller)
	assert.Equal(t, "admin", all.TopSeller.Username)
}

func TestReportUseCase_SalesReport_UsaCache(t *testing.T) {
	store, elec, _ := seedLedger(t)
	cache := newFakeCache()
	uc := reporting.NewReportUseCase(store.Sales(), store.Reports(), cache, nil, nil)

	first, err := uc.SalesReport(context.Background(), reporting.RawFilters{})
	require.NoError(t, err)
	store.AddSale(store.AddProduct(elec, "Teclado", "1.00", 1), 1, "1.00", time.Now(), nil)

	second, err := uc.SalesReport(context.Background(), reporting.RawFilters{})
	require.NoError(t, err)
	assert.Equal(t, first.TotalSales, second.TotalSales, "el segundo reporte sale de la caché")
	assert.Equal(t, 2, cache.gets)

	require.NoError(t, cache.Invalidate(context.Background()))
	third, err := uc.SalesReport(context.Background(), reporting.RawFilters{})
	require.NoError(t, err)
	assert.Equal(t, first.TotalSales+1, third.TotalSales)
}

func TestReportUseCase_SalesReport_CacheRenuevaMarcaDeGeneracion(t *testing.T) {
	store, _, _ := seedLedger(t)
	cache := newFakeCache()
	_, active := reporting.ParseFilters(reporting.RawFilters{})
	key := reporting.CacheKey(active)
	cache.data[key] = &dto.SalesReportDTO{TotalSales: 3, GeneratedAt: "2000-01-01 00:00:00"}
	uc := reporting.NewReportUseCase(store.Sales(), store.Reports(), cache, nil, nil)

	r, err := uc.SalesReport(context.Background(), reporting.RawFilters{})
	require.NoError(t, err)
	assert.Equal(t, 3, r.TotalSales)
	assert.NotEqual(t, "2000-01-01 00:00:00", r.GeneratedAt)
	assert.Equal(t, "2000-01-01 00:00:00", cache.data[key].GeneratedAt, "la entrada cacheada no se modifica")
}

func TestReportUseCase_SalesReport_CacheCaidaRecalcula(t *testing.T) {
	store, _, _ := seedLedger(t)
	cache := newFakeCache()
	cache.getErr = errors.New("redis caído")
	uc := reporting.NewReportUseCase(store.Sales(), store.Reports(), cache, nil, nil)

	r, err := uc.SalesReport(context.Background(), reporting.RawFilters{})
	require.NoError(t, err)
	assert.Equal(t, 3, r.TotalSales)
}

func TestReportUseCase_PDF_SinPermisoExport(t *testing.T) {
	store, _, _ := seedLedger(t)
	uc := reporting.NewReportUseCase(store.Sales(), store.Reports(), nil, &fakePDF{}, nil)
	p := access.Principal{UserID: "x", Permissions: []string{entity.PermViewSalesReports}}

	_, _, err := uc.SalesReportPDF(context.Background(), p, reporting.RawFilters{})
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestReportUseCase_PDF_GeneradorNoDisponible(t *testing.T) {
	store, _, _ := seedLedger(t)
	uc := reporting.NewReportUseCase(store.Sales(), store.Reports(), nil, nil, nil)

	_, _, err := uc.SalesReportPDF(context.Background(), gerente, reporting.RawFilters{})
	assert.True(t, errors.Is(err, domain.ErrRendererUnavailable))
}

func TestReportUseCase_PDF_FalloDeRender(t *testing.T) {
	store, _, _ := seedLedger(t)
	renderErr := errors.New("fuente no encontrada")
	uc := reporting.NewReportUseCase(store.Sales(), store.Reports(), nil, &fakePDF{err: renderErr}, nil)

	_, _, err := uc.SalesReportPDF(context.Background(), gerente, reporting.RawFilters{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, renderErr))
	assert.False(t, errors.Is(err, domain.ErrRendererUnavailable))
}

func TestReportUseCase_PDF_Ok(t *testing.T) {
	store, _, _ := seedLedger(t)
	gen := &fakePDF{}
	uc := reporting.NewReportUseCase(store.Sales(), store.Reports(), nil, gen, nil)

	content, filename, err := uc.SalesReportPDF(context.Background(), gerente, reporting.RawFilters{Start: "2024-06-02"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(content))
	assert.Regexp(t, regexp.MustCompile(`^reporte_ventas_\d{8}_\d{6}\.pdf$`), filename)
	require.NotNil(t, gen.seen)
	assert.Equal(t, 2, gen.seen.TotalSales)
}

func TestReportUseCase_CategoryReport(t *testing.T) {
	store, elec, _ := seedLedger(t)
	uc := reporting.NewReportUseCase(store.Sales(), store.Reports(), nil, nil, nil)

	all, err := uc.CategoryReport(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all.Rows, 2, "Hogar no tiene ventas")
	assert.Equal(t, "Electrónica", all.Rows[0].CategoryName)
	assert.Equal(t, 2, all.Rows[0].SaleCount)
	assert.Equal(t, 2, all.Rows[0].ProductCount)
	assert.InDelta(t, 3600.0, all.Rows[0].Revenue, 1e-9)

	one, err := uc.CategoryReport(context.Background(), itoa(elec))
	require.NoError(t, err)
	require.Len(t, one.Rows, 1)
	require.NotNil(t, one.CategoryID)

	ignored, err := uc.CategoryReport(context.Background(), "xx")
	require.NoError(t, err)
	assert.Nil(t, ignored.CategoryID)
	assert.Len(t, ignored.Rows, 2)
}

func TestReportUseCase_ProductReport(t *testing.T) {
	store, _, _ := seedLedger(t)
	uc := reporting.NewReportUseCase(store.Sales(), store.Reports(), nil, nil, nil)

	r, err := uc.ProductReport(context.Background())
	require.NoError(t, err)
	require.Len(t, r.Rows, 2)
	assert.Equal(t, "Camisa Formal", r.Rows[0].ProductName)
	assert.Equal(t, 3, r.Rows[0].UnitsSold)
	laptop := r.Rows[1]
	assert.Equal(t, "Laptop Dell", laptop.ProductName)
	assert.Equal(t, 2, laptop.SaleCount)
	assert.Equal(t, 3, laptop.UnitsSold)
	assert.InDelta(t, 1800.0, laptop.Average, 1e-9)
}
