package reporting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/reporting"
)

func TestParseFilters_Validos(t *testing.T) {
	f, active := reporting.ParseFilters(reporting.RawFilters{
		Start: "2024-01-01", End: "2024-01-31", Category: "3", Product: "7",
	})

	require.NotNil(t, f.StartDate)
	require.NotNil(t, f.EndDate)
	require.NotNil(t, f.CategoryID)
	require.NotNil(t, f.ProductID)
	assert.Equal(t, int64(3), *f.CategoryID)
	assert.Equal(t, int64(7), *f.ProductID)
	assert.Equal(t, "2024-01-01", active.StartDate)
	assert.Equal(t, "2024-01-31", active.EndDate)
}

func TestParseFilters_InvalidosSeDescartan(t *testing.T) {
	f, active := reporting.ParseFilters(reporting.RawFilters{
		Start: "31/01/2024", End: "2024-02-30", Category: "abc", Product: "-2",
	})

	assert.Nil(t, f.StartDate)
	assert.Nil(t, f.EndDate)
	assert.Nil(t, f.CategoryID)
	assert.Nil(t, f.ProductID)
	assert.Empty(t, active.StartDate)
	assert.Nil(t, active.CategoryID)
}

func TestParseFilters_CadaFiltroIndependiente(t *testing.T) {
	f, _ := reporting.ParseFilters(reporting.RawFilters{Start: "basura", Category: "4"})
	assert.Nil(t, f.StartDate)
	require.NotNil(t, f.CategoryID)
	assert.Equal(t, int64(4), *f.CategoryID)
}

func TestCacheKey_DistingueFiltros(t *testing.T) {
	_, a := reporting.ParseFilters(reporting.RawFilters{Category: "1"})
	_, b := reporting.ParseFilters(reporting.RawFilters{Product: "1"})
	_, c := reporting.ParseFilters(reporting.RawFilters{Category: "1"})

	assert.NotEqual(t, reporting.CacheKey(a), reporting.CacheKey(b))
	assert.Equal(t, reporting.CacheKey(a), reporting.CacheKey(c))
}
