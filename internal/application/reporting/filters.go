package reporting

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// RawFilters valores crudos del query string.
type RawFilters struct {
	Start    string
	End      string
	Category string
	Product  string
}

// ParseFilters interpreta cada filtro por separado. Un valor inválido se descarta sin error.
// Devuelve el filtro para el repositorio y el eco de los filtros aplicados.
func ParseFilters(raw RawFilters) (repository.SaleFilter, dto.ReportFilters) {
	var f repository.SaleFilter
	var active dto.ReportFilters

	if d, err := time.Parse(sales.DateLayout, strings.TrimSpace(raw.Start)); err == nil {
		f.StartDate = &d
		active.StartDate = d.Format(sales.DateLayout)
	}
	if d, err := time.Parse(sales.DateLayout, strings.TrimSpace(raw.End)); err == nil {
		f.EndDate = &d
		active.EndDate = d.Format(sales.DateLayout)
	}
	if id, ok := parseID(raw.Category); ok {
		f.CategoryID = &id
		active.CategoryID = &id
	}
	if id, ok := parseID(raw.Product); ok {
		f.ProductID = &id
		active.ProductID = &id
	}
	return f, active
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// CacheKey representación canónica de los filtros activos.
func CacheKey(active dto.ReportFilters) string {
	key := fmt.Sprintf("i=%s|f=%s", active.StartDate, active.EndDate)
	if active.CategoryID != nil {
		key += fmt.Sprintf("|c=%d", *active.CategoryID)
	}
	if active.ProductID != nil {
		key += fmt.Sprintf("|p=%d", *active.ProductID)
	}
	return key
}
