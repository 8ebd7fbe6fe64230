package reporting

import (
	"sort"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// GeneratedAtLayout formato de la marca de generación.
const GeneratedAtLayout = "2006-01-02 15:04:05"

// BuildSalesReport agrega las ventas ya filtradas. records debe venir ordenado, más recientes primero.
func BuildSalesReport(records []entity.SaleRecord, active dto.ReportFilters, now time.Time) *dto.SalesReportDTO {
	count, revenue := sales.Totals(records)

	items := make([]dto.SaleResponse, 0, len(records))
	products := make(map[int64]struct{})
	for _, r := range records {
		items = append(items, sales.ToSaleResponse(r))
		products[r.ProductID] = struct{}{}
	}

	return &dto.SalesReportDTO{
		TotalSales:   count,
		TotalRevenue: revenue,
		ProductCount: len(products),
		TopSeller:    topSeller(records),
		ByCategory:   categoryBreakdown(records),
		Sales:        items,
		Filters:      active,
		GeneratedAt:  now.Format(GeneratedAtLayout),
	}
}

// topSeller agrupa por vendedor y suma cantidades. Empates: username ascendente.
// Las ventas sin vendedor forman su propio grupo; si ese grupo gana, no hay vendedor top.
func topSeller(records []entity.SaleRecord) *dto.TopSellerDTO {
	if len(records) == 0 {
		return nil
	}
	units := make(map[string]int)
	orphanUnits := 0
	for _, r := range records {
		if r.SellerUsername == nil {
			orphanUnits += r.Quantity
			continue
		}
		units[*r.SellerUsername] += r.Quantity
	}

	names := make([]string, 0, len(units))
	for name := range units {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if units[names[i]] != units[names[j]] {
			return units[names[i]] > units[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) == 0 || orphanUnits > units[names[0]] {
		return nil
	}
	return &dto.TopSellerDTO{Username: names[0], Units: units[names[0]]}
}

// categoryBreakdown solo incluye categorías con al menos una venta. Orden por nombre.
func categoryBreakdown(records []entity.SaleRecord) []dto.CategoryBreakdownDTO {
	byID := make(map[int64]*dto.CategoryBreakdownDTO)
	for _, r := range records {
		row, ok := byID[r.CategoryID]
		if !ok {
			row = &dto.CategoryBreakdownDTO{CategoryID: r.CategoryID, CategoryName: r.CategoryName}
			byID[r.CategoryID] = row
		}
		total, _ := r.Total().Float64()
		row.Count++
		row.Revenue += total
	}

	out := make([]dto.CategoryBreakdownDTO, 0, len(byID))
	for _, row := range byID {
		row.Average = sales.Average(row.Revenue, row.Count)
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CategoryName != out[j].CategoryName {
			return out[i].CategoryName < out[j].CategoryName
		}
		return out[i].CategoryID < out[j].CategoryID
	})
	return out
}
