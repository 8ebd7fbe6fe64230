// Package reporting agrega el libro de ventas en reportes de solo lectura (JSON y PDF).
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/access"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// PDFFilenameLayout sufijo de tiempo del nombre del archivo PDF.
const PDFFilenameLayout = "20060102_150405"

// ReportUseCase genera los reportes de ventas, por categoría y por producto.
//
// Fuentes: SaleRepository para el reporte de ventas (agregado en memoria sobre las ventas filtradas)
// y ReportRepository para los reportes por categoría y producto (GROUP BY en la base).
type ReportUseCase struct {
	saleRepo   repository.SaleRepository
	reportRepo repository.ReportRepository
	cache      ReportCache        // puede ser nil
	pdf        ReportPDFGenerator // nil = exportación deshabilitada
	log        *logger.Logger
	now        func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	saleRepo repository.SaleRepository,
	reportRepo repository.ReportRepository,
	cache ReportCache,
	pdf ReportPDFGenerator,
	log *logger.Logger,
) *ReportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportUseCase{
		saleRepo:   saleRepo,
		reportRepo: reportRepo,
		cache:      cache,
		pdf:        pdf,
		log:        log,
		now:        time.Now,
	}
}

// SalesReport calcula el reporte de ventas para los filtros crudos. Usa la caché si está disponible;
// un fallo de caché se registra y se recalcula.
func (uc *ReportUseCase) SalesReport(ctx context.Context, raw RawFilters) (*dto.SalesReportDTO, error) {
	filter, active := ParseFilters(raw)
	key := CacheKey(active)

	var version int64
	fill := false
	if uc.cache != nil {
		cached, v, ok, err := uc.cache.GetSalesReport(ctx, key)
		switch {
		case err != nil:
			uc.log.Warn().Err(err).Str("key", key).Msg("caché de reportes no disponible")
		case ok:
			out := *cached
			out.GeneratedAt = uc.now().Format(GeneratedAtLayout)
			return &out, nil
		default:
			version, fill = v, true
		}
	}

	records, err := uc.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	report := BuildSalesReport(records, active, uc.now())

	if fill {
		if err := uc.cache.SetSalesReport(ctx, version, key, report); err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo guardar el reporte en caché")
		}
	}
	return report, nil
}

// SalesReportPDF renderiza el reporte de ventas. Requiere export_sales_reports.
// Devuelve ErrRendererUnavailable si no hay generador configurado.
func (uc *ReportUseCase) SalesReportPDF(ctx context.Context, p access.Principal, raw RawFilters) ([]byte, string, error) {
	if !p.Has(entity.PermExportSalesReports) {
		return nil, "", domain.ErrForbidden
	}
	if uc.pdf == nil {
		return nil, "", domain.ErrRendererUnavailable
	}
	report, err := uc.SalesReport(ctx, raw)
	if err != nil {
		return nil, "", err
	}
	content, err := uc.pdf.GenerateSalesReport(report)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF: %w", err)
	}
	filename := fmt.Sprintf("reporte_ventas_%s.pdf", uc.now().Format(PDFFilenameLayout))
	return content, filename, nil
}

// CategoryReport ventas, ingreso y cantidad de productos por categoría con ventas.
func (uc *ReportUseCase) CategoryReport(ctx context.Context, rawCategory string) (*dto.CategoryReportDTO, error) {
	var categoryID *int64
	if id, ok := parseID(rawCategory); ok {
		categoryID = &id
	}
	rows, err := uc.reportRepo.SalesByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("reporte por categoría: %w", err)
	}
	out := &dto.CategoryReportDTO{Rows: make([]dto.CategoryReportRowDTO, 0, len(rows)), CategoryID: categoryID}
	for _, r := range rows {
		revenue, _ := r.Revenue.Float64()
		out.Rows = append(out.Rows, dto.CategoryReportRowDTO{
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			SaleCount:    r.SaleCount,
			Revenue:      revenue,
			ProductCount: r.ProductCount,
		})
	}
	return out, nil
}

// ProductReport ventas, unidades, ingreso y promedio por producto con ventas.
func (uc *ReportUseCase) ProductReport(ctx context.Context) (*dto.ProductReportDTO, error) {
	rows, err := uc.reportRepo.SalesByProduct(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte por producto: %w", err)
	}
	out := &dto.ProductReportDTO{Rows: make([]dto.ProductReportRowDTO, 0, len(rows))}
	for _, r := range rows {
		revenue, _ := r.Revenue.Float64()
		out.Rows = append(out.Rows, dto.ProductReportRowDTO{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			CategoryName: r.CategoryName,
			SaleCount:    r.SaleCount,
			UnitsSold:    r.UnitsSold,
			Revenue:      revenue,
			Average:      sales.Average(revenue, r.SaleCount),
		})
	}
	return out, nil
}
