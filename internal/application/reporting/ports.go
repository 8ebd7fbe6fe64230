package reporting

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

// ReportCache guarda reportes de ventas ya calculados, indexados por los filtros activos.
// GetSalesReport devuelve la versión de la caché al momento de leer; SetSalesReport escribe
// bajo esa versión, así un reporte calculado antes de un Invalidate no se sirve después.
type ReportCache interface {
	GetSalesReport(ctx context.Context, key string) (*dto.SalesReportDTO, int64, bool, error)
	SetSalesReport(ctx context.Context, version int64, key string, report *dto.SalesReportDTO) error
	Invalidate(ctx context.Context) error
}

// ReportPDFGenerator convierte un reporte de ventas ya calculado en un PDF.
type ReportPDFGenerator interface {
	GenerateSalesReport(report *dto.SalesReportDTO) ([]byte, error)
}
