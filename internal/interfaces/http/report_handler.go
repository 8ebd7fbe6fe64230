package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/reporting"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// ReportHandler expone los reportes de ventas, por categoría y por producto.
type ReportHandler struct {
	uc  *reporting.ReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Sales godoc
// @Summary      Reporte de ventas
// @Description  formato=pdf descarga el reporte como PDF (requiere export_sales_reports).
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Produce      application/pdf
// @Param        inicio     query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        fin        query  string  false  "Fecha final YYYY-MM-DD"
// @Param        categoria  query  int     false  "ID de categoría"
// @Param        producto   query  int     false  "ID de producto"
// @Param        formato    query  string  false  "web | pdf"  default(web)
// @Success      200  {object}  dto.SalesReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/ventas [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	raw := rawFilters(c)
	if c.Query("formato") == "pdf" {
		return h.salesPDF(c, raw)
	}
	out, err := h.uc.SalesReport(c.Context(), raw)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

func (h *ReportHandler) salesPDF(c *fiber.Ctx, raw reporting.RawFilters) error {
	content, filename, err := h.uc.SalesReportPDF(c.Context(), GetPrincipal(c), raw)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(content)
}

// Categories godoc
// @Summary      Reporte por categoría
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        categoria  query  int  false  "ID de categoría"
// @Success      200  {object}  dto.CategoryReportDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reportes/categorias [get]
func (h *ReportHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.CategoryReport(c.Context(), c.Query("categoria"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Products godoc
// @Summary      Reporte por producto
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductReportDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reportes/productos [get]
func (h *ReportHandler) Products(c *fiber.Ctx) error {
	out, err := h.uc.ProductReport(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
