package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/reporting"
	"github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// SaleHandler maneja el libro de ventas.
type SaleHandler struct {
	uc  *sales.SaleUseCase
	log *logger.Logger
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SaleUseCase, log *logger.Logger) *SaleHandler {
	return &SaleHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar ventas
// @Description  Filtros inválidos se ignoran.
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        inicio     query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        fin        query  string  false  "Fecha final YYYY-MM-DD"
// @Param        categoria  query  int     false  "ID de categoría"
// @Param        producto   query  int     false  "ID de producto"
// @Success      200  {object}  dto.SaleListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	filter, active := reporting.ParseFilters(rawFilters(c))
	out, err := h.uc.List(c.Context(), filter, active)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar venta manual
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "producto_id, cantidad, fecha"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// rawFilters lee los filtros del query string; acepta fecha_inicio/fecha_fin como alias.
func rawFilters(c *fiber.Ctx) reporting.RawFilters {
	return reporting.RawFilters{
		Start:    c.Query("inicio", c.Query("fecha_inicio")),
		End:      c.Query("fin", c.Query("fecha_fin")),
		Category: c.Query("categoria"),
		Product:  c.Query("producto"),
	}
}
