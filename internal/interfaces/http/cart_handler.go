package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/cart"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// CartHandler maneja el carrito del usuario autenticado y el checkout.
type CartHandler struct {
	uc  *cart.CartUseCase
	log *logger.Logger
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.CartUseCase, log *logger.Logger) *CartHandler {
	return &CartHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Ver carrito
// @Tags         carrito
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/carrito [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetPrincipal(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar producto al carrito
// @Description  La cantidad resultante se recorta al stock disponible.
// @Tags         carrito
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "producto_id, cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/carrito/agregar [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Add(c.Context(), GetPrincipal(c), in.ProductID, in.Quantity)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Quitar línea del carrito
// @Tags         carrito
// @Security     Bearer
// @Produce      json
// @Param        item_id  path  int  true  "ID de la línea"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/carrito/eliminar/{item_id} [post]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := paramID(c, "item_id")
	if !ok {
		return badID(c, "item_id")
	}
	out, err := h.uc.Remove(c.Context(), GetPrincipal(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Cambiar cantidad de una línea
// @Description  cantidad <= 0 elimina la línea.
// @Tags         carrito
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        item_id  path  int  true  "ID de la línea"
// @Param        body     body  dto.UpdateCartItemRequest  true  "cantidad"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/carrito/actualizar/{item_id} [post]
func (h *CartHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "item_id")
	if !ok {
		return badID(c, "item_id")
	}
	var in dto.UpdateCartItemRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.Context(), GetPrincipal(c), id, in.Quantity)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Procesar carrito
// @Description  Crea una venta por línea con stock suficiente; las demás se devuelven en "omitidos". El carrito queda vacío.
// @Tags         carrito
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CheckoutResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/carrito/procesar [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	out, err := h.uc.Checkout(c.Context(), GetPrincipal(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
