package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// AdminHandler administración de roles y usuarios (manage_roles).
type AdminHandler struct {
	roles *usecase.RoleUseCase
	users *usecase.UserUseCase
	log   *logger.Logger
}

// NewAdminHandler construye el handler.
func NewAdminHandler(roles *usecase.RoleUseCase, users *usecase.UserUseCase, log *logger.Logger) *AdminHandler {
	return &AdminHandler{roles: roles, users: users, log: log}
}

// ListRoles godoc
// @Summary      Listar roles y permisos disponibles
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RoleListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/roles [get]
func (h *AdminHandler) ListRoles(c *fiber.Ctx) error {
	out, err := h.roles.List(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateRole godoc
// @Summary      Reemplazar permisos de un rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        tipo  path  string  true  "admin | vendedor | gerente | cliente"
// @Param        body  body  dto.UpdateRoleRequest  true  "permisos"
// @Success      200   {object}  dto.RoleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/roles/{tipo} [put]
func (h *AdminHandler) UpdateRole(c *fiber.Ctx) error {
	var in dto.UpdateRoleRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.roles.Update(c.Context(), c.Params("tipo"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// AssignRole godoc
// @Summary      Asignar rol a un usuario
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.AssignRoleRequest  true  "rol"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/rol [put]
func (h *AdminHandler) AssignRole(c *fiber.Ctx) error {
	var in dto.AssignRoleRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.users.AssignRole(c.Context(), c.Params("id"), in.Role)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// DeleteUser godoc
// @Summary      Eliminar usuario
// @Description  Sus ventas se conservan sin vendedor.
// @Tags         usuarios
// @Security     Bearer
// @Param        id  path  string  true  "ID del usuario"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.users.Delete(c.Context(), GetPrincipal(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
