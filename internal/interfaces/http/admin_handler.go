package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
)

// AdminHandler operaciones administrativas (protegidas).
type AdminHandler struct {
	products *inventory.ProductUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(products *inventory.ProductUseCase) *AdminHandler {
	return &AdminHandler{products: products}
}

// Clear godoc
// @Summary      Vaciar la tabla de productos (reset administrativo)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OkResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /admin/vaciar-bd [post]
func (h *AdminHandler) Clear(c *fiber.Ctx) error {
	if err := h.products.Clear(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error vaciando la base de datos"})
	}
	return c.JSON(dto.OkResponse{Ok: true, Mensaje: "Base de datos vaciada (tabla productos)"})
}
