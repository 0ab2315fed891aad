package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/pkg/validator"
)

// ProductHandler maneja las peticiones HTTP de productos (protegido).
type ProductHandler struct {
	products *inventory.ProductUseCase
	withdraw *inventory.WithdrawUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(products *inventory.ProductUseCase, withdraw *inventory.WithdrawUseCase) *ProductHandler {
	return &ProductHandler{products: products, withdraw: withdraw}
}

// List godoc
// @Summary      Listar productos (orden por referencia ascendente)
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.products.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error leyendo productos"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "referencia, nombre, existencias, stock_minimo"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "Requiere: referencia (entero > 0), nombre (string) y existencias (number >= 0)",
		})
	}
	out, err := h.products.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Requiere: referencia (entero > 0), nombre (string) y existencias (number >= 0)"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la referencia ya existe"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error creando producto"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Withdraw godoc
// @Summary      Registrar salida de stock (alerta de stock mínimo incluida)
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        referencia  path  int  true  "Referencia del producto"
// @Param        body  body  dto.WithdrawRequest  true  "cantidad"
// @Success      200   {object}  dto.WithdrawResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /productos/{referencia}/salida [post]
func (h *ProductHandler) Withdraw(c *fiber.Ctx) error {
	reference, ok := parseReference(c.Params("referencia"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "referencia inválida"})
	}
	var in dto.WithdrawRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	p, err := h.withdraw.Withdraw(c.Context(), reference, in.Cantidad)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad debe ser number > 0"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Producto no encontrado"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "No hay existencias suficientes"})
		case errors.Is(err, domain.ErrAlertDelivery):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "ALERT_DELIVERY", Message: "Error registrando salida"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error registrando salida"})
		}
	}
	return c.JSON(dto.WithdrawResponse{Ok: true, Producto: dto.ToProductResponse(p)})
}

// parseReference acepta la referencia del path solo como dígitos (sin signo
// ni espacios) y exige un valor > 0.
func parseReference(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
