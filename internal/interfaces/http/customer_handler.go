package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/dashboard"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
)

// CustomerHandler maneja las peticiones HTTP de la tabla de clientes.
type CustomerHandler struct {
	uc *dashboard.CustomersUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *dashboard.CustomersUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List GET /api/customers?query=
// Clientes filtrados por nombre o email, con sus agregados de facturas.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.List(c.Context(), c.Query("query"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// Names GET /api/customers/names
func (h *CustomerHandler) Names(c *fiber.Ctx) error {
	names, err := h.uc.Names(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(names)
}
