package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/application/seed"
	"github.com/jhoicas/Facturacion-api/internal/domain"
)

// AdminHandler operaciones administrativas (carga de datos de referencia).
type AdminHandler struct {
	seeder *seed.Seeder
}

// NewAdminHandler construye el handler.
func NewAdminHandler(seeder *seed.Seeder) *AdminHandler {
	return &AdminHandler{seeder: seeder}
}

// Seed POST /api/admin/seed
// Carga idempotente: repetir la llamada no duplica filas. No ejecutar dos
// seeds en paralelo; la carga no está diseñada para concurrencia consigo misma.
func (h *AdminHandler) Seed(c *fiber.Ctx) error {
	if err := h.seeder.SeedAll(c.Context()); err != nil {
		if errors.Is(err, domain.ErrOrphanInvoice) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INTEGRITY", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "datos de referencia cargados"})
}
