package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/dashboard"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del panel principal.
type DashboardHandler struct {
	uc *dashboard.SummaryUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.SummaryUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Cards GET /api/dashboard/cards
// Tarjetas del dashboard: número de clientes y facturas, totales pagado y
// pendiente. Las tres consultas subyacentes corren en paralelo.
func (h *DashboardHandler) Cards(c *fiber.Ctx) error {
	summary, err := h.uc.Cards(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// Revenue GET /api/dashboard/revenue
func (h *DashboardHandler) Revenue(c *fiber.Ctx) error {
	points, err := h.uc.Revenue(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(points)
}
