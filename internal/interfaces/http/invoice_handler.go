package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/dashboard"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP del listado de facturas.
type InvoiceHandler struct {
	uc *dashboard.InvoicesUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *dashboard.InvoicesUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List GET /api/invoices?query=&page=1
// Devuelve la página pedida del listado filtrado (facturas + cliente).
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	term := c.Query("query")
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "page debe ser un entero"})
	}
	rows, err := h.uc.List(c.Context(), term, page)
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(rows)
}

// Pages GET /api/invoices/pages?query=
// Devuelve el total de páginas del listado para el mismo filtro.
func (h *InvoiceHandler) Pages(c *fiber.Ctx) error {
	pages, err := h.uc.CountPages(c.Context(), c.Query("query"))
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(fiber.Map{"total_pages": pages})
}

// Latest GET /api/invoices/latest
func (h *InvoiceHandler) Latest(c *fiber.Ctx) error {
	rows, err := h.uc.Latest(c.Context())
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(rows)
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(inv)
}

// invoiceError mapea errores de dominio a códigos HTTP. El detalle del
// almacén nunca viaja en la respuesta: ya quedó en el log.
func invoiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidPage):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrOrphanInvoice):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTEGRITY", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
