// Package dashboard contiene los casos de uso de consulta del dashboard de
// facturación: listados filtrados con paginación, agregados por cliente y
// el resumen de tarjetas.
package dashboard

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/currency"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// invoicesPerPage tamaño fijo de página del listado de facturas.
const invoicesPerPage = 6

// latestInvoicesLimit facturas del widget "recientes" del panel principal.
const latestInvoicesLimit = 5

// InvoicesUseCase listados de facturas: búsqueda cross-entidad (factura +
// cliente), paginación determinista y conteo de páginas.
type InvoicesUseCase struct {
	invoices repository.InvoiceRepository
	log      *logger.Logger
}

// NewInvoicesUseCase construye el caso de uso.
func NewInvoicesUseCase(invoices repository.InvoiceRepository, log *logger.Logger) *InvoicesUseCase {
	return &InvoicesUseCase{invoices: invoices, log: log}
}

// List devuelve la página `page` (1-indexada) de facturas que casan con term.
// Páginas menores que 1 se rechazan con ErrInvalidPage antes de tocar el
// almacén; una página más allá del final devuelve lista vacía, no error.
func (uc *InvoicesUseCase) List(ctx context.Context, term string, page int) ([]dto.InvoiceRowDTO, error) {
	if page < 1 {
		return nil, domain.ErrInvalidPage
	}
	offset := (page - 1) * invoicesPerPage
	rows, err := uc.invoices.ListFiltered(ctx, term, invoicesPerPage, offset)
	if err != nil {
		return nil, wrapStoreErr(uc.log, err, "no se pudieron obtener las facturas")
	}
	list := make([]dto.InvoiceRowDTO, 0, len(rows))
	for _, r := range rows {
		list = append(list, dto.InvoiceRowDTO{
			ID:       r.ID,
			Amount:   r.Amount,
			Date:     r.Date,
			Status:   r.Status,
			Name:     r.CustomerName,
			Email:    r.CustomerEmail,
			ImageURL: r.CustomerImageURL,
		})
	}
	return list, nil
}

// CountPages devuelve cuántas páginas necesita el listado para term:
// ceil(coincidencias / 6). Cero coincidencias son cero páginas.
// El conteo usa el mismo predicado SQL que List, por contrato del puerto.
func (uc *InvoicesUseCase) CountPages(ctx context.Context, term string) (int, error) {
	count, err := uc.invoices.CountFiltered(ctx, term)
	if err != nil {
		return 0, wrapStoreErr(uc.log, err, "no se pudo contar las facturas")
	}
	return int((count + invoicesPerPage - 1) / invoicesPerPage), nil
}

// Latest devuelve las cinco facturas más recientes con el monto ya
// formateado: este widget es pura presentación.
func (uc *InvoicesUseCase) Latest(ctx context.Context) ([]dto.LatestInvoiceDTO, error) {
	rows, err := uc.invoices.ListLatest(ctx, latestInvoicesLimit)
	if err != nil {
		return nil, wrapStoreErr(uc.log, err, "no se pudieron obtener las facturas recientes")
	}
	list := make([]dto.LatestInvoiceDTO, 0, len(rows))
	for _, r := range rows {
		list = append(list, dto.LatestInvoiceDTO{
			ID:       r.ID,
			Amount:   currency.USD(r.Amount),
			Name:     r.CustomerName,
			Email:    r.CustomerEmail,
			ImageURL: r.CustomerImageURL,
		})
	}
	return list, nil
}

// GetByID obtiene una factura para el formulario de edición.
func (uc *InvoicesUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceFormDTO, error) {
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, wrapStoreErr(uc.log, err, "no se pudo obtener la factura")
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.InvoiceFormDTO{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     inv.Amount,
		Status:     inv.Status,
	}, nil
}
