package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// FilteredInvoiceRow es una factura unida a su cliente, tal como la devuelve
// el listado filtrado del dashboard.
type FilteredInvoiceRow struct {
	ID               string
	Amount           int64
	Date             time.Time
	Status           string
	CustomerName     string
	CustomerEmail    string
	CustomerImageURL string
}

// InvoiceTotals agregados derivados de las facturas de un cliente.
// No se almacenan: se recalculan en cada consulta, así nunca quedan obsoletos.
type InvoiceTotals struct {
	Count        int64
	TotalPending int64
	TotalPaid    int64
}

// InvoiceRepository define el puerto de persistencia para Invoice.
//
// ListFiltered y CountFiltered comparten un mismo predicado de búsqueda
// (substring case-insensitive sobre nombre y email del cliente, monto en
// texto, fecha en texto y estado). Implementarlo una sola vez: si las dos
// consultas divergen, el conteo de páginas deja de cuadrar con el listado.
type InvoiceRepository interface {
	// ListFiltered devuelve las facturas que casan con term, unidas a su
	// cliente, ordenadas por fecha descendente (desempate por id), con
	// limit/offset ya aplicados tras el filtro. Una factura sin cliente
	// produce ErrOrphanInvoice, no una fila con campos vacíos.
	ListFiltered(ctx context.Context, term string, limit, offset int) ([]FilteredInvoiceRow, error)
	// CountFiltered cuenta las facturas que casan con term, con el mismo
	// predicado que ListFiltered y sin materializar filas.
	CountFiltered(ctx context.Context, term string) (int64, error)
	// Count devuelve la cardinalidad total de facturas (solo conteo).
	Count(ctx context.Context) (int64, error)
	// TotalsByStatus devuelve las sumas de montos pagados y pendientes de
	// todo el sistema. Estados fuera del enum no aportan a ningún total.
	TotalsByStatus(ctx context.Context) (paid, pending int64, err error)
	// TotalsByCustomer agrega las facturas de un cliente concreto.
	TotalsByCustomer(ctx context.Context, customerID string) (InvoiceTotals, error)
	// ListLatest devuelve las `limit` facturas más recientes unidas a su cliente.
	ListLatest(ctx context.Context, limit int) ([]FilteredInvoiceRow, error)
	// GetByID obtiene una factura por ID; nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// UpsertBatch inserta facturas con conflicto por id ignorado (skip, no
	// overwrite). Una factura que referencia un cliente inexistente devuelve
	// ErrOrphanInvoice.
	UpsertBatch(ctx context.Context, invoices []*entity.Invoice) error
}
