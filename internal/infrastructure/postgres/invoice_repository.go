package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// invoiceFilterSQL es el único predicado de búsqueda de facturas: lo usan
// tanto el listado como el conteo de páginas. Si alguna vez se duplica,
// listado y paginación terminan contando conjuntos distintos.
// $1 es el patrón ILIKE ("%term%"); con term vacío casa con todas las filas.
const invoiceFilterSQL = `(
		c.name ILIKE $1
		OR c.email ILIKE $1
		OR i.amount::text ILIKE $1
		OR i.date::text ILIKE $1
		OR i.status ILIKE $1
	)`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// ListFiltered devuelve la página de facturas unidas a su cliente.
// LEFT JOIN en lugar de INNER: una factura huérfana debe aflorar como
// ErrOrphanInvoice, no desaparecer del resultado.
func (r *InvoiceRepo) ListFiltered(ctx context.Context, term string, limit, offset int) ([]repository.FilteredInvoiceRow, error) {
	query := `
		SELECT i.id, i.amount, i.date, i.status, c.name, c.email, c.image_url
		FROM invoices i
		LEFT JOIN customers c ON c.id = i.customer_id
		WHERE ` + invoiceFilterSQL + `
		ORDER BY i.date DESC, i.id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, likePattern(term), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []repository.FilteredInvoiceRow
	for rows.Next() {
		var row repository.FilteredInvoiceRow
		var name, email, imageURL *string
		if err := rows.Scan(&row.ID, &row.Amount, &row.Date, &row.Status, &name, &email, &imageURL); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		if name == nil || email == nil {
			return nil, fmt.Errorf("factura %s: %w", row.ID, domain.ErrOrphanInvoice)
		}
		row.CustomerName = *name
		row.CustomerEmail = *email
		if imageURL != nil {
			row.CustomerImageURL = *imageURL
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// CountFiltered cuenta facturas con el mismo predicado del listado,
// sin traer cuerpos de fila.
func (r *InvoiceRepo) CountFiltered(ctx context.Context, term string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM invoices i
		LEFT JOIN customers c ON c.id = i.customer_id
		WHERE ` + invoiceFilterSQL
	var count int64
	if err := r.q.QueryRow(ctx, query, likePattern(term)).Scan(&count); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return count, nil
}

// Count devuelve el total de facturas.
func (r *InvoiceRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count all invoices: %w", err)
	}
	return count, nil
}

// TotalsByStatus suma montos pagados y pendientes de todo el sistema.
// COALESCE: con cero facturas devuelve 0 y 0, no NULL.
func (r *InvoiceRepo) TotalsByStatus(ctx context.Context) (paid, pending int64, err error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE status = 'paid'),    0) AS paid,
			COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0) AS pending
		FROM invoices`
	if err := r.q.QueryRow(ctx, query).Scan(&paid, &pending); err != nil {
		return 0, 0, fmt.Errorf("invoice totals by status: %w", err)
	}
	return paid, pending, nil
}

// TotalsByCustomer agrega las facturas de un cliente.
func (r *InvoiceRepo) TotalsByCustomer(ctx context.Context, customerID string) (repository.InvoiceTotals, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'paid'),    0)
		FROM invoices
		WHERE customer_id = $1`
	var t repository.InvoiceTotals
	if err := r.q.QueryRow(ctx, query, customerID).Scan(&t.Count, &t.TotalPending, &t.TotalPaid); err != nil {
		return repository.InvoiceTotals{}, fmt.Errorf("invoice totals for customer %s: %w", customerID, err)
	}
	return t, nil
}

// ListLatest devuelve las facturas más recientes unidas a su cliente.
func (r *InvoiceRepo) ListLatest(ctx context.Context, limit int) ([]repository.FilteredInvoiceRow, error) {
	query := `
		SELECT i.id, i.amount, i.date, i.status, c.name, c.email, c.image_url
		FROM invoices i
		LEFT JOIN customers c ON c.id = i.customer_id
		ORDER BY i.date DESC, i.id DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list latest invoices: %w", err)
	}
	defer rows.Close()

	var list []repository.FilteredInvoiceRow
	for rows.Next() {
		var row repository.FilteredInvoiceRow
		var name, email, imageURL *string
		if err := rows.Scan(&row.ID, &row.Amount, &row.Date, &row.Status, &name, &email, &imageURL); err != nil {
			return nil, fmt.Errorf("scan latest invoice: %w", err)
		}
		if name == nil || email == nil {
			return nil, fmt.Errorf("factura %s: %w", row.ID, domain.ErrOrphanInvoice)
		}
		row.CustomerName = *name
		row.CustomerEmail = *email
		if imageURL != nil {
			row.CustomerImageURL = *imageURL
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetByID obtiene una factura por ID; nil si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// UpsertBatch inserta facturas; los conflictos por id se ignoran (skip, no
// overwrite), así la misma carga puede ejecutarse dos veces sin duplicar.
func (r *InvoiceRepo) UpsertBatch(ctx context.Context, invoices []*entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`
	for _, inv := range invoices {
		if inv.ID == "" {
			inv.ID = uuid.New().String()
		}
		_, err := r.q.Exec(ctx, query, inv.ID, inv.CustomerID, inv.Amount, inv.Status, inv.Date)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("factura %s referencia cliente %s: %w", inv.ID, inv.CustomerID, domain.ErrOrphanInvoice)
			}
			return fmt.Errorf("upsert invoice %s: %w", inv.ID, err)
		}
	}
	return nil
}
