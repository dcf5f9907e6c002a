package dashboard_test

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso. Replican la
// semántica del almacén real: substring case-insensitive (ILIKE), orden por
// fecha descendente con desempate por id, agregados calculados al vuelo.
// ──────────────────────────────────────────────────────────────────────────────

// memStore estado compartido entre los repos fake.
type memStore struct {
	customers []*entity.Customer
	invoices  []*entity.Invoice
	revenue   []*entity.Revenue

	// forcedErr hace fallar cualquier consulta (camino de error del almacén).
	forcedErr error
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// invoiceMatches replica el predicado único de facturas: nombre o email del
// cliente, monto en texto, fecha en texto o estado.
func (st *memStore) invoiceMatches(inv *entity.Invoice, term string) bool {
	if term == "" {
		return true
	}
	c := st.customerByID(inv.CustomerID)
	if c != nil && (containsFold(c.Name, term) || containsFold(c.Email, term)) {
		return true
	}
	return containsFold(strconv.FormatInt(inv.Amount, 10), term) ||
		containsFold(inv.Date.Format("2006-01-02"), term) ||
		containsFold(inv.Status, term)
}

func (st *memStore) customerByID(id string) *entity.Customer {
	for _, c := range st.customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (st *memStore) sortedInvoices(term string) []*entity.Invoice {
	var list []*entity.Invoice
	for _, inv := range st.invoices {
		if st.invoiceMatches(inv, term) {
			list = append(list, inv)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].ID > list[j].ID
	})
	return list
}

func (st *memStore) joinRow(inv *entity.Invoice) (repository.FilteredInvoiceRow, error) {
	c := st.customerByID(inv.CustomerID)
	if c == nil {
		return repository.FilteredInvoiceRow{}, fmt.Errorf("factura %s: %w", inv.ID, domain.ErrOrphanInvoice)
	}
	return repository.FilteredInvoiceRow{
		ID:               inv.ID,
		Amount:           inv.Amount,
		Date:             inv.Date,
		Status:           inv.Status,
		CustomerName:     c.Name,
		CustomerEmail:    c.Email,
		CustomerImageURL: c.ImageURL,
	}, nil
}

// ── InvoiceRepository ─────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	st *memStore
}

var _ repository.InvoiceRepository = (*fakeInvoiceRepo)(nil)

func (r *fakeInvoiceRepo) ListFiltered(ctx context.Context, term string, limit, offset int) ([]repository.FilteredInvoiceRow, error) {
	if r.st.forcedErr != nil {
		return nil, r.st.forcedErr
	}
	all := r.st.sortedInvoices(term)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	var rows []repository.FilteredInvoiceRow
	for _, inv := range all[offset:end] {
		row, err := r.st.joinRow(inv)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *fakeInvoiceRepo) CountFiltered(ctx context.Context, term string) (int64, error) {
	if r.st.forcedErr != nil {
		return 0, r.st.forcedErr
	}
	return int64(len(r.st.sortedInvoices(term))), nil
}

func (r *fakeInvoiceRepo) Count(ctx context.Context) (int64, error) {
	if r.st.forcedErr != nil {
		return 0, r.st.forcedErr
	}
	return int64(len(r.st.invoices)), nil
}

func (r *fakeInvoiceRepo) TotalsByStatus(ctx context.Context) (paid, pending int64, err error) {
	if r.st.forcedErr != nil {
		return 0, 0, r.st.forcedErr
	}
	for _, inv := range r.st.invoices {
		switch inv.Status {
		case entity.InvoiceStatusPaid:
			paid += inv.Amount
		case entity.InvoiceStatusPending:
			pending += inv.Amount
		}
	}
	return paid, pending, nil
}

func (r *fakeInvoiceRepo) TotalsByCustomer(ctx context.Context, customerID string) (repository.InvoiceTotals, error) {
	if r.st.forcedErr != nil {
		return repository.InvoiceTotals{}, r.st.forcedErr
	}
	if err := ctx.Err(); err != nil {
		return repository.InvoiceTotals{}, err
	}
	var t repository.InvoiceTotals
	for _, inv := range r.st.invoices {
		if inv.CustomerID != customerID {
			continue
		}
		t.Count++
		switch inv.Status {
		case entity.InvoiceStatusPaid:
			t.TotalPaid += inv.Amount
		case entity.InvoiceStatusPending:
			t.TotalPending += inv.Amount
		}
	}
	return t, nil
}

func (r *fakeInvoiceRepo) ListLatest(ctx context.Context, limit int) ([]repository.FilteredInvoiceRow, error) {
	if r.st.forcedErr != nil {
		return nil, r.st.forcedErr
	}
	all := r.st.sortedInvoices("")
	if len(all) > limit {
		all = all[:limit]
	}
	var rows []repository.FilteredInvoiceRow
	for _, inv := range all {
		row, err := r.st.joinRow(inv)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	if r.st.forcedErr != nil {
		return nil, r.st.forcedErr
	}
	for _, inv := range r.st.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) UpsertBatch(ctx context.Context, invoices []*entity.Invoice) error {
	for _, inv := range invoices {
		if r.st.customerByID(inv.CustomerID) == nil {
			return fmt.Errorf("factura %s: %w", inv.ID, domain.ErrOrphanInvoice)
		}
		r.st.invoices = append(r.st.invoices, inv)
	}
	return nil
}

// ── CustomerRepository ────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	st *memStore
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func (r *fakeCustomerRepo) ListFiltered(ctx context.Context, term string) ([]*entity.Customer, error) {
	if r.st.forcedErr != nil {
		return nil, r.st.forcedErr
	}
	var list []*entity.Customer
	for _, c := range r.st.customers {
		if term == "" || containsFold(c.Name, term) || containsFold(c.Email, term) {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *fakeCustomerRepo) ListNames(ctx context.Context) ([]repository.CustomerName, error) {
	if r.st.forcedErr != nil {
		return nil, r.st.forcedErr
	}
	var list []repository.CustomerName
	for _, c := range r.st.customers {
		list = append(list, repository.CustomerName{ID: c.ID, Name: c.Name})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *fakeCustomerRepo) Count(ctx context.Context) (int64, error) {
	if r.st.forcedErr != nil {
		return 0, r.st.forcedErr
	}
	return int64(len(r.st.customers)), nil
}

func (r *fakeCustomerRepo) UpsertBatch(ctx context.Context, customers []*entity.Customer) error {
	r.st.customers = append(r.st.customers, customers...)
	return nil
}

// ── RevenueRepository ─────────────────────────────────────────────────────────

type fakeRevenueRepo struct {
	st *memStore
}

var _ repository.RevenueRepository = (*fakeRevenueRepo)(nil)

func (r *fakeRevenueRepo) List(ctx context.Context) ([]*entity.Revenue, error) {
	if r.st.forcedErr != nil {
		return nil, r.st.forcedErr
	}
	return r.st.revenue, nil
}

func (r *fakeRevenueRepo) UpsertBatch(ctx context.Context, points []*entity.Revenue) error {
	r.st.revenue = append(r.st.revenue, points...)
	return nil
}
