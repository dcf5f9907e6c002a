package dashboard

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/currency"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// SummaryUseCase resumen de tarjetas del dashboard y gráfico de ingresos.
type SummaryUseCase struct {
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
	revenue   repository.RevenueRepository
	log       *logger.Logger
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(customers repository.CustomerRepository, invoices repository.InvoiceRepository, revenue repository.RevenueRepository, log *logger.Logger) *SummaryUseCase {
	return &SummaryUseCase{customers: customers, invoices: invoices, revenue: revenue, log: log}
}

// Cards construye el resumen de tarjetas.
//
// Tres consultas en paralelo:
//  1. conteo de facturas     (COUNT, sin filas)
//  2. conteo de clientes     (COUNT, sin filas)
//  3. sumas pagado/pendiente (una sola consulta agregada)
//
// Las tres se esperan antes de combinar: nunca sale un resumen parcial.
// Con el almacén vacío todos los campos son cero.
func (uc *SummaryUseCase) Cards(ctx context.Context) (*dto.CardSummaryDTO, error) {
	type countResult struct {
		n   int64
		err error
	}
	type totalsResult struct {
		paid    int64
		pending int64
		err     error
	}

	invoicesCh := make(chan countResult, 1)
	customersCh := make(chan countResult, 1)
	totalsCh := make(chan totalsResult, 1)

	go func() {
		n, err := uc.invoices.Count(ctx)
		invoicesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.customers.Count(ctx)
		customersCh <- countResult{n, err}
	}()
	go func() {
		paid, pending, err := uc.invoices.TotalsByStatus(ctx)
		totalsCh <- totalsResult{paid, pending, err}
	}()

	invoices := <-invoicesCh
	customers := <-customersCh
	totals := <-totalsCh

	if invoices.err != nil {
		return nil, wrapStoreErr(uc.log, invoices.err, "no se pudo contar las facturas")
	}
	if customers.err != nil {
		return nil, wrapStoreErr(uc.log, customers.err, "no se pudo contar los clientes")
	}
	if totals.err != nil {
		return nil, wrapStoreErr(uc.log, totals.err, "no se pudieron sumar los totales por estado")
	}

	return &dto.CardSummaryDTO{
		NumberOfCustomers:     customers.n,
		NumberOfInvoices:      invoices.n,
		TotalPaid:             totals.paid,
		TotalPending:          totals.pending,
		TotalPaidFormatted:    currency.USD(totals.paid),
		TotalPendingFormatted: currency.USD(totals.pending),
	}, nil
}

// Revenue devuelve los puntos del gráfico de ingresos mensuales.
func (uc *SummaryUseCase) Revenue(ctx context.Context) ([]dto.RevenueDTO, error) {
	points, err := uc.revenue.List(ctx)
	if err != nil {
		return nil, wrapStoreErr(uc.log, err, "no se pudieron obtener los ingresos")
	}
	list := make([]dto.RevenueDTO, 0, len(points))
	for _, p := range points {
		list = append(list, dto.RevenueDTO{Month: p.Month, Amount: p.Amount})
	}
	return list, nil
}
