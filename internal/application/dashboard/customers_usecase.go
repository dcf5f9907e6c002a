package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// maxAggregateConcurrency tope de sub-consultas de agregados en vuelo.
const maxAggregateConcurrency = 8

// CustomersUseCase listado de clientes con agregados derivados de sus facturas.
type CustomersUseCase struct {
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
	log       *logger.Logger
}

// NewCustomersUseCase construye el caso de uso.
func NewCustomersUseCase(customers repository.CustomerRepository, invoices repository.InvoiceRepository, log *logger.Logger) *CustomersUseCase {
	return &CustomersUseCase{customers: customers, invoices: invoices, log: log}
}

// List devuelve los clientes que casan con term (nombre o email), orden por
// nombre, cada uno con conteo de facturas y sumas pendiente/pagado.
//
// Los agregados van en una sub-consulta por cliente, lanzadas en paralelo
// con errgroup y unidas todas antes de responder: nunca se emite un
// resultado parcial. Si el contexto se cancela, las consultas en vuelo se
// abandonan y la operación falla con el error de cancelación.
func (uc *CustomersUseCase) List(ctx context.Context, term string) ([]dto.CustomerRowDTO, error) {
	customers, err := uc.customers.ListFiltered(ctx, term)
	if err != nil {
		return nil, wrapStoreErr(uc.log, err, "no se pudieron obtener los clientes")
	}

	rows := make([]dto.CustomerRowDTO, len(customers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxAggregateConcurrency)
	for i, c := range customers {
		g.Go(func() error {
			totals, err := uc.invoices.TotalsByCustomer(gctx, c.ID)
			if err != nil {
				return err
			}
			rows[i] = dto.CustomerRowDTO{
				ID:            c.ID,
				Name:          c.Name,
				Email:         c.Email,
				ImageURL:      c.ImageURL,
				TotalInvoices: totals.Count,
				TotalPending:  totals.TotalPending,
				TotalPaid:     totals.TotalPaid,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, wrapStoreErr(uc.log, err, "no se pudieron agregar las facturas de los clientes")
	}
	return rows, nil
}

// Names devuelve id+nombre de todos los clientes para selects.
func (uc *CustomersUseCase) Names(ctx context.Context) ([]dto.CustomerNameDTO, error) {
	names, err := uc.customers.ListNames(ctx)
	if err != nil {
		return nil, wrapStoreErr(uc.log, err, "no se pudieron obtener los nombres de clientes")
	}
	list := make([]dto.CustomerNameDTO, 0, len(names))
	for _, n := range names {
		list = append(list, dto.CustomerNameDTO{ID: n.ID, Name: n.Name})
	}
	return list, nil
}
