package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/dashboard"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

func customersUC(st *memStore) *dashboard.CustomersUseCase {
	return dashboard.NewCustomersUseCase(&fakeCustomerRepo{st: st}, &fakeInvoiceRepo{st: st}, logger.Nop())
}

// Los agregados se derivan de las facturas en cada consulta:
// [100 paid, 50 pending, 25 paid] -> 3 facturas, 125 pagado, 50 pendiente.
func TestCustomersList_Agregados(t *testing.T) {
	st := &memStore{
		customers: []*entity.Customer{
			{ID: "c-1", Name: "Alice Smith", Email: "alice@smith.com"},
			{ID: "c-2", Name: "Bob Jones", Email: "bob@jones.com"},
		},
		invoices: []*entity.Invoice{
			{ID: "i-1", CustomerID: "c-1", Amount: 100, Status: entity.InvoiceStatusPaid, Date: day(2023, time.June, 1)},
			{ID: "i-2", CustomerID: "c-1", Amount: 50, Status: entity.InvoiceStatusPending, Date: day(2023, time.June, 2)},
			{ID: "i-3", CustomerID: "c-1", Amount: 25, Status: entity.InvoiceStatusPaid, Date: day(2023, time.June, 3)},
		},
	}
	uc := customersUC(st)

	rows, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	alice := rows[0]
	assert.Equal(t, "Alice Smith", alice.Name)
	assert.Equal(t, int64(3), alice.TotalInvoices)
	assert.Equal(t, int64(125), alice.TotalPaid)
	assert.Equal(t, int64(50), alice.TotalPending)

	bob := rows[1]
	assert.Equal(t, "Bob Jones", bob.Name)
	assert.Zero(t, bob.TotalInvoices)
	assert.Zero(t, bob.TotalPaid)
	assert.Zero(t, bob.TotalPending)
}

func TestCustomersList_OrdenPorNombre(t *testing.T) {
	st := &memStore{
		customers: []*entity.Customer{
			{ID: "c-3", Name: "Zoe", Email: "zoe@mail.com"},
			{ID: "c-1", Name: "Ana", Email: "ana@mail.com"},
			{ID: "c-2", Name: "Mia", Email: "mia@mail.com"},
		},
	}
	uc := customersUC(st)

	rows, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Ana", rows[0].Name)
	assert.Equal(t, "Mia", rows[1].Name)
	assert.Equal(t, "Zoe", rows[2].Name)
}

// El filtro de clientes solo mira nombre y email, case-insensitive.
func TestCustomersList_FiltroNombreOEmail(t *testing.T) {
	st := &memStore{
		customers: []*entity.Customer{
			{ID: "c-1", Name: "Alice Smith", Email: "alice@smith.com"},
			{ID: "c-2", Name: "Bob Jones", Email: "bob@jones.com"},
		},
	}
	uc := customersUC(st)
	ctx := context.Background()

	upper, err := uc.List(ctx, "ALICE")
	require.NoError(t, err)
	lower, err := uc.List(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
	require.Len(t, upper, 1)
	assert.Equal(t, "Alice Smith", upper[0].Name)

	byEmail, err := uc.List(ctx, "JONES.com")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Bob Jones", byEmail[0].Name)
}

func TestCustomersList_SinClientes(t *testing.T) {
	uc := customersUC(&memStore{})

	rows, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// Con el contexto cancelado las sub-consultas en vuelo se abandonan y la
// operación falla con el error de cancelación, no con datos parciales.
func TestCustomersList_Cancelacion(t *testing.T) {
	st := &memStore{
		customers: []*entity.Customer{
			{ID: "c-1", Name: "Alice Smith", Email: "alice@smith.com"},
		},
	}
	uc := customersUC(st)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.List(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCustomersNames(t *testing.T) {
	st := &memStore{
		customers: []*entity.Customer{
			{ID: "c-2", Name: "Mia", Email: "mia@mail.com"},
			{ID: "c-1", Name: "Ana", Email: "ana@mail.com"},
		},
	}
	uc := customersUC(st)

	names, err := uc.Names(context.Background())
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, "Ana", names[0].Name)
	assert.Equal(t, "c-1", names[0].ID)
}
