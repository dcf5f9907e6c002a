package seed

import (
	"time"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// Datos de referencia del dashboard. Los IDs son fijos para que la carga
// sea idempotente: repetirla no crea filas nuevas.

// seedUser credenciales en claro solo aquí; el Seeder las hashea con bcrypt
// antes de que toquen el almacén.
type seedUser struct {
	ID       string
	Name     string
	Email    string
	Password string
}

var users = []seedUser{
	{
		ID:       "410544b2-4001-4271-9855-fec4b6a6442a",
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: "123456",
	},
}

var customers = []*entity.Customer{
	{
		ID:       "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa",
		Name:     "Evil Rabbit",
		Email:    "evil@rabbit.com",
		ImageURL: "/customers/evil-rabbit.png",
	},
	{
		ID:       "3958dc9e-712f-4377-85e9-fec4b6a6442a",
		Name:     "Delba de Oliveira",
		Email:    "delba@oliveira.com",
		ImageURL: "/customers/delba-de-oliveira.png",
	},
	{
		ID:       "3958dc9e-742f-4377-85e9-fec4b6a6442a",
		Name:     "Lee Robinson",
		Email:    "lee@robinson.com",
		ImageURL: "/customers/lee-robinson.png",
	},
	{
		ID:       "76d65c26-f784-44a2-ac19-586678f7c2f2",
		Name:     "Michael Novotny",
		Email:    "michael@novotny.com",
		ImageURL: "/customers/michael-novotny.png",
	},
	{
		ID:       "cc27c14a-0acf-4f4a-a6c9-d45682c144b9",
		Name:     "Amy Burns",
		Email:    "amy@burns.com",
		ImageURL: "/customers/amy-burns.png",
	},
	{
		ID:       "13d07535-c59e-4157-a011-f8d2ef4e0cbb",
		Name:     "Balazs Orban",
		Email:    "balazs@orban.com",
		ImageURL: "/customers/balazs-orban.png",
	},
}

var invoices = []*entity.Invoice{
	{ID: "5b310a9f-6f94-4c5e-9f2a-3c4f70d1a101", CustomerID: customers[0].ID, Amount: 15795, Status: entity.InvoiceStatusPending, Date: date(2022, 12, 6)},
	{ID: "5b310a9f-6f94-4c5e-9f2a-3c4f70d1a102", CustomerID: customers[1].ID, Amount: 20348, Status: entity.InvoiceStatusPending, Date: date(2022, 11, 14)},
	{ID: "5b310a9f-6f94-4c5e-9f2a-3c4f70d1a103", CustomerID: customers[4].ID, Amount: 3040, Status: entity.InvoiceStatusPaid, Date: date(2022, 10, 29)},
	{ID: "5b310a9f-6f94-4c5e-9f2a-3c4f70d1a104", CustomerID: customers[3].ID, Amount: 44800, Status: entity.InvoiceStatusPaid, Date: date(2023, 9, 10)},
	{ID: "5b310a9f-6f94-4c5e-9f2a-3c4f70d1a105", CustomerID: customers[5].ID, Amount: 34577, Status: entity.InvoiceStatusPending, Date: date(2023, 8, 5)},
	{ID: "5b310a9f-6f94-4c5e-9f2a-3c4f70d1a106", CustomerID: customers[2].ID, Amount: 54246, Status: entity.InvoiceStatusPending, Date: date(2023, 7, 16)},
	{ID: "5b310a9f-6f94-4c5e-9f2a-3c4f70d1a107", CustomerID: customers[0].ID, Amount: 666, Status: entity.InvoiceStatusPending, Date: date(2023, 6, 27)},
	{ID: "5b310a9f-6f94-4c5e-9f2a-3c4f70d1a108", CustomerID: customers[3].ID, Amount: 32545, Status: entity.InvoiceStatusPaid, Date: date(2023, 6, 9)},
	{ID: "5b310a9f-6f94-4c5e-9f2a-3c4f70d1a109", CustomerID: customers[4].ID, Amount: 1250, Status: entity.InvoiceStatusPaid, Date: date(2023, 6, 17)},
	{ID: "5b310a9f-6f94-4c5e-9f2a-3c4f70d1a110", CustomerID: customers[5].ID, Amount: 8546, Status: entity.InvoiceStatusPaid, Date: date(2023, 6, 7)},
	{ID: "5b310a9f-6f94-4c5e-9f2a-3c4f70d1a111", CustomerID: customers[1].ID, Amount: 500, Status: entity.InvoiceStatusPaid, Date: date(2023, 8, 19)},
	{ID: "5b310a9f-6f94-4c5e-9f2a-3c4f70d1a112", CustomerID: customers[5].ID, Amount: 8945, Status: entity.InvoiceStatusPaid, Date: date(2023, 6, 3)},
	{ID: "5b310a9f-6f94-4c5e-9f2a-3c4f70d1a113", CustomerID: customers[2].ID, Amount: 1000, Status: entity.InvoiceStatusPaid, Date: date(2022, 6, 5)},
}

var revenue = []*entity.Revenue{
	{Month: "Jan", Amount: 2000},
	{Month: "Feb", Amount: 1800},
	{Month: "Mar", Amount: 2200},
	{Month: "Apr", Amount: 2500},
	{Month: "May", Amount: 2300},
	{Month: "Jun", Amount: 3200},
	{Month: "Jul", Amount: 3500},
	{Month: "Aug", Amount: 3700},
	{Month: "Sep", Amount: 2500},
	{Month: "Oct", Amount: 2800},
	{Month: "Nov", Amount: 3000},
	{Month: "Dec", Amount: 4800},
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
