package dto

import "time"

// ErrorResponse respuesta de error genérica de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// InvoiceRowDTO fila del listado paginado de facturas (factura + cliente).
// Amount va en centavos; el cliente decide cómo presentarlo.
type InvoiceRowDTO struct {
	ID       string    `json:"id"`
	Amount   int64     `json:"amount"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
}

// LatestInvoiceDTO factura reciente para el panel principal.
// El monto llega ya formateado: es el widget de presentación del dashboard.
type LatestInvoiceDTO struct {
	ID       string `json:"id"`
	Amount   string `json:"amount"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// InvoiceFormDTO factura individual para formularios de edición.
type InvoiceFormDTO struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
}

// CustomerRowDTO cliente con sus agregados derivados. Los totales se
// recalculan de las facturas en cada consulta, nunca se cachean.
type CustomerRowDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  int64  `json:"total_pending"`
	TotalPaid     int64  `json:"total_paid"`
}

// CustomerNameDTO par id+nombre para selects.
type CustomerNameDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CardSummaryDTO tarjetas del dashboard: cardinalidades y totales por estado.
// Los campos *Formatted existen para la UI; los enteros son la verdad.
type CardSummaryDTO struct {
	NumberOfCustomers     int64  `json:"number_of_customers"`
	NumberOfInvoices      int64  `json:"number_of_invoices"`
	TotalPaid             int64  `json:"total_paid"`
	TotalPending          int64  `json:"total_pending"`
	TotalPaidFormatted    string `json:"total_paid_formatted"`
	TotalPendingFormatted string `json:"total_pending_formatted"`
}

// RevenueDTO punto del gráfico de ingresos mensuales.
type RevenueDTO struct {
	Month  string `json:"month"`
	Amount int64  `json:"revenue"`
}
