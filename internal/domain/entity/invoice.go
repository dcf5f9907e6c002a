package entity

import "time"

// Estados de una factura.
const (
	InvoiceStatusPending = "pending" // emitida, pago pendiente
	InvoiceStatusPaid    = "paid"    // pagada
)

// Invoice representa una factura. El monto se guarda en unidades menores
// de moneda (centavos) para evitar errores de redondeo en coma flotante;
// el formateo a texto de moneda ocurre solo en el borde de presentación.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64 // centavos, siempre >= 0
	Status     string
	Date       time.Time
}

// ValidStatus indica si el estado participa en los totales pagado/pendiente.
func ValidStatus(s string) bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}
