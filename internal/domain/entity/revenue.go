package entity

// Revenue es el punto de ingreso mensual del gráfico del dashboard.
// El mes es la clave única ("Jan", "Feb", ...); no depende de clientes ni facturas.
type Revenue struct {
	Month  string
	Amount int64
}
