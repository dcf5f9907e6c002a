package entity

// Customer representa un cliente con facturas asociadas.
// La identidad (ID) es inmutable; los campos de perfil pueden cambiar.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}
