// Package currency formatea montos en unidades menores (centavos) como
// texto de moneda para el borde de presentación. El núcleo de la aplicación
// trabaja siempre con enteros; aquí es el único sitio donde un monto se
// convierte a string.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// USD formatea centavos como dólares con separador de miles, ej: 125000 -> "$1,250.00".
func USD(cents int64) string {
	f, _ := decimal.New(cents, -2).Float64()
	return printer.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
