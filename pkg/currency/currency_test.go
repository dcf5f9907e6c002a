package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturacion-api/pkg/currency"
)

func TestUSD(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{666, "$6.66"},
		{15795, "$157.95"},
		{125000, "$1,250.00"},
		{34458000, "$344,580.00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, currency.USD(c.cents), "cents=%d", c.cents)
	}
}
