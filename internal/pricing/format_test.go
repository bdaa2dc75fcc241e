package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestFormatDisplayPrice(t *testing.T) {
	tests := []struct {
		name      string
		price     *float64
		marketing bool
		want      string
	}{
		{"marketing drops whole price by one", ptr(300), true, "299 dh"},
		{"no marketing keeps price", ptr(300), false, "300 dh"},
		{"marketing applies to any whole positive price", ptr(301), true, "300 dh"},
		{"fractional price untouched by marketing", ptr(199.99), true, "199.99 dh"},
		{"exact fractional rendering", ptr(1000.01), false, "1000.01 dh"},
		{"zero is not adjusted", ptr(0), true, "0 dh"},
		{"negative is not adjusted", ptr(-5), true, "-5 dh"},
		{"nil price yields empty string", nil, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDisplayPrice(tt.price, tt.marketing))
		})
	}
}

func TestFormatDisplayPriceIsPure(t *testing.T) {
	price := ptr(300)
	first := FormatDisplayPrice(price, true)
	second := FormatDisplayPrice(price, true)
	assert.Equal(t, first, second)
	assert.Equal(t, 300.0, *price)
}
