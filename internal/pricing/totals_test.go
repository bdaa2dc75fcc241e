package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MO-OUISSI/commercewebsite-public/internal/domain"
)

func TestShippingThreshold(t *testing.T) {
	const (
		deliveryPrice         = 35.0
		freeShippingThreshold = 1000.0
	)

	tests := []struct {
		name     string
		subtotal float64
		want     float64
	}{
		{"below threshold", 200, 35},
		{"exactly at threshold still pays", 1000, 35},
		{"just above threshold is free", 1000.01, 0},
		{"well above threshold is free", 2500, 0},
		{"empty cart", 0, 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Shipping(tt.subtotal, deliveryPrice, freeShippingThreshold))
		})
	}
}

func TestCheckoutTotals(t *testing.T) {
	totals := CheckoutTotals(600, 35, 1000)
	assert.Equal(t, 600.0, totals.Subtotal)
	assert.Equal(t, 35.0, totals.Shipping)
	assert.Equal(t, 635.0, totals.Total)

	free := CheckoutTotals(1200, 35, 1000)
	assert.Equal(t, 0.0, free.Shipping)
	assert.Equal(t, 1200.0, free.Total)
}

func TestItemsSubtotal(t *testing.T) {
	items := []domain.CartItem{
		{ProductID: "1", Price: 200, Quantity: 2},
		{ProductID: "2", Price: 150, Quantity: 1},
	}
	assert.Equal(t, 550.0, ItemsSubtotal(items))
	assert.Equal(t, 0.0, ItemsSubtotal(nil))
}
