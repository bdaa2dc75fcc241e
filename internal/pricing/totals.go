// Package pricing holds the pure money computations of the storefront:
// checkout totals and display formatting. Nothing in here touches
// storage or mutates state.
package pricing

import (
	"github.com/MO-OUISSI/commercewebsite-public/internal/domain"
)

// Totals is the three-line checkout summary.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// ItemsSubtotal sums price*quantity over the chargeable items, which are
// either the full cart or a single direct-buy item.
func ItemsSubtotal(items []domain.CartItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// Shipping applies the free-shipping rule. The comparison is strictly
// greater-than: a subtotal exactly at the threshold still pays delivery.
func Shipping(subtotal, deliveryPrice, freeShippingThreshold float64) float64 {
	if subtotal > freeShippingThreshold {
		return 0
	}
	return deliveryPrice
}

// CheckoutTotals derives the full summary from a subtotal and the
// store-configured delivery pricing.
func CheckoutTotals(subtotal, deliveryPrice, freeShippingThreshold float64) Totals {
	shipping := Shipping(subtotal, deliveryPrice, freeShippingThreshold)
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}
