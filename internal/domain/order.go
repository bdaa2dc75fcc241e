package domain

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// DraftItem is an item as submitted at checkout: the composite variant key
// plus a quantity. Prices are intentionally absent; the server is the
// price authority and resolves them from the catalog.
type DraftItem struct {
	ProductID string `json:"productId" binding:"required"`
	ColorName string `json:"colorName" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// OrderDraft is the checkout submission payload. Required fields are
// enforced at the binding boundary; CustomerNote may be empty.
type OrderDraft struct {
	CustomerName    string      `json:"customerName" binding:"required"`
	CustomerPhone   string      `json:"customerPhone" binding:"required"`
	CustomerCity    string      `json:"customerCity" binding:"required"`
	ShippingAddress string      `json:"shippingAddress" binding:"required"`
	CustomerNote    string      `json:"customerNote"`
	Items           []DraftItem `json:"items" binding:"required,min=1,dive"`
}

// OrderItem is a draft item after resolution against the catalog, with
// the unit price frozen at acceptance time.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	ColorName   string  `json:"colorName"`
	Size        string  `json:"size"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
}

type Order struct {
	OrderID         string      `json:"orderId"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerCity    string      `json:"customerCity"`
	ShippingAddress string      `json:"shippingAddress"`
	CustomerNote    string      `json:"customerNote,omitempty"`
	Items           []OrderItem `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	Shipping        float64     `json:"shipping"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// OrderConfirmation is what the checkout surface returns on acceptance.
// Demo-mode confirmations carry a synthesized order ID.
type OrderConfirmation struct {
	Message string `json:"message"`
	Order   *Order `json:"order"`
}
