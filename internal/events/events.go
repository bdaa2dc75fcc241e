package events

import (
	"time"

	"github.com/MO-OUISSI/commercewebsite-public/internal/domain"
)

// OrderPlacedEvent is published after an order is accepted. Downstream
// consumers (fulfillment, notifications) key on the order ID.
type OrderPlacedEvent struct {
	EventID      string             `json:"event_id"`
	OrderID      string             `json:"order_id"`
	CustomerCity string             `json:"customer_city"`
	TotalAmount  float64            `json:"total_amount"`
	Items        []domain.OrderItem `json:"items"`
	Status       string             `json:"status"`
	Timestamp    time.Time          `json:"timestamp"`
	RequestID    string             `json:"request_id"`
}
