package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MO-OUISSI/commercewebsite-public/internal/catalog"
	"github.com/MO-OUISSI/commercewebsite-public/internal/domain"
	"github.com/MO-OUISSI/commercewebsite-public/internal/events"
)

type fakeOrderRepo struct {
	createErr error
	created   []*domain.Order
}

func (r *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, order)
	return nil
}

func (r *fakeOrderRepo) Get(_ context.Context, orderID string) (*domain.Order, error) {
	for _, o := range r.created {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return nil, errors.New("not found")
}

type fakePublisher struct {
	err    error
	events []events.OrderPlacedEvent
}

func (p *fakePublisher) PublishOrderPlaced(e events.OrderPlacedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func draft(items ...domain.DraftItem) domain.OrderDraft {
	return domain.OrderDraft{
		CustomerName:    "Jane Doe",
		CustomerPhone:   "0600000000",
		CustomerCity:    "Casablanca",
		ShippingAddress: "12 Rue Exemple",
		Items:           items,
	}
}

func TestPlaceOrderResolvesPricesAndTotals(t *testing.T) {
	repo := &fakeOrderRepo{}
	pub := &fakePublisher{}
	svc := NewOrderService(catalog.NewSeeded(35, 1000), repo, pub, zap.NewNop(), false)

	// Sneakers are 200, loafers 300: subtotal 700, below the threshold.
	conf, err := svc.PlaceOrder(context.Background(), draft(
		domain.DraftItem{ProductID: "1", ColorName: "Black", Size: "42", Quantity: 2},
		domain.DraftItem{ProductID: "2", ColorName: "Blue", Size: "40", Quantity: 1},
	), "req-1")
	require.NoError(t, err)
	require.NotNil(t, conf.Order)

	order := conf.Order
	assert.Equal(t, 700.0, order.Subtotal)
	assert.Equal(t, 35.0, order.Shipping)
	assert.Equal(t, 735.0, order.TotalAmount)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 200.0, order.Items[0].UnitPrice)
	assert.Equal(t, 400.0, order.Items[0].Subtotal)

	require.Len(t, repo.created, 1)
	require.Len(t, pub.events, 1)
	assert.Equal(t, order.OrderID, pub.events[0].OrderID)
	assert.Equal(t, "req-1", pub.events[0].RequestID)
}

func TestPlaceOrderFreeShippingAboveThreshold(t *testing.T) {
	svc := NewOrderService(catalog.NewSeeded(35, 1000), &fakeOrderRepo{}, &fakePublisher{}, zap.NewNop(), false)

	// 4 pairs of loafers: 1200 > 1000.
	conf, err := svc.PlaceOrder(context.Background(), draft(
		domain.DraftItem{ProductID: "2", ColorName: "Blue", Size: "41", Quantity: 4},
	), "req-1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, conf.Order.Shipping)
	assert.Equal(t, 1200.0, conf.Order.TotalAmount)
}

func TestPlaceOrderRejectsUnknownVariant(t *testing.T) {
	svc := NewOrderService(catalog.NewSeeded(35, 1000), &fakeOrderRepo{}, &fakePublisher{}, zap.NewNop(), false)

	_, err := svc.PlaceOrder(context.Background(), draft(
		domain.DraftItem{ProductID: "1", ColorName: "Chartreuse", Size: "42", Quantity: 1},
	), "req-1")
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = svc.PlaceOrder(context.Background(), draft(
		domain.DraftItem{ProductID: "1", ColorName: "Black", Size: "99", Quantity: 1},
	), "req-1")
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = svc.PlaceOrder(context.Background(), draft(
		domain.DraftItem{ProductID: "no-such", ColorName: "Black", Size: "42", Quantity: 1},
	), "req-1")
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestPlaceOrderRejectsInsufficientStock(t *testing.T) {
	svc := NewOrderService(catalog.NewSeeded(35, 1000), &fakeOrderRepo{}, &fakePublisher{}, zap.NewNop(), false)

	// Black 42 has stock 7.
	_, err := svc.PlaceOrder(context.Background(), draft(
		domain.DraftItem{ProductID: "1", ColorName: "Black", Size: "42", Quantity: 8},
	), "req-1")
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestPlaceOrderDemoFallback(t *testing.T) {
	repo := &fakeOrderRepo{createErr: errors.New("backend unavailable")}
	svc := NewOrderService(catalog.NewSeeded(35, 1000), repo, &fakePublisher{}, zap.NewNop(), true)

	conf, err := svc.PlaceOrder(context.Background(), draft(
		domain.DraftItem{ProductID: "1", ColorName: "Black", Size: "42", Quantity: 1},
	), "req-1")
	require.NoError(t, err, "demo fallback substitutes a confirmation for the transport failure")
	assert.Equal(t, "Order placed successfully (Demo Mode)", conf.Message)
	assert.True(t, strings.HasPrefix(conf.Order.OrderID, "demo-order-"))
}

func TestPlaceOrderStoreFailureWithoutFallback(t *testing.T) {
	repo := &fakeOrderRepo{createErr: errors.New("backend unavailable")}
	svc := NewOrderService(catalog.NewSeeded(35, 1000), repo, &fakePublisher{}, zap.NewNop(), false)

	_, err := svc.PlaceOrder(context.Background(), draft(
		domain.DraftItem{ProductID: "1", ColorName: "Black", Size: "42", Quantity: 1},
	), "req-1")
	assert.Error(t, err)
}

func TestPlaceOrderToleratesPublishFailure(t *testing.T) {
	repo := &fakeOrderRepo{}
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewOrderService(catalog.NewSeeded(35, 1000), repo, pub, zap.NewNop(), false)

	conf, err := svc.PlaceOrder(context.Background(), draft(
		domain.DraftItem{ProductID: "1", ColorName: "Black", Size: "42", Quantity: 1},
	), "req-1")
	require.NoError(t, err, "order acceptance never depends on the event publish")
	assert.Len(t, repo.created, 1)
	assert.NotNil(t, conf.Order)
}
