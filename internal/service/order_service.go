package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MO-OUISSI/commercewebsite-public/internal/catalog"
	"github.com/MO-OUISSI/commercewebsite-public/internal/domain"
	"github.com/MO-OUISSI/commercewebsite-public/internal/events"
	"github.com/MO-OUISSI/commercewebsite-public/internal/pricing"
	"github.com/MO-OUISSI/commercewebsite-public/internal/repository"
)

var (
	ErrInvalidItem       = errors.New("invalid order item")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// OrderService accepts Order Drafts: it is the order-acceptance boundary
// the storefront submits to. Drafts carry no prices; every unit price is
// resolved here from the catalog at acceptance time.
type OrderService struct {
	catalog      *catalog.Service
	orderRepo    repository.OrderRepository
	publisher    events.Publisher
	logger       *zap.Logger
	demoFallback bool
}

func NewOrderService(cat *catalog.Service, orderRepo repository.OrderRepository, publisher events.Publisher, logger *zap.Logger, demoFallback bool) *OrderService {
	return &OrderService{
		catalog:      cat,
		orderRepo:    orderRepo,
		publisher:    publisher,
		logger:       logger,
		demoFallback: demoFallback,
	}
}

// PlaceOrder validates the draft against the catalog, freezes prices,
// computes totals, persists the order, and publishes an event. When the
// backing store rejects the write and demo fallback is on, a locally
// synthesized confirmation is returned instead of the error, so the
// storefront keeps working without its backing services.
func (s *OrderService) PlaceOrder(ctx context.Context, draft domain.OrderDraft, requestID string) (*domain.OrderConfirmation, error) {
	items, err := s.resolveItems(draft.Items)
	if err != nil {
		return nil, err
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Subtotal
	}
	store := s.catalog.StoreInfo()
	totals := pricing.CheckoutTotals(subtotal, store.DeliveryPrice, store.FreeShippingThreshold)

	now := time.Now().UTC()
	order := &domain.Order{
		OrderID:         uuid.New().String(),
		CustomerName:    draft.CustomerName,
		CustomerPhone:   draft.CustomerPhone,
		CustomerCity:    draft.CustomerCity,
		ShippingAddress: draft.ShippingAddress,
		CustomerNote:    draft.CustomerNote,
		Items:           items,
		Subtotal:        totals.Subtotal,
		Shipping:        totals.Shipping,
		TotalAmount:     totals.Total,
		Status:          domain.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		if !s.demoFallback {
			s.logger.Error("failed to save order",
				zap.String("order_id", order.OrderID),
				zap.Error(err))
			return nil, err
		}
		// Backing store unavailable: synthesize a demo confirmation
		// rather than fail the storefront.
		s.logger.Warn("order store unavailable, issuing demo confirmation",
			zap.String("order_id", order.OrderID),
			zap.Error(err))
		order.OrderID = fmt.Sprintf("demo-order-%d", now.UnixMilli())
		return &domain.OrderConfirmation{
			Message: "Order placed successfully (Demo Mode)",
			Order:   order,
		}, nil
	}

	event := events.OrderPlacedEvent{
		EventID:      uuid.New().String(),
		OrderID:      order.OrderID,
		CustomerCity: order.CustomerCity,
		TotalAmount:  order.TotalAmount,
		Items:        order.Items,
		Status:       string(order.Status),
		Timestamp:    now,
		RequestID:    requestID,
	}
	if err := s.publisher.PublishOrderPlaced(event); err != nil {
		// Log only: the order is accepted, consumers catch up later.
		s.logger.Error("failed to publish order event",
			zap.String("order_id", order.OrderID),
			zap.Error(err))
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.OrderID),
		zap.String("customer_city", order.CustomerCity),
		zap.Float64("total_amount", order.TotalAmount))

	return &domain.OrderConfirmation{
		Message: "Order placed successfully",
		Order:   order,
	}, nil
}

// GetOrder loads a previously accepted order.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orderRepo.Get(ctx, orderID)
}

func (s *OrderService) resolveItems(draftItems []domain.DraftItem) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(draftItems))
	for _, di := range draftItems {
		if di.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidItem)
		}
		product, err := s.catalog.Get(di.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: product %s", ErrInvalidItem, di.ProductID)
		}
		variant, ok := product.Variant(di.ColorName)
		if !ok {
			return nil, fmt.Errorf("%w: product %s has no color %q", ErrInvalidItem, di.ProductID, di.ColorName)
		}
		size, ok := variant.SizeOf(di.Size)
		if !ok {
			return nil, fmt.Errorf("%w: color %q has no size %q", ErrInvalidItem, di.ColorName, di.Size)
		}
		if size.Stock < di.Quantity {
			return nil, fmt.Errorf("%w: %s %s/%s has %d left", ErrInsufficientStock,
				product.Name, di.ColorName, di.Size, size.Stock)
		}

		unitPrice := product.UnitPrice()
		items = append(items, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			ColorName:   di.ColorName,
			Size:        di.Size,
			Quantity:    di.Quantity,
			UnitPrice:   unitPrice,
			Subtotal:    unitPrice * float64(di.Quantity),
		})
	}
	return items, nil
}
