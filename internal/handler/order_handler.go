package handler

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MO-OUISSI/commercewebsite-public/internal/cart"
	"github.com/MO-OUISSI/commercewebsite-public/internal/domain"
	"github.com/MO-OUISSI/commercewebsite-public/internal/repository"
	"github.com/MO-OUISSI/commercewebsite-public/internal/service"
)

// CheckoutRequest is the checkout form plus an optional direct-buy item.
// With a direct-buy item present, that single item is charged and the
// session cart is never touched; otherwise the full session cart is
// charged and cleared on success. Never both.
type CheckoutRequest struct {
	CustomerName    string           `json:"customerName" binding:"required"`
	CustomerPhone   string           `json:"customerPhone" binding:"required"`
	CustomerCity    string           `json:"customerCity" binding:"required"`
	ShippingAddress string           `json:"shippingAddress" binding:"required"`
	CustomerNote    string           `json:"customerNote"`
	DirectBuyItem   *domain.CartItem `json:"directBuyItem"`
}

type OrderHandler struct {
	orderService *service.OrderService
	carts        *cart.Manager
	logger       *zap.Logger
	inFlight     sync.Map // session id -> struct{}, duplicate-submission guard
}

func NewOrderHandler(orderService *service.OrderService, carts *cart.Manager, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		carts:        carts,
		logger:       logger,
	}
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	sessionID := sessionKey(c)
	if _, loaded := h.inFlight.LoadOrStore(sessionID, struct{}{}); loaded {
		c.JSON(http.StatusConflict, gin.H{"error": "A submission is already in progress"})
		return
	}
	defer h.inFlight.Delete(sessionID)

	ledger := h.carts.Ledger(sessionID)

	var chargeItems []domain.CartItem
	if req.DirectBuyItem != nil {
		chargeItems = []domain.CartItem{*req.DirectBuyItem}
	} else {
		chargeItems = ledger.Items()
	}
	if len(chargeItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	draft := domain.OrderDraft{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerCity:    req.CustomerCity,
		ShippingAddress: req.ShippingAddress,
		CustomerNote:    req.CustomerNote,
		Items:           make([]domain.DraftItem, 0, len(chargeItems)),
	}
	for _, item := range chargeItems {
		draft.Items = append(draft.Items, domain.DraftItem{
			ProductID: item.ProductID,
			ColorName: item.SelectedColor,
			Size:      item.SelectedSize,
			Quantity:  item.Quantity,
		})
	}

	requestID := c.GetString("request_id")
	confirmation, err := h.orderService.PlaceOrder(c.Request.Context(), draft, requestID)
	if err != nil {
		// Cart is left untouched so the customer can resubmit.
		switch {
		case errors.Is(err, service.ErrInvalidItem):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("checkout failed",
				zap.String("request_id", requestID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":      "Failed to place order",
				"request_id": requestID,
			})
		}
		return
	}

	if req.DirectBuyItem == nil {
		ledger.Clear()
	}

	c.JSON(http.StatusCreated, confirmation)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}
