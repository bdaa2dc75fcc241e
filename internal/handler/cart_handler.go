package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MO-OUISSI/commercewebsite-public/internal/cart"
	"github.com/MO-OUISSI/commercewebsite-public/internal/catalog"
	"github.com/MO-OUISSI/commercewebsite-public/internal/domain"
)

const sessionCookie = "cart_session"

// sessionKey returns the cart session id from the request cookie, issuing
// a fresh one when absent. The value becomes a storage key, so anything
// that does not parse as a UUID we issued is discarded and reissued.
func sessionKey(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	id := uuid.New().String()
	c.SetCookie(sessionCookie, id, 60*60*24*30, "/", "", false, true)
	return id
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	ColorName string `json:"colorName" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type updateQuantityRequest struct {
	ProductID string `json:"productId" binding:"required"`
	ColorName string `json:"colorName" binding:"required"`
	Size      string `json:"size" binding:"required"`
	// No required tag: gin's required rejects zero values, and an
	// explicit delta of 0 is a legitimate no-op.
	Delta int `json:"delta"`
}

type cartResponse struct {
	Items    []domain.CartItem `json:"items"`
	Count    int               `json:"count"`
	Subtotal float64           `json:"subtotal"`
}

// CartHandler exposes the session cart. Variant and stock validation
// happens here, at the caller side of the ledger contract, before any
// mutation reaches it.
type CartHandler struct {
	carts   *cart.Manager
	catalog *catalog.Service
	logger  *zap.Logger
}

func NewCartHandler(carts *cart.Manager, cat *catalog.Service, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: cat,
		logger:  logger,
	}
}

func (h *CartHandler) ledger(c *gin.Context) *cart.Ledger {
	return h.carts.Ledger(sessionKey(c))
}

func snapshot(l *cart.Ledger) cartResponse {
	return cartResponse{
		Items:    l.Items(),
		Count:    l.Count(),
		Subtotal: l.Subtotal(),
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, snapshot(h.ledger(c)))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	product, err := h.catalog.Get(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	variant, ok := product.Variant(req.ColorName)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown color variant"})
		return
	}
	size, ok := variant.SizeOf(req.Size)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown size"})
		return
	}
	if size.Stock < req.Quantity {
		c.JSON(http.StatusConflict, gin.H{"error": "not enough stock"})
		return
	}

	ledger := h.ledger(c)
	ledger.AddItem(product, req.ColorName, req.Size, req.Quantity)
	c.JSON(http.StatusOK, snapshot(ledger))
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	ledger := h.ledger(c)
	ledger.UpdateQuantity(req.ProductID, req.ColorName, req.Size, req.Delta)
	c.JSON(http.StatusOK, snapshot(ledger))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID := c.Query("productId")
	colorName := c.Query("colorName")
	size := c.Query("size")
	if productID == "" || colorName == "" || size == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId, colorName and size are required"})
		return
	}

	ledger := h.ledger(c)
	ledger.RemoveItem(productID, colorName, size)
	c.JSON(http.StatusOK, snapshot(ledger))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	ledger := h.ledger(c)
	ledger.Clear()
	c.JSON(http.StatusOK, snapshot(ledger))
}
