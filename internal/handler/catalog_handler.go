package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MO-OUISSI/commercewebsite-public/internal/catalog"
	"github.com/MO-OUISSI/commercewebsite-public/internal/pricing"
)

type CatalogHandler struct {
	catalog *catalog.Service
}

func NewCatalogHandler(cat *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products := h.catalog.List(catalog.Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Featured: c.Query("featured") == "true",
		NewOnly:  c.Query("new") == "true",
	})

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Browse surfaces show the charm price; checkout shows the real one.
	price := product.UnitPrice()
	c.JSON(http.StatusOK, gin.H{
		"product":      product,
		"displayPrice": pricing.FormatDisplayPrice(&price, true),
	})
}

func (h *CatalogHandler) ListCollections(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Collections())
}

func (h *CatalogHandler) GetStoreInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.StoreInfo())
}
