// Package catalog is the read-only product source: products, collections,
// and store info. Nothing here mutates; consumers only ever read.
package catalog

import (
	"errors"
	"strings"

	"github.com/MO-OUISSI/commercewebsite-public/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Filter narrows a product listing. Zero value lists every active product.
type Filter struct {
	Category string // empty or "all" means no category filter
	Search   string // case-insensitive substring over name and description
	Featured bool
	NewOnly  bool
}

type Service struct {
	products    []domain.Product
	collections []domain.Collection
	store       domain.StoreInfo
}

func NewService(products []domain.Product, collections []domain.Collection, store domain.StoreInfo) *Service {
	return &Service{
		products:    products,
		collections: collections,
		store:       store,
	}
}

// NewSeeded builds a catalog from the built-in seed data, with the
// store's delivery pricing taken from configuration.
func NewSeeded(deliveryPrice, freeShippingThreshold float64) *Service {
	store := seedStoreInfo()
	store.DeliveryPrice = deliveryPrice
	store.FreeShippingThreshold = freeShippingThreshold
	return NewService(seedProducts(), seedCollections(), store)
}

// List returns active products matching the filter, in catalog order.
func (s *Service) List(f Filter) []domain.Product {
	q := strings.ToLower(f.Search)
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if !p.IsActive {
			continue
		}
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if f.Featured && !p.IsFeatured {
			continue
		}
		if f.NewOnly && !p.IsNewProduct {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Get returns the product with the given id.
func (s *Service) Get(id string) (domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// Collections returns the active collections.
func (s *Service) Collections() []domain.Collection {
	out := make([]domain.Collection, 0, len(s.collections))
	for _, c := range s.collections {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

func (s *Service) StoreInfo() domain.StoreInfo {
	return s.store
}
