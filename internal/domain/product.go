package domain

// SizeEntry is one purchasable size of a color variant with its stock count.
type SizeEntry struct {
	Label string `json:"label"`
	Stock int    `json:"stock"`
}

// ColorVariant is a color option of a product: its swatch token, gallery
// images, and per-size stock.
type ColorVariant struct {
	Name    string      `json:"name"`
	HexCode string      `json:"hexCode"`
	Images  []string    `json:"images"`
	Sizes   []SizeEntry `json:"sizes"`
}

type Product struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Price        float64        `json:"price"`
	SalePrice    *float64       `json:"salePrice,omitempty"`
	Category     string         `json:"category"`
	Images       []string       `json:"images"`
	IsFeatured   bool           `json:"isFeatured"`
	IsNewProduct bool           `json:"isNewProduct"`
	IsActive     bool           `json:"isActive"`
	Colors       []ColorVariant `json:"colors"`
}

// UnitPrice is the price charged for one unit right now: the sale price
// when one is set, the base price otherwise.
func (p Product) UnitPrice() float64 {
	if p.SalePrice != nil && *p.SalePrice > 0 {
		return *p.SalePrice
	}
	return p.Price
}

// Variant returns the color variant with the given name.
func (p Product) Variant(colorName string) (ColorVariant, bool) {
	for _, c := range p.Colors {
		if c.Name == colorName {
			return c, true
		}
	}
	return ColorVariant{}, false
}

// TotalStock sums stock across every (color, size) pair.
func (p Product) TotalStock() int {
	total := 0
	for _, c := range p.Colors {
		for _, s := range c.Sizes {
			total += s.Stock
		}
	}
	return total
}

func (p Product) OutOfStock() bool {
	return p.TotalStock() == 0
}

// ImageFor resolves the display image for a selected color: the variant's
// first image, falling back to the product's first image.
func (p Product) ImageFor(colorName string) string {
	if c, ok := p.Variant(colorName); ok && len(c.Images) > 0 {
		return c.Images[0]
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// SizeOf returns the size entry with the given label on a variant.
func (c ColorVariant) SizeOf(label string) (SizeEntry, bool) {
	for _, s := range c.Sizes {
		if s.Label == label {
			return s, true
		}
	}
	return SizeEntry{}, false
}

type Collection struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    bool   `json:"isActive"`
}

// StoreInfo is the store-wide configuration surfaced to clients: branding
// plus the delivery pricing the checkout calculator runs on.
type StoreInfo struct {
	Name                  string  `json:"name"`
	Title                 string  `json:"title"`
	AnnouncementBar       string  `json:"announcementBar"`
	Description           string  `json:"description"`
	DeliveryPrice         float64 `json:"deliveryPrice"`
	FreeShippingThreshold float64 `json:"freeShippingThreshold"`
	Email                 string  `json:"email"`
	Phone                 string  `json:"phone"`
	Address               string  `json:"address"`
}
