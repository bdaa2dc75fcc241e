package catalog

import (
	"github.com/MO-OUISSI/commercewebsite-public/internal/domain"
)

// Seed catalog for when no upstream product source is configured. Shapes
// mirror what the storefront client renders: per-color galleries and
// per-size stock.

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:           "1",
			Name:         "Urban Street Sneakers",
			Description:  "Lightweight sneakers designed for everyday comfort, featuring breathable materials and a modern urban look.",
			Price:        200,
			Category:     "shoe",
			Images:       []string{"/images/products/6.jpg"},
			IsFeatured:   true,
			IsNewProduct: true,
			IsActive:     true,
			Colors: []domain.ColorVariant{
				{
					Name:    "Brown",
					HexCode: "#b48948ff",
					Images:  []string{"/images/products/6.jpg", "/images/products/7.jpg"},
					Sizes: []domain.SizeEntry{
						{Label: "40", Stock: 12},
						{Label: "41", Stock: 15},
						{Label: "42", Stock: 10},
						{Label: "43", Stock: 6},
					},
				},
				{
					Name:    "Black",
					HexCode: "#000000ff",
					Images:  []string{"/images/products/8.jpg", "/images/products/9.jpg"},
					Sizes: []domain.SizeEntry{
						{Label: "40", Stock: 8},
						{Label: "41", Stock: 9},
						{Label: "42", Stock: 7},
						{Label: "43", Stock: 5},
					},
				},
			},
		},
		{
			ID:           "2",
			Name:         "Premium Leather Loafers",
			Description:  "Elegant leather shoes crafted for formal and smart-casual wear, offering comfort and a refined finish.",
			Price:        300,
			Category:     "shoe",
			Images:       []string{"/images/products/11.jpg"},
			IsNewProduct: true,
			IsActive:     true,
			Colors: []domain.ColorVariant{
				{
					Name:    "Blue",
					HexCode: "#3e82c2ff",
					Images:  []string{"/images/products/10.jpg", "/images/products/11.jpg"},
					Sizes: []domain.SizeEntry{
						{Label: "39", Stock: 5},
						{Label: "40", Stock: 9},
						{Label: "41", Stock: 11},
						{Label: "42", Stock: 7},
					},
				},
				{
					Name:    "Purple",
					HexCode: "#6938a4ff",
					Images:  []string{"/images/products/12.jpg"},
					Sizes: []domain.SizeEntry{
						{Label: "39", Stock: 5},
						{Label: "40", Stock: 9},
						{Label: "41", Stock: 11},
						{Label: "42", Stock: 7},
					},
				},
			},
		},
		{
			ID:          "3",
			Name:        "Classic Blue Jeans",
			Description: "Durable everyday jeans with a comfortable fit, designed for all-day wear and timeless style.",
			Price:       200,
			Category:    "jeans",
			Images:      []string{"/images/products/1.jpg"},
			IsActive:    true,
			Colors: []domain.ColorVariant{
				{
					Name:    "Blue",
					HexCode: "#3c7bd3ff",
					Images:  []string{"/images/products/1.jpg", "/images/products/2.jpg"},
					Sizes: []domain.SizeEntry{
						{Label: "X", Stock: 6},
						{Label: "XL", Stock: 12},
						{Label: "L", Stock: 9},
					},
				},
			},
		},
		{
			ID:           "4",
			Name:         "Slim Fit Denim",
			Description:  "Modern slim-fit jeans made from premium denim, offering flexibility and a clean silhouette.",
			Price:        150,
			Category:     "jeans",
			Images:       []string{"/images/products/3.jpg"},
			IsFeatured:   true,
			IsNewProduct: true,
			IsActive:     true,
			Colors: []domain.ColorVariant{
				{
					Name:    "Dark Blue",
					HexCode: "#1f3a5fff",
					Images:  []string{"/images/products/3.jpg", "/images/products/4.jpg", "/images/products/5.jpg"},
					Sizes: []domain.SizeEntry{
						{Label: "X", Stock: 6},
						{Label: "XL", Stock: 12},
						{Label: "L", Stock: 9},
					},
				},
			},
		},
	}
}

func seedCollections() []domain.Collection {
	return []domain.Collection{
		{
			ID:          "1",
			Name:        "Shoe",
			Slug:        "shoe",
			Description: "Sustainable footwear for the modern world",
			Image:       "/images/collections/shoe.jpg",
			IsActive:    true,
		},
		{
			ID:          "2",
			Name:        "Jeans",
			Slug:        "jeans",
			Description: "Premium sustainable denim collection",
			Image:       "/images/collections/jeans.jpg",
			IsActive:    true,
		},
	}
}

func seedStoreInfo() domain.StoreInfo {
	return domain.StoreInfo{
		Name:            "Le Bon Choix",
		Title:           "Le Bon Choix",
		AnnouncementBar: "Livraison 35dh ✅",
		Description:     "Sustainable footwear for the modern world.",
		Address:         "123 Eco Way, San Francisco, CA 94107",
	}
}
