package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog article. Prices are decimals (CFA, no fraction in
// practice but the API may send cents); stock lives on the variants.
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Description     string          `json:"description,omitempty"`
	CategoryID      string          `json:"categoryId"`
	Category        *Category       `json:"category,omitempty"`
	RetailPrice     decimal.Decimal `json:"retailPrice"`
	WholesalePrice  decimal.Decimal `json:"wholesalePrice"`
	MinWholesaleQty int             `json:"minWholesaleQty"`
	Images          []string        `json:"images,omitempty"`
	Variants        []Variant       `json:"variants,omitempty"`
	Active          bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Variant is a size/color combination of a product with its own stock count.
type Variant struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	MinAlert  int    `json:"minAlert,omitempty"`
}

// InStock reports whether the variant has units left.
func (v Variant) InStock() bool { return v.Quantity > 0 }

// FindVariant returns the variant matching exactly (size, color), or nil.
// Partial matches are deliberately not supported: a line in the cart is keyed
// on the full pair and a permissive fallback would merge distinct variants.
func (p Product) FindVariant(size, color string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].Size == size && p.Variants[i].Color == color {
			return &p.Variants[i]
		}
	}
	return nil
}

// Category groups products in the catalog.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}
