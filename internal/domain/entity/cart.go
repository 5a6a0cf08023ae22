package entity

import "github.com/shopspring/decimal"

// OrderType selects the pricing mode of a cart or order.
type OrderType string

const (
	OrderTypeRetail    OrderType = "RETAIL"
	OrderTypeWholesale OrderType = "WHOLESALE"
)

// IsValid reports whether t is a known order type.
func (t OrderType) IsValid() bool {
	return t == OrderTypeRetail || t == OrderTypeWholesale
}

// ProductSnapshot is the denormalized copy of a product frozen into a cart
// line at add time. Price or name changes at the source are not reflected
// until the line is removed and re-added.
type ProductSnapshot struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	RetailPrice     decimal.Decimal `json:"retailPrice"`
	WholesalePrice  decimal.Decimal `json:"wholesalePrice"`
	MinWholesaleQty int             `json:"minWholesaleQty"`
	Images          []string        `json:"images,omitempty"`
}

// Snapshot freezes the pricing-relevant fields of a product.
func (p Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:              p.ID,
		Name:            p.Name,
		SKU:             p.SKU,
		RetailPrice:     p.RetailPrice,
		WholesalePrice:  p.WholesalePrice,
		MinWholesaleQty: p.MinWholesaleQty,
		Images:          p.Images,
	}
}

// CartLine is one cart entry for a specific (product, size, color) triple.
// MaxQuantity is the stock ceiling observed when the line was added; the
// server remains the source of truth and re-validates at checkout.
type CartLine struct {
	ProductID   string          `json:"productId"`
	Product     ProductSnapshot `json:"product"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Quantity    int             `json:"quantity"`
	MaxQuantity int             `json:"maxQuantity"`
}

// Matches reports whether the line holds the given (product, size, color) triple.
func (l CartLine) Matches(productID, size, color string) bool {
	return l.ProductID == productID && l.Size == size && l.Color == color
}

// UnitPrice applies the wholesale rule for this line alone: the wholesale
// price only when the mode is wholesale AND the line's own quantity reaches
// the product's threshold. The cart's aggregate quantity for the product is
// irrelevant.
func (l CartLine) UnitPrice(mode OrderType) decimal.Decimal {
	if mode == OrderTypeWholesale && l.Quantity >= l.Product.MinWholesaleQty {
		return l.Product.WholesalePrice
	}
	return l.Product.RetailPrice
}

// LineTotal is UnitPrice times quantity.
func (l CartLine) LineTotal(mode OrderType) decimal.Decimal {
	return l.UnitPrice(mode).Mul(decimal.NewFromInt(int64(l.Quantity)))
}
