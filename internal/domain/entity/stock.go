package entity

import "time"

// Stock movement types.
const (
	MovementIn         = "IN"
	MovementOut        = "OUT"
	MovementAdjustment = "ADJUSTMENT"
)

// StockMovement is one entry of the per-variant stock history.
type StockMovement struct {
	ID        string    `json:"id"`
	VariantID string    `json:"variantId"`
	ProductID string    `json:"productId"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"` // signed for adjustments
	Reason    string    `json:"reason,omitempty"`
	UserID    string    `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
