package api

import (
	"context"
	"net/url"

	"github.com/Hamza99-sudo/wondershop-client/internal/domain/entity"
)

// StockService covers the /stock endpoint group.
type StockService struct {
	c *Client
}

// StockFilter narrows the stock list.
type StockFilter struct {
	ListParams
	LowStockOnly bool
}

func (f StockFilter) values() url.Values {
	q := f.ListParams.values()
	if f.LowStockOnly {
		q.Set("lowStock", "true")
	}
	return q
}

// StockEntry is one variant with its parent product, as listed by /stock.
type StockEntry struct {
	Variant entity.Variant `json:"variant"`
	Product entity.Product `json:"product"`
}

// List returns the stock overview.
func (s *StockService) List(ctx context.Context, filter StockFilter) ([]StockEntry, error) {
	var entries []StockEntry
	if err := s.c.get(ctx, "/stock", filter.values(), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Alerts returns variants at or below their low-stock threshold.
func (s *StockService) Alerts(ctx context.Context) ([]StockEntry, error) {
	var entries []StockEntry
	if err := s.c.get(ctx, "/stock/alerts", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Movements returns the stock movement history.
func (s *StockService) Movements(ctx context.Context, params ListParams) ([]entity.StockMovement, error) {
	var movements []entity.StockMovement
	if err := s.c.get(ctx, "/stock/movements", params.values(), &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

// VariantInput is the add-variant payload.
type VariantInput struct {
	Size     string `json:"size"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
	MinAlert int    `json:"minAlert,omitempty"`
}

// AddVariant registers a new size/color variant for a product.
func (s *StockService) AddVariant(ctx context.Context, productID string, in VariantInput) (*entity.Variant, error) {
	var variant entity.Variant
	if err := s.c.post(ctx, "/stock/product/"+productID, in, &variant); err != nil {
		return nil, err
	}
	return &variant, nil
}

// Update sets a variant's absolute quantity.
func (s *StockService) Update(ctx context.Context, variantID string, quantity int) (*entity.Variant, error) {
	var variant entity.Variant
	body := map[string]int{"quantity": quantity}
	if err := s.c.put(ctx, "/stock/"+variantID, body, &variant); err != nil {
		return nil, err
	}
	return &variant, nil
}

// Adjust applies a signed relative adjustment with a reason, recorded in the
// movement history.
func (s *StockService) Adjust(ctx context.Context, variantID string, delta int, reason string) (*entity.Variant, error) {
	var variant entity.Variant
	body := map[string]any{"adjustment": delta, "reason": reason}
	if err := s.c.patch(ctx, "/stock/"+variantID+"/adjust", body, &variant); err != nil {
		return nil, err
	}
	return &variant, nil
}
