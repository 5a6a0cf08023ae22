package api

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Hamza99-sudo/wondershop-client/internal/domain/entity"
)

// ProductsService covers the /products endpoint group.
type ProductsService struct {
	c *Client
}

// ProductPage is one page of the product list.
type ProductPage struct {
	Items      []entity.Product `json:"items"`
	Pagination Pagination       `json:"pagination"`
}

// List returns a filtered, paginated slice of the catalog.
func (s *ProductsService) List(ctx context.Context, filter ProductFilter) (*ProductPage, error) {
	var page ProductPage
	if err := s.c.get(ctx, "/products", filter.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches one product with its variants.
func (s *ProductsService) Get(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	if err := s.c.get(ctx, "/products/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ProductInput is the create/update payload.
type ProductInput struct {
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Description     string          `json:"description,omitempty"`
	CategoryID      string          `json:"categoryId"`
	RetailPrice     decimal.Decimal `json:"retailPrice"`
	WholesalePrice  decimal.Decimal `json:"wholesalePrice"`
	MinWholesaleQty int             `json:"minWholesaleQty"`
	Images          []string        `json:"images,omitempty"`
}

// Create adds a product to the catalog.
func (s *ProductsService) Create(ctx context.Context, in ProductInput) (*entity.Product, error) {
	var product entity.Product
	if err := s.c.post(ctx, "/products", in, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update edits a product.
func (s *ProductsService) Update(ctx context.Context, id string, in ProductInput) (*entity.Product, error) {
	var product entity.Product
	if err := s.c.put(ctx, "/products/"+id, in, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes a product.
func (s *ProductsService) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, "/products/"+id)
}
