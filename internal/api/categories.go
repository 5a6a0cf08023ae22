package api

import (
	"context"

	"github.com/Hamza99-sudo/wondershop-client/internal/domain/entity"
)

// CategoriesService covers the /categories endpoint group.
type CategoriesService struct {
	c *Client
}

// List returns every category.
func (s *CategoriesService) List(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := s.c.get(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Get fetches one category.
func (s *CategoriesService) Get(ctx context.Context, id string) (*entity.Category, error) {
	var category entity.Category
	if err := s.c.get(ctx, "/categories/"+id, nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// CategoryInput is the create/update payload.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Create adds a category.
func (s *CategoriesService) Create(ctx context.Context, in CategoryInput) (*entity.Category, error) {
	var category entity.Category
	if err := s.c.post(ctx, "/categories", in, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update edits a category.
func (s *CategoriesService) Update(ctx context.Context, id string, in CategoryInput) (*entity.Category, error) {
	var category entity.Category
	if err := s.c.put(ctx, "/categories/"+id, in, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes a category.
func (s *CategoriesService) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, "/categories/"+id)
}
