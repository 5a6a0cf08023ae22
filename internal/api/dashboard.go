package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Hamza99-sudo/wondershop-client/internal/domain/entity"
)

// DashboardService covers the /dashboard aggregate endpoints.
type DashboardService struct {
	c *Client
}

// Stats returns the headline dashboard figures.
func (s *DashboardService) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	var stats entity.DashboardStats
	if err := s.c.get(ctx, "/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Sales returns the sales series of the last N days.
func (s *DashboardService) Sales(ctx context.Context, days int) ([]entity.SalesPoint, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	var points []entity.SalesPoint
	if err := s.c.get(ctx, "/dashboard/sales", q, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// TopProducts returns the best-sellers ranking.
func (s *DashboardService) TopProducts(ctx context.Context, limit int) ([]entity.TopProduct, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var top []entity.TopProduct
	if err := s.c.get(ctx, "/dashboard/top-products", q, &top); err != nil {
		return nil, err
	}
	return top, nil
}

// RecentOrders returns the latest orders for the dashboard feed.
func (s *DashboardService) RecentOrders(ctx context.Context, limit int) ([]entity.Order, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var orders []entity.Order
	if err := s.c.get(ctx, "/dashboard/recent-orders", q, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrdersByStatus returns order counts keyed by status.
func (s *DashboardService) OrdersByStatus(ctx context.Context) (map[string]int, error) {
	counts := map[string]int{}
	if err := s.c.get(ctx, "/dashboard/orders-by-status", nil, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
