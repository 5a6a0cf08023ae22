package api

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hamza99-sudo/wondershop-client/internal/domain/entity"
)

// OrdersService covers the /orders endpoint group.
type OrdersService struct {
	c *Client
}

// OrderFilter narrows the order list.
type OrderFilter struct {
	ListParams
	Status string
	Type   entity.OrderType
}

func (f OrderFilter) values() url.Values {
	q := f.ListParams.values()
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Type != "" {
		q.Set("orderType", string(f.Type))
	}
	return q
}

// OrderPage is one page of the order list.
type OrderPage struct {
	Items      []entity.Order `json:"items"`
	Pagination Pagination     `json:"pagination"`
}

// List returns a filtered, paginated slice of orders (staff view).
func (s *OrdersService) List(ctx context.Context, filter OrderFilter) (*OrderPage, error) {
	var page OrderPage
	if err := s.c.get(ctx, "/orders", filter.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// MyOrders returns the authenticated customer's own orders.
func (s *OrdersService) MyOrders(ctx context.Context, params ListParams) (*OrderPage, error) {
	var page OrderPage
	if err := s.c.get(ctx, "/orders/my-orders", params.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches one order.
func (s *OrdersService) Get(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	if err := s.c.get(ctx, "/orders/"+id, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// OrderItemInput is one line of an order being placed.
type OrderItemInput struct {
	ProductID string `json:"productId"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest places an order. The idempotency key guards against the
// same checkout being submitted twice; Create fills it in when empty.
type CreateOrderRequest struct {
	Type           entity.OrderType `json:"orderType"`
	Items          []OrderItemInput `json:"items"`
	Address        string           `json:"deliveryAddress,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	IdempotencyKey string           `json:"idempotencyKey,omitempty"`
}

// Create places an order. The server re-validates stock and pricing; the
// client's cart totals are advisory only.
func (s *OrdersService) Create(ctx context.Context, req CreateOrderRequest) (*entity.Order, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = uuid.NewString()
	}
	var order entity.Order
	if err := s.c.post(ctx, "/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus moves an order through its lifecycle.
func (s *OrdersService) UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	var order entity.Order
	body := map[string]string{"status": status}
	if err := s.c.put(ctx, "/orders/"+id+"/status", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// PaymentRequest records a payment against an order.
type PaymentRequest struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
	Ref    string          `json:"reference,omitempty"`
}

// ProcessPayment records a payment against an order (POS and checkout).
func (s *OrdersService) ProcessPayment(ctx context.Context, id string, req PaymentRequest) (*entity.Order, error) {
	var order entity.Order
	if err := s.c.post(ctx, "/orders/"+id+"/payment", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
