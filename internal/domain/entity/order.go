package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses as reported by the API.
const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderPreparing = "PREPARING"
	OrderReady     = "READY"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

// Payment methods accepted at checkout and at the register.
const (
	PaymentCash        = "CASH"
	PaymentCard        = "CARD"
	PaymentMobileMoney = "MOBILE_MONEY"
	PaymentOnDelivery  = "ON_DELIVERY"
)

// Order is a placed order with its lines, as returned by the API.
type Order struct {
	ID          string          `json:"id"`
	Number      string          `json:"orderNumber"`
	UserID      string          `json:"userId"`
	Customer    *UserProfile    `json:"user,omitempty"`
	Type        OrderType       `json:"orderType"`
	Status      string          `json:"status"`
	Items       []OrderItem     `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Total       decimal.Decimal `json:"total"`
	Paid        bool            `json:"isPaid"`
	Address     string          `json:"deliveryAddress,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// OrderItem is one line of a placed order.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"productName"`
	SKU       string          `json:"sku,omitempty"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}
