package entity

import "time"

// Delivery statuses as reported by the API.
const (
	DeliveryPending   = "PENDING"
	DeliveryAssigned  = "ASSIGNED"
	DeliveryInTransit = "IN_TRANSIT"
	DeliveryDelivered = "DELIVERED"
	DeliveryFailed    = "FAILED"
)

// Delivery is a shipment attached to an order, optionally assigned to a driver.
type Delivery struct {
	ID        string       `json:"id"`
	OrderID   string       `json:"orderId"`
	Order     *Order       `json:"order,omitempty"`
	DriverID  string       `json:"driverId,omitempty"`
	Driver    *UserProfile `json:"driver,omitempty"`
	Status    string       `json:"status"`
	Address   string       `json:"address"`
	Phone     string       `json:"phone,omitempty"`
	Notes     string       `json:"notes,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
