package api

import (
	"context"
	"net/url"

	"github.com/Hamza99-sudo/wondershop-client/internal/domain/entity"
)

// DeliveriesService covers the /deliveries endpoint group.
type DeliveriesService struct {
	c *Client
}

// DeliveryFilter narrows the delivery list.
type DeliveryFilter struct {
	ListParams
	Status   string
	DriverID string
}

func (f DeliveryFilter) values() url.Values {
	q := f.ListParams.values()
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.DriverID != "" {
		q.Set("driverId", f.DriverID)
	}
	return q
}

// List returns a filtered slice of deliveries (staff view).
func (s *DeliveriesService) List(ctx context.Context, filter DeliveryFilter) ([]entity.Delivery, error) {
	var deliveries []entity.Delivery
	if err := s.c.get(ctx, "/deliveries", filter.values(), &deliveries); err != nil {
		return nil, err
	}
	return deliveries, nil
}

// Get fetches one delivery.
func (s *DeliveriesService) Get(ctx context.Context, id string) (*entity.Delivery, error) {
	var delivery entity.Delivery
	if err := s.c.get(ctx, "/deliveries/"+id, nil, &delivery); err != nil {
		return nil, err
	}
	return &delivery, nil
}

// MyDeliveries returns the authenticated driver's assignments.
func (s *DeliveriesService) MyDeliveries(ctx context.Context) ([]entity.Delivery, error) {
	var deliveries []entity.Delivery
	if err := s.c.get(ctx, "/deliveries/my-deliveries", nil, &deliveries); err != nil {
		return nil, err
	}
	return deliveries, nil
}

// ByDriver returns a given driver's deliveries (dispatcher view).
func (s *DeliveriesService) ByDriver(ctx context.Context, driverID string, params ListParams) ([]entity.Delivery, error) {
	var deliveries []entity.Delivery
	if err := s.c.get(ctx, "/deliveries/driver/"+driverID, params.values(), &deliveries); err != nil {
		return nil, err
	}
	return deliveries, nil
}

// CreateDeliveryRequest attaches a delivery to an order.
type CreateDeliveryRequest struct {
	OrderID string `json:"orderId"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Create attaches a delivery to an order.
func (s *DeliveriesService) Create(ctx context.Context, req CreateDeliveryRequest) (*entity.Delivery, error) {
	var delivery entity.Delivery
	if err := s.c.post(ctx, "/deliveries", req, &delivery); err != nil {
		return nil, err
	}
	return &delivery, nil
}

// AssignDriver hands a delivery to a driver.
func (s *DeliveriesService) AssignDriver(ctx context.Context, id, driverID string) (*entity.Delivery, error) {
	var delivery entity.Delivery
	body := map[string]string{"driverId": driverID}
	if err := s.c.put(ctx, "/deliveries/"+id+"/assign", body, &delivery); err != nil {
		return nil, err
	}
	return &delivery, nil
}

// UpdateStatus moves a delivery through its lifecycle; notes are required by
// the server when reporting a failed delivery.
func (s *DeliveriesService) UpdateStatus(ctx context.Context, id, status, notes string) (*entity.Delivery, error) {
	var delivery entity.Delivery
	body := map[string]string{"status": status}
	if notes != "" {
		body["notes"] = notes
	}
	if err := s.c.put(ctx, "/deliveries/"+id+"/status", body, &delivery); err != nil {
		return nil, err
	}
	return &delivery, nil
}
