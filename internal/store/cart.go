package store

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Hamza99-sudo/wondershop-client/internal/api"
	"github.com/Hamza99-sudo/wondershop-client/internal/domain"
	"github.com/Hamza99-sudo/wondershop-client/internal/domain/entity"
	"github.com/Hamza99-sudo/wondershop-client/pkg/logger"
)

const cartKey = "cart"

// cartState is the persisted shape of the cart.
type cartState struct {
	Items     []entity.CartLine `json:"items"`
	OrderType entity.OrderType  `json:"orderType"`
}

// CartStore holds the lines a customer intends to purchase and derives
// prices. All operations are synchronous state transitions; none touch the
// network. The server re-validates everything at checkout.
type CartStore struct {
	storage Storage
	log     *logger.Logger

	mu    sync.Mutex
	state cartState
}

// NewCartStore builds the store and restores the persisted cart, if any.
func NewCartStore(storage Storage, log *logger.Logger) *CartStore {
	if log == nil {
		log = logger.Nop()
	}
	c := &CartStore{storage: storage, log: log, state: cartState{OrderType: entity.OrderTypeRetail}}
	if _, err := storage.Load(cartKey, &c.state); err != nil {
		log.Warn().Err(err).Msg("restoring cart")
		c.state = cartState{OrderType: entity.OrderTypeRetail}
	}
	if !c.state.OrderType.IsValid() {
		c.state.OrderType = entity.OrderTypeRetail
	}
	return c
}

func (c *CartStore) persistLocked() {
	if err := c.storage.Save(cartKey, c.state); err != nil {
		c.log.Warn().Err(err).Msg("persisting cart")
	}
}

// AddItem puts quantity units of a product variant in the cart. A line
// already holding the same (product, size, color) triple is incremented
// instead of duplicated. A variant with no stock is refused outright.
//
// The increment is intentionally NOT clamped to the line's MaxQuantity:
// repeated quick-adds may optimistically exceed the stock snapshot and the
// server rejects the excess at checkout. UpdateQuantity, by contrast, clamps.
func (c *CartStore) AddItem(product entity.Product, variant entity.Variant, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	if !variant.InStock() {
		return domain.ErrOutOfStock
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.state.Items {
		if c.state.Items[i].Matches(product.ID, variant.Size, variant.Color) {
			c.state.Items[i].Quantity += quantity
			c.persistLocked()
			return nil
		}
	}
	c.state.Items = append(c.state.Items, entity.CartLine{
		ProductID:   product.ID,
		Product:     product.Snapshot(),
		Size:        variant.Size,
		Color:       variant.Color,
		Quantity:    quantity,
		MaxQuantity: variant.Quantity,
	})
	c.persistLocked()
	return nil
}

// UpdateQuantity sets the quantity of the line at index. Zero or negative
// removes the line; anything above the stock ceiling silently clamps.
func (c *CartStore) UpdateQuantity(index, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.state.Items) {
		return domain.ErrLineNotFound
	}
	if quantity <= 0 {
		c.state.Items = append(c.state.Items[:index], c.state.Items[index+1:]...)
	} else {
		if ceiling := c.state.Items[index].MaxQuantity; quantity > ceiling {
			quantity = ceiling
		}
		c.state.Items[index].Quantity = quantity
	}
	c.persistLocked()
	return nil
}

// RemoveItem drops the line at index unconditionally.
func (c *CartStore) RemoveItem(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.state.Items) {
		return domain.ErrLineNotFound
	}
	c.state.Items = append(c.state.Items[:index], c.state.Items[index+1:]...)
	c.persistLocked()
	return nil
}

// SetOrderType switches the pricing mode. Stored lines are untouched; only
// derived prices change.
func (c *CartStore) SetOrderType(t entity.OrderType) error {
	if !t.IsValid() {
		return domain.ErrInvalidInput
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.OrderType = t
	c.persistLocked()
	return nil
}

// ClearCart resets to an empty retail cart.
func (c *CartStore) ClearCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = cartState{OrderType: entity.OrderTypeRetail}
	c.persistLocked()
}

// ItemPrice returns the unit price of a line under the current pricing mode.
func (c *CartStore) ItemPrice(line entity.CartLine) decimal.Decimal {
	c.mu.Lock()
	mode := c.state.OrderType
	c.mu.Unlock()
	return line.UnitPrice(mode)
}

// Subtotal sums price times quantity over all lines, recomputed fresh on
// every call.
func (c *CartStore) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, line := range c.state.Items {
		total = total.Add(line.LineTotal(c.state.OrderType))
	}
	return total
}

// ItemCount sums all line quantities (the badge counter).
func (c *CartStore) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, line := range c.state.Items {
		count += line.Quantity
	}
	return count
}

// Items returns a copy of the cart lines.
func (c *CartStore) Items() []entity.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]entity.CartLine, len(c.state.Items))
	copy(items, c.state.Items)
	return items
}

// Len returns the number of lines.
func (c *CartStore) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.state.Items)
}

// OrderType returns the active pricing mode.
func (c *CartStore) OrderType() entity.OrderType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.OrderType
}

// ToOrderItems converts the cart lines into the checkout payload.
func (c *CartStore) ToOrderItems() []api.OrderItemInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]api.OrderItemInput, 0, len(c.state.Items))
	for _, line := range c.state.Items {
		items = append(items, api.OrderItemInput{
			ProductID: line.ProductID,
			Size:      line.Size,
			Color:     line.Color,
			Quantity:  line.Quantity,
		})
	}
	return items
}
