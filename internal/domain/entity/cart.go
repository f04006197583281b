package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart holds the items a user intends to order. It is created empty when the
// owning user account is created and is never deleted.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Items     []*CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is one line of a cart: an item reference plus a quantity.
type CartItem struct {
	ID       uuid.UUID
	CartID   uuid.UUID
	ItemID   uuid.UUID
	Item     *Item // Loaded together with the cart for price calculation.
	Quantity int
}

// Total sums unit price times quantity over all lines. Lines whose item has
// not been loaded contribute nothing.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.Items {
		if line.Item == nil {
			continue
		}
		total += line.Item.Price * int64(line.Quantity)
	}

	return total
}

// FindLine returns the cart line for the given item, or nil.
func (c *Cart) FindLine(itemID uuid.UUID) *CartItem {
	for _, line := range c.Items {
		if line.ItemID == itemID {
			return line
		}
	}

	return nil
}

// IsEmpty reports whether the cart has no lines with a positive quantity.
func (c *Cart) IsEmpty() bool {
	for _, line := range c.Items {
		if line.Quantity > 0 {
			return false
		}
	}

	return true
}
