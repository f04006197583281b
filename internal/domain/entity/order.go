package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is an immutable snapshot of a cart at submission time. Item names and
// unit prices are copied so later catalog changes do not rewrite history.
type Order struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Items     []*OrderItem
	Total     int64 // Order total in cents, fixed at submission.
	CreatedAt time.Time
}

// OrderItem is one line of an order snapshot.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ItemID    uuid.UUID
	Name      string
	UnitPrice int64
	Quantity  int
}

// OrderFromCart builds an order snapshot for the cart's owner. Lines without
// a loaded item are skipped; the caller is expected to have preloaded them.
func OrderFromCart(cart *Cart) *Order {
	order := &Order{UserID: cart.UserID}
	for _, line := range cart.Items {
		if line.Item == nil || line.Quantity <= 0 {
			continue
		}
		order.Items = append(order.Items, &OrderItem{
			ItemID:    line.ItemID,
			Name:      line.Item.Name,
			UnitPrice: line.Item.Price,
			Quantity:  line.Quantity,
		})
		order.Total += line.Item.Price * int64(line.Quantity)
	}

	return order
}
