package entity

import (
	"time"

	"github.com/google/uuid"
)

// Item is a catalog entry. The catalog is read-only through this API; items
// are provisioned directly in the store.
type Item struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       int64 // Unit price in cents.
	CreatedAt   time.Time
}
