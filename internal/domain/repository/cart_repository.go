package repository

import (
	"context"
	"errors"

	"sareeta/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when a cart is not found.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the standard operations for cart persistence.
type CartRepository interface {
	// Create persists a new, typically empty, cart.
	Create(ctx context.Context, cart *entity.Cart) error

	// FindByUserID retrieves the cart owned by the given user, with its lines
	// and their catalog items loaded.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Save persists the current set of cart lines, replacing the stored ones.
	Save(ctx context.Context, cart *entity.Cart) error

	// Clear removes all lines from the cart.
	Clear(ctx context.Context, cartID uuid.UUID) error
}
