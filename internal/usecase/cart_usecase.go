package usecase

import (
	"context"

	"sareeta/internal/domain/entity"

	"github.com/google/uuid"
)

// ModifyCartInput defines the data required to add items to or remove items
// from a user's cart. Username comes from the authenticated session, never
// from the request body.
type ModifyCartInput struct {
	Username string
	ItemID   uuid.UUID
	Quantity int
}

// CartUsecase defines the interface for shopping cart operations.
type CartUsecase interface {
	AddToCart(ctx context.Context, input *ModifyCartInput) (*entity.Cart, error)
	RemoveFromCart(ctx context.Context, input *ModifyCartInput) (*entity.Cart, error)
	GetCart(ctx context.Context, username string) (*entity.Cart, error)
}
