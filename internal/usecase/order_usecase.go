package usecase

import (
	"context"

	"sareeta/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the interface for order submission and retrieval.
type OrderUsecase interface {
	// SubmitOrder converts the user's current cart into an order and empties
	// the cart, all within a single transaction.
	SubmitOrder(ctx context.Context, username string) (*entity.Order, error)
	OrderHistory(ctx context.Context, username string) ([]*entity.Order, error)
	// OrderPickupCode renders a PNG QR code identifying the order, for
	// presentation at pickup. Only the order's owner may request it.
	OrderPickupCode(ctx context.Context, username string, orderID uuid.UUID) ([]byte, error)
}
