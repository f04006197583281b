package repository

import (
	"context"
	"errors"

	"sareeta/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrItemNotFound is returned when a catalog item is not found.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository defines read operations over the item catalog.
type ItemRepository interface {
	// FindAll retrieves the whole catalog.
	FindAll(ctx context.Context) ([]*entity.Item, error)

	// FindByID retrieves a single item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// FindByName retrieves all items with the given name.
	FindByName(ctx context.Context, name string) ([]*entity.Item, error)
}
