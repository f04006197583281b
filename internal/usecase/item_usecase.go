package usecase

import (
	"context"

	"sareeta/internal/domain/entity"

	"github.com/google/uuid"
)

// ItemUsecase defines the interface for catalog lookups.
type ItemUsecase interface {
	ListItems(ctx context.Context) ([]*entity.Item, error)
	GetItemByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	GetItemsByName(ctx context.Context, name string) ([]*entity.Item, error)
}
