package impl

import (
	"context"
	"log/slog"

	deliverycontext "sareeta/internal/delivery/context"
	"sareeta/internal/domain/entity"
	domainerrors "sareeta/internal/domain/errors"
	"sareeta/internal/domain/repository"
	"sareeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// itemService implements the ItemUsecase interface.
type itemService struct {
	itemRepo repository.ItemRepository
	logger   *slog.Logger
}

// ItemServiceParams holds dependencies for itemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	ItemRepo repository.ItemRepository
	Logger   *slog.Logger
}

// NewItemService is the constructor for itemService.
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		itemRepo: params.ItemRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListItems returns the whole catalog.
func (srv *itemService) ListItems(ctx context.Context) ([]*entity.Item, error) {
	items, err := srv.itemRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list items", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list items")
	}

	return items, nil
}

// GetItemByID retrieves a single catalog item.
func (srv *itemService) GetItemByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := srv.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound.WrapMessage("item not found by id")
		}

		return nil, errors.Wrap(err, "failed to find item by id")
	}

	return item, nil
}

// GetItemsByName retrieves all catalog items with the given name. An empty
// result reports item not found, matching the by-id lookup.
func (srv *itemService) GetItemsByName(ctx context.Context, name string) ([]*entity.Item, error) {
	items, err := srv.itemRepo.FindByName(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find items by name")
	}

	if len(items) == 0 {
		return nil, domainerrors.ErrItemNotFound.WrapMessage("no items with this name")
	}

	return items, nil
}
