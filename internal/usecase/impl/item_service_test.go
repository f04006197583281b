package impl

import (
	"context"
	"testing"

	"sareeta/internal/domain/entity"
	domainerrors "sareeta/internal/domain/errors"
	"sareeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItemService(items *fakeItemRepo) usecase.ItemUsecase {
	return NewItemService(ItemServiceParams{
		ItemRepo: items,
		Logger:   newDiscardLogger(),
	})
}

func TestItemService_ListItems(t *testing.T) {
	catalog := []*entity.Item{
		{ID: uuid.New(), Name: "Round Widget", Price: 299},
		{ID: uuid.New(), Name: "Square Widget", Price: 199},
	}
	service := newItemService(&fakeItemRepo{
		findAllFn: func(_ context.Context) ([]*entity.Item, error) {
			return catalog, nil
		},
	})

	items, err := service.ListItems(context.Background())

	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestItemService_GetItemByID_NotFound(t *testing.T) {
	service := newItemService(&fakeItemRepo{})

	item, err := service.GetItemByID(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
}

func TestItemService_GetItemsByName_Empty(t *testing.T) {
	service := newItemService(&fakeItemRepo{
		findByNameFn: func(_ context.Context, _ string) ([]*entity.Item, error) {
			return nil, nil
		},
	})

	items, err := service.GetItemsByName(context.Background(), "Missing Widget")

	require.Error(t, err)
	assert.Nil(t, items)
	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
}

func TestItemService_GetItemsByName_Success(t *testing.T) {
	service := newItemService(&fakeItemRepo{
		findByNameFn: func(_ context.Context, name string) ([]*entity.Item, error) {
			require.Equal(t, "Round Widget", name)

			return []*entity.Item{{ID: uuid.New(), Name: name, Price: 299}}, nil
		},
	})

	items, err := service.GetItemsByName(context.Background(), "Round Widget")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Round Widget", items[0].Name)
}
