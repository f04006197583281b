package postgres

import (
	"context"

	"sareeta/internal/domain/entity"
	"sareeta/internal/domain/repository"
	"sareeta/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// itemRepository implements the repository.ItemRepository interface using GORM.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

// FindAll retrieves the whole catalog ordered by name.
func (repo *itemRepository) FindAll(ctx context.Context) ([]*entity.Item, error) {
	var itemsM []*model.ItemModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&itemsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	items := make([]*entity.Item, 0, len(itemsM))
	for _, itemM := range itemsM {
		items = append(items, toItemDomain(itemM))
	}

	return items, nil
}

// FindByID retrieves a single item by its unique ID.
func (repo *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by id")
	}

	return toItemDomain(&itemM), nil
}

// FindByName retrieves all items with the given name.
func (repo *itemRepository) FindByName(ctx context.Context, name string) ([]*entity.Item, error) {
	var itemsM []*model.ItemModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).Find(&itemsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find items by name")
	}

	items := make([]*entity.Item, 0, len(itemsM))
	for _, itemM := range itemsM {
		items = append(items, toItemDomain(itemM))
	}

	return items, nil
}

// toItemDomain converts a GORM ItemModel to a domain Item entity.
func toItemDomain(data *model.ItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	return &entity.Item{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		CreatedAt:   data.CreatedAt,
	}
}
