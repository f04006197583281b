package postgres

import (
	"context"

	"sareeta/internal/domain/entity"
	domainerrors "sareeta/internal/domain/errors"
	"sareeta/internal/domain/repository"
	"sareeta/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// Create persists a new cart.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	cartM := &model.CartModel{
		ID:     cart.ID,
		UserID: cart.UserID,
	}

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("user already owns a cart")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// FindByUserID retrieves the cart owned by the given user, with its lines and
// their catalog items loaded.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Preload("Items.Item").
		Where("user_id = ?", userID).
		First(&cartM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user id")
	}

	return toCartDomain(&cartM), nil
}

// Save replaces the stored cart lines with the entity's current lines.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("cart_id = ?", cart.ID).Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart lines")
	}

	lines := fromCartLinesDomain(cart)
	if len(lines) > 0 {
		if err := db.Create(&lines).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrItemNotFound.WrapMessage("cart references an unknown item")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to save cart lines")
		}
	}

	// Touch the cart row so UpdatedAt reflects the mutation.
	if err := db.Model(&model.CartModel{}).Where("id = ?", cart.ID).Update("updated_at", gorm.Expr("now()")).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to touch cart")
	}

	return nil
}

// Clear removes all lines from the cart.
func (repo *cartRepository) Clear(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart entity.
func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]*entity.CartItem, 0, len(data.Items))
	for _, line := range data.Items {
		items = append(items, &entity.CartItem{
			ID:       line.ID,
			CartID:   line.CartID,
			ItemID:   line.ItemID,
			Item:     toItemDomain(line.Item),
			Quantity: line.Quantity,
		})
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCartLinesDomain converts the cart's lines to GORM models for persistence.
func fromCartLinesDomain(cart *entity.Cart) []*model.CartItemModel {
	lines := make([]*model.CartItemModel, 0, len(cart.Items))
	for _, line := range cart.Items {
		if line.Quantity <= 0 {
			continue
		}
		lines = append(lines, &model.CartItemModel{
			CartID:   cart.ID,
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		})
	}

	return lines
}
