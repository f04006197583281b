package impl

import (
	"context"
	"log/slog"

	deliverycontext "sareeta/internal/delivery/context"
	"sareeta/internal/domain/entity"
	domainerrors "sareeta/internal/domain/errors"
	"sareeta/internal/domain/repository"
	"sareeta/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddToCart increases the quantity of an item in the user's cart, creating the
// line when the item is not in the cart yet.
func (srv *cartService) AddToCart(ctx context.Context, input *usecase.ModifyCartInput) (*entity.Cart, error) {
	srv.log(ctx).Debug("Adding to cart", slog.String("username", input.Username), slog.Any("itemID", input.ItemID), slog.Int("quantity", input.Quantity))

	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	return srv.modifyCart(ctx, input, func(cart *entity.Cart, item *entity.Item) {
		if line := cart.FindLine(item.ID); line != nil {
			line.Quantity += input.Quantity

			return
		}

		cart.Items = append(cart.Items, &entity.CartItem{
			CartID:   cart.ID,
			ItemID:   item.ID,
			Item:     item,
			Quantity: input.Quantity,
		})
	})
}

// RemoveFromCart decreases the quantity of an item in the user's cart,
// dropping the line when the quantity reaches zero.
func (srv *cartService) RemoveFromCart(ctx context.Context, input *usecase.ModifyCartInput) (*entity.Cart, error) {
	srv.log(ctx).Debug("Removing from cart", slog.String("username", input.Username), slog.Any("itemID", input.ItemID), slog.Int("quantity", input.Quantity))

	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	return srv.modifyCart(ctx, input, func(cart *entity.Cart, item *entity.Item) {
		line := cart.FindLine(item.ID)
		if line == nil {
			return
		}

		line.Quantity -= input.Quantity
		if line.Quantity <= 0 {
			kept := cart.Items[:0]
			for _, l := range cart.Items {
				if l.ItemID != item.ID {
					kept = append(kept, l)
				}
			}
			cart.Items = kept
		}
	})
}

// modifyCart loads the user's cart and the referenced item, applies the
// mutation, and saves the cart, all within a single transaction.
func (srv *cartService) modifyCart(ctx context.Context, input *usecase.ModifyCartInput, mutate func(*entity.Cart, *entity.Item)) (*entity.Cart, error) {
	var updatedCart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		cartRepo := repoFactory.CartRepo()
		itemRepo := repoFactory.ItemRepo()

		user, err := userRepo.FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("user not found for cart update")
			}

			return errors.Wrap(err, "failed to find user for cart update")
		}

		item, err := itemRepo.FindByID(ctx, input.ItemID)
		if err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				return domainerrors.ErrItemNotFound.WrapMessage("item not found for cart update")
			}

			return errors.Wrap(err, "failed to find item for cart update")
		}

		cart, err := cartRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrCartNotFound.WrapMessage("cart not found for user")
			}

			return errors.Wrap(err, "failed to find cart for update")
		}

		mutate(cart, item)

		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}

		updatedCart = cart

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute cart update transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute cart update transaction")
	}

	return updatedCart, nil
}

// GetCart returns the user's current cart with its lines loaded.
func (srv *cartService) GetCart(ctx context.Context, username string) (*entity.Cart, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found for cart lookup")
		}

		return nil, errors.Wrap(err, "failed to find user for cart lookup")
	}

	cart, err := srv.cartRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound.WrapMessage("cart not found for user")
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return cart, nil
}
