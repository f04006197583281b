package impl

import (
	"context"
	"log/slog"

	deliverycontext "sareeta/internal/delivery/context"
	"sareeta/internal/domain/entity"
	domainerrors "sareeta/internal/domain/errors"
	"sareeta/internal/domain/repository"
	"sareeta/internal/domain/service"
	"sareeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	OrderRepo repository.OrderRepository
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		orderRepo: params.OrderRepo,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitOrder snapshots the user's cart into an order and clears the cart.
// Both happen in one transaction so a failure leaves the cart untouched.
func (srv *orderService) SubmitOrder(ctx context.Context, username string) (*entity.Order, error) {
	srv.log(ctx).Info("Submitting order", slog.String("username", username))

	var submittedOrder *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		cartRepo := repoFactory.CartRepo()
		orderRepo := repoFactory.OrderRepo()

		user, err := userRepo.FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("user not found for order submission")
			}

			return errors.Wrap(err, "failed to find user for order submission")
		}

		cart, err := cartRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrCartNotFound.WrapMessage("cart not found for order submission")
			}

			return errors.Wrap(err, "failed to find cart for order submission")
		}

		if cart.IsEmpty() {
			return domainerrors.ErrEmptyCart.WrapMessage("cannot submit an order from an empty cart")
		}

		order := entity.OrderFromCart(cart)
		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := cartRepo.Clear(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to clear cart after order submission")
		}

		submittedOrder = order

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute order submission transaction", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order submission transaction")
	}

	srv.log(ctx).Debug("Order submitted", slog.Any("orderID", submittedOrder.ID), slog.Int64("total", submittedOrder.Total))

	return submittedOrder, nil
}

// OrderHistory returns the user's past orders, newest first.
func (srv *orderService) OrderHistory(ctx context.Context, username string) ([]*entity.Order, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found for order history")
		}

		return nil, errors.Wrap(err, "failed to find user for order history")
	}

	orders, err := srv.orderRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to load order history", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load order history")
	}

	return orders, nil
}

// OrderPickupCode renders a PNG QR code for the order after verifying that the
// requester owns it.
func (srv *orderService) OrderPickupCode(ctx context.Context, username string, orderID uuid.UUID) ([]byte, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found for pickup code")
		}

		return nil, errors.Wrap(err, "failed to find user for pickup code")
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order not found for pickup code")
		}

		return nil, errors.Wrap(err, "failed to find order for pickup code")
	}

	if order.UserID != user.ID {
		srv.log(ctx).Warn("Pickup code requested for another user's order", slog.Any("orderID", orderID), slog.Any("userID", user.ID))

		return nil, domainerrors.ErrForbidden.WrapMessage("order belongs to another user")
	}

	png, err := srv.qrService.Generate(order.ID.String())
	if err != nil {
		srv.log(ctx).Error("Failed to render pickup code", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render pickup code")
	}

	return png, nil
}
