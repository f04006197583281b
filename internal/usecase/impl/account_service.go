// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"unicode/utf8"

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

// minPasswordLength is the minimum accepted password length for new
// accounts, counted in characters rather than bytes.
const minPasswordLength = 7

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser orchestrates the complete account creation process. The password
// policy is checked before any repository access, and the user and their empty
// cart are persisted in a single transaction.
func (srv *accountService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*usecase.CreateUserOutput, error) {
	srv.log(ctx).Info("Starting account creation", slog.String("username", input.Username))

	if err := validatePassword(input.Password, input.ConfirmPassword); err != nil {
		srv.log(ctx).Warn("Password validation failed during account creation", slog.String("username", input.Username))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during account creation", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during account creation")
	}

	var createdUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		cartRepo := repoFactory.CartRepo()

		_, findErr := userRepo.FindByUsername(ctx, input.Username)
		if findErr == nil {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check username availability")
		}

		newUser := &entity.User{
			Username:     input.Username,
			PasswordHash: hashedPassword,
		}

		// The unique constraint on username still backs this check-then-insert
		// under concurrent registrations.
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user")
		}

		newCart := &entity.Cart{UserID: newUser.ID}
		if createErr := cartRepo.Create(ctx, newCart); createErr != nil {
			return errors.Wrap(createErr, "failed to create cart for new user")
		}

		newUser.Cart = newCart
		createdUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute account creation transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account creation transaction")
	}

	srv.log(ctx).Debug("Account created", slog.Any("userID", createdUser.ID))

	return &usecase.CreateUserOutput{User: createdUser}, nil
}

// GetUserByID retrieves a user by their unique ID.
func (srv *accountService) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found by id")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// GetUserByUsername retrieves a user by their unique username.
func (srv *accountService) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found by username")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return user, nil
}

// validatePassword enforces the account password policy: a minimum length and
// a matching confirmation. Both failures report the same error.
func validatePassword(password, confirmPassword string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return domainerrors.ErrPasswordPolicy.WrapMessage("password shorter than minimum length")
	}
	if password != confirmPassword {
		return domainerrors.ErrPasswordPolicy.WrapMessage("password confirmation does not match")
	}

	return nil
}
