// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"sareeta/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a new account.
type CreateUserInput struct {
	Username        string
	Password        string
	ConfirmPassword string
}

// --- Output DTOs ---

// CreateUserOutput returns the newly created user's basic information.
type CreateUserOutput struct {
	User *entity.User
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
}
