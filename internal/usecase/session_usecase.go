package usecase

import (
	"context"

	"sareeta/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// SessionUsecase defines the interface for login and token verification.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// VerifyToken validates a bearer token and returns the username it was
	// issued for.
	VerifyToken(ctx context.Context, token string) (string, error)
}
