package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the claims carried by a session token. The subject is the
// authenticated username.
type Claims struct {
	jwt.RegisteredClaims
}

// Username returns the token subject.
func (c *Claims) Username() string {
	return c.Subject
}

// TokenService defines the interface for issuing and validating session tokens.
// Tokens are stateless, self-expiring bearer credentials; there is no
// revocation mechanism.
type TokenService interface {
	// Issue creates a signed token for the authenticated username, expiring
	// after the configured duration.
	Issue(username string) (string, error)

	// Validate checks the signature and expiry of a token string and returns
	// its claims.
	Validate(tokenString string) (*Claims, error)
}
