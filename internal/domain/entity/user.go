// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. Every user owns exactly one cart, created
// together with the account.
type User struct {
	ID           uuid.UUID // Store-assigned unique identifier.
	Username     string    // Unique login name, fixed at creation time.
	PasswordHash string    // bcrypt digest of the password. Never serialized outward.
	Cart         *Cart     // The cart owned by this user for its whole lifetime.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
