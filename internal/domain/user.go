package domain

import (
	"context"
	"time"
)

// User is an account that owns availability windows and booking links.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserRepository is the port for account persistence.
type UserRepository interface {
	// CreateUser persists u; a duplicate email yields a ConflictError.
	CreateUser(ctx context.Context, u *User) error
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	FindUserByID(ctx context.Context, id string) (*User, error)
}

// CalendarTokenRepository stores per-owner OAuth tokens for the external
// calendar connection. Tokens are opaque JSON blobs to the store.
type CalendarTokenRepository interface {
	SaveCalendarToken(ctx context.Context, userID string, token []byte) error
	// CalendarToken returns a NotFoundError when the owner has not connected
	// a calendar.
	CalendarToken(ctx context.Context, userID string) ([]byte, error)
}
