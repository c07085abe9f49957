package domain

import (
	"context"
	"time"
)

// BookingLink maps an opaque public slug to its owner. Links are never
// mutated after creation except for the active flag.
type BookingLink struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	UserID    string    `json:"user_id"`
	Active    bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// LinkRepository is the port for booking-link persistence.
type LinkRepository interface {
	CreateLink(ctx context.Context, l *BookingLink) error
	// FindLinkBySlug resolves an active link; it returns a NotFoundError for
	// unknown or deactivated slugs.
	FindLinkBySlug(ctx context.Context, slug string) (*BookingLink, error)
	// ListLinks returns a user's links, newest first.
	ListLinks(ctx context.Context, userID string) ([]BookingLink, error)
	// DeactivateLink clears the active flag if the link belongs to userID
	// and reports whether an active link was changed.
	DeactivateLink(ctx context.Context, id, userID string) (bool, error)
}
