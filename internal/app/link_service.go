package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"schedlink/internal/domain"
)

// LinkService manages shareable booking links and answers the public
// "which slots are free" question for a link.
type LinkService struct {
	links    domain.LinkRepository
	avail    domain.AvailabilityRepository
	bookings domain.BookingRepository
	now      func() time.Time
}

func NewLinkService(links domain.LinkRepository, avail domain.AvailabilityRepository, bookings domain.BookingRepository) *LinkService {
	return &LinkService{links: links, avail: avail, bookings: bookings, now: time.Now}
}

// Create mints a link with a fresh random slug for the owner.
func (s *LinkService) Create(ctx context.Context, userID string) (*domain.BookingLink, error) {
	slug, err := newSlug()
	if err != nil {
		return nil, err
	}
	l := &domain.BookingLink{
		ID:        uuid.NewString(),
		Slug:      slug,
		UserID:    userID,
		Active:    true,
		CreatedAt: s.now().UTC(),
	}
	if err := s.links.CreateLink(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// List returns the owner's links, newest first.
func (s *LinkService) List(ctx context.Context, userID string) ([]domain.BookingLink, error) {
	return s.links.ListLinks(ctx, userID)
}

// Resolve maps a public slug to its active link.
func (s *LinkService) Resolve(ctx context.Context, slug string) (*domain.BookingLink, error) {
	return s.links.FindLinkBySlug(ctx, slug)
}

// Deactivate turns a link off for new visitors. Existing bookings survive.
func (s *LinkService) Deactivate(ctx context.Context, id, userID string) (bool, error) {
	return s.links.DeactivateLink(ctx, id, userID)
}

// AvailableSlots resolves a slug and derives the free slots for one date:
// the owner's windows for that date minus the starts already booked on the
// link. Safe to call repeatedly; it mutates nothing.
func (s *LinkService) AvailableSlots(ctx context.Context, slug, date string) ([]domain.TimeSlot, error) {
	date, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	link, err := s.links.FindLinkBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	windows, err := s.avail.ListWindowsForDate(ctx, link.UserID, date)
	if err != nil {
		return nil, err
	}
	existing, err := s.bookings.ListBookings(ctx, link.ID, date)
	if err != nil {
		return nil, err
	}
	booked := make(map[string]struct{}, len(existing))
	for _, b := range existing {
		booked[b.StartTime] = struct{}{}
	}
	return GenerateSlots(windows, booked), nil
}

// newSlug returns 4 random bytes hex-encoded, the public token embedded in a
// shareable URL. Collisions are left to the slug's unique constraint.
func newSlug() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
