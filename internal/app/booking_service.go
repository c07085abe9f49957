package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"schedlink/internal/domain"
)

// LinkResolver is the capability the booking coordinator needs from the link
// registry: turning a public slug into an active link.
type LinkResolver interface {
	FindLinkBySlug(ctx context.Context, slug string) (*domain.BookingLink, error)
}

// BookingService is the booking coordinator. It commits a visitor to one
// slot with the guarantee that among any number of concurrent attempts on
// the same (link, date, startTime) exactly one succeeds; every other caller
// gets a ConflictError. All coordination happens inside the repository's
// transaction, never through in-process shared state, so instances are safe
// for arbitrary concurrent use.
type BookingService struct {
	links    LinkResolver
	bookings domain.BookingRepository
	now      func() time.Time
}

func NewBookingService(links LinkResolver, bookings domain.BookingRepository) *BookingService {
	return &BookingService{links: links, bookings: bookings, now: time.Now}
}

// BookSlotRequest carries a visitor's attempt to claim a slot. The slot
// length is fixed; the visitor only names the start.
type BookSlotRequest struct {
	Slug         string
	Date         string
	StartTime    string
	VisitorName  string
	VisitorEmail string
}

// BookSlot reserves the requested slot. A conflict is a legitimate outcome
// ("someone else got it first"), not a transient fault, so there is no retry
// here; callers who want another slot re-fetch and resubmit.
func (s *BookingService) BookSlot(ctx context.Context, req BookSlotRequest) (*domain.Booking, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	start, err := domain.ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.VisitorName) == "" {
		return nil, domain.Validationf("visitor name is required")
	}
	if strings.TrimSpace(req.VisitorEmail) == "" {
		return nil, domain.Validationf("visitor email is required")
	}

	link, err := s.links.FindLinkBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	end, err := domain.AddToClock(start, domain.SlotDuration)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		ID:           uuid.NewString(),
		LinkID:       link.ID,
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		VisitorName:  strings.TrimSpace(req.VisitorName),
		VisitorEmail: strings.TrimSpace(req.VisitorEmail),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.bookings.CreateBooking(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
