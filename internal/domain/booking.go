package domain

import (
	"context"
	"time"
)

// Booking is a committed reservation of one slot behind a booking link. A
// booking is immutable once created; it disappears only when its link is
// deleted.
type Booking struct {
	ID           string    `json:"id"`
	LinkID       string    `json:"link_id"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	VisitorName  string    `json:"visitor_name"`
	VisitorEmail string    `json:"visitor_email"`
	CreatedAt    time.Time `json:"created_at"`
}

// TimeSlot is an ephemeral bookable interval produced by the slot generator.
// It is never persisted.
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

// BookingRepository is the port for booking persistence.
//
// The core consistency invariant of the whole system lives here: for a fixed
// (link, date, startTime) at most one booking can ever exist, no matter how
// many CreateBooking calls race for it.
type BookingRepository interface {
	// CreateBooking atomically checks for an existing booking of the same
	// (LinkID, Date, StartTime) and inserts b. Losing the race, in any form,
	// yields a ConflictError; on any other failure nothing is persisted.
	CreateBooking(ctx context.Context, b *Booking) error
	// ListBookings returns the bookings of a link on one date, ascending by
	// start time.
	ListBookings(ctx context.Context, linkID, date string) ([]Booking, error)
}
