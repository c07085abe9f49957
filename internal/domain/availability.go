package domain

import (
	"context"
	"time"
)

// AvailabilityWindow is a contiguous stretch of bookable time an owner has
// published for a single calendar date. Date and times are canonical strings
// (see clock.go) in the owner's implicit local clock.
type AvailabilityWindow struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

// Overlaps reports whether the window intersects the half-open interval
// [start, end). Touching endpoints do not overlap.
func (w AvailabilityWindow) Overlaps(start, end string) bool {
	return w.StartTime < end && w.EndTime > start
}

// AvailabilityRepository is the port for availability persistence.
type AvailabilityRepository interface {
	// CreateWindow persists w. It returns a ConflictError when any stored
	// window for the same (user, date) overlaps w; the check and the insert
	// run atomically so concurrent creates cannot both pass.
	CreateWindow(ctx context.Context, w *AvailabilityWindow) error
	// ListWindows returns all windows of a user, ascending by date then
	// start time.
	ListWindows(ctx context.Context, userID string) ([]AvailabilityWindow, error)
	// ListWindowsForDate returns a user's windows for one date, ascending by
	// start time.
	ListWindowsForDate(ctx context.Context, userID, date string) ([]AvailabilityWindow, error)
	// DeleteWindow removes a window if it belongs to userID and reports
	// whether a row was removed. Deleting an unknown or foreign window is
	// not an error.
	DeleteWindow(ctx context.Context, id, userID string) (bool, error)
}
