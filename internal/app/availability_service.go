package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"schedlink/internal/domain"
)

// AvailabilityService validates and stores the windows an owner publishes.
type AvailabilityService struct {
	repo domain.AvailabilityRepository
	now  func() time.Time
}

func NewAvailabilityService(repo domain.AvailabilityRepository) *AvailabilityService {
	return &AvailabilityService{repo: repo, now: time.Now}
}

// Create validates and persists a new window. End must be after start, the
// date must not be in the past, and the interval must not overlap any window
// the owner already has on that date (the repository enforces the overlap
// check atomically).
func (s *AvailabilityService) Create(ctx context.Context, userID, date, start, end string) (*domain.AvailabilityWindow, error) {
	date, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	start, err = domain.ParseClock(start)
	if err != nil {
		return nil, err
	}
	end, err = domain.ParseClock(end)
	if err != nil {
		return nil, err
	}
	if end <= start {
		return nil, domain.Validationf("end time must be after start time")
	}
	if today := s.now().Format(domain.DateLayout); date < today {
		return nil, domain.Validationf("date must not be in the past")
	}

	w := &domain.AvailabilityWindow{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.CreateWindow(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// List returns the owner's windows ascending by date then start time.
func (s *AvailabilityService) List(ctx context.Context, userID string) ([]domain.AvailabilityWindow, error) {
	return s.repo.ListWindows(ctx, userID)
}

// Remove deletes a window the owner holds. It reports whether anything was
// deleted and never fails for an unknown or foreign id.
func (s *AvailabilityService) Remove(ctx context.Context, id, userID string) (bool, error) {
	return s.repo.DeleteWindow(ctx, id, userID)
}
