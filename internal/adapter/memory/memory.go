// Package memory implements the repository ports in process memory for
// development and testing. A single mutex serializes all access, so it
// upholds the same exactly-one-winner booking contract as the SQL store.
package memory

import (
	"context"
	"sort"
	"sync"

	"schedlink/internal/domain"
)

// Store holds every entity behind one lock.
type Store struct {
	mu       sync.Mutex
	users    []domain.User
	windows  []domain.AvailabilityWindow
	links    []domain.BookingLink
	bookings map[string]domain.Booking
	tokens   map[string][]byte
}

// New creates an empty store.
func New() *Store {
	return &Store{
		bookings: make(map[string]domain.Booking),
		tokens:   make(map[string][]byte),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*Store)(nil)
var _ domain.AvailabilityRepository = (*Store)(nil)
var _ domain.LinkRepository = (*Store)(nil)
var _ domain.BookingRepository = (*Store)(nil)
var _ domain.CalendarTokenRepository = (*Store)(nil)

// --- UserRepository ---

func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return &domain.ConflictError{Reason: "email already in use"}
		}
	}
	s.users = append(s.users, *u)
	return nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, &domain.NotFoundError{Reason: "user not found"}
}

func (s *Store) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, &domain.NotFoundError{Reason: "user not found"}
}

// --- AvailabilityRepository ---

func (s *Store) CreateWindow(ctx context.Context, w *domain.AvailabilityWindow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.windows {
		if existing.UserID == w.UserID && existing.Date == w.Date &&
			existing.Overlaps(w.StartTime, w.EndTime) {
			return &domain.ConflictError{Reason: "availability overlaps with an existing window"}
		}
	}
	s.windows = append(s.windows, *w)
	return nil
}

func (s *Store) ListWindows(ctx context.Context, userID string) ([]domain.AvailabilityWindow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.AvailabilityWindow
	for _, w := range s.windows {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (s *Store) ListWindowsForDate(ctx context.Context, userID, date string) ([]domain.AvailabilityWindow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.AvailabilityWindow
	for _, w := range s.windows {
		if w.UserID == userID && w.Date == date {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (s *Store) DeleteWindow(ctx context.Context, id, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, w := range s.windows {
		if w.ID == id && w.UserID == userID {
			s.windows = append(s.windows[:i], s.windows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- LinkRepository ---

func (s *Store) CreateLink(ctx context.Context, l *domain.BookingLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.links {
		if existing.Slug == l.Slug {
			return &domain.ConflictError{Reason: "slug already in use"}
		}
	}
	s.links = append(s.links, *l)
	return nil
}

func (s *Store) FindLinkBySlug(ctx context.Context, slug string) (*domain.BookingLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.links {
		if l.Slug == slug && l.Active {
			out := l
			return &out, nil
		}
	}
	return nil, &domain.NotFoundError{Reason: "booking link not found"}
}

func (s *Store) ListLinks(ctx context.Context, userID string) ([]domain.BookingLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.BookingLink
	for _, l := range s.links {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) DeactivateLink(ctx context.Context, id, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.links {
		if l.ID == id && l.UserID == userID && l.Active {
			s.links[i].Active = false
			return true, nil
		}
	}
	return false, nil
}

// --- BookingRepository ---

func bookingKey(linkID, date, start string) string {
	return linkID + "|" + date + "|" + start
}

// CreateBooking inserts under the store lock: the first caller for a given
// (link, date, start) wins, every later caller observes the entry and gets
// a conflict.
func (s *Store) CreateBooking(ctx context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := bookingKey(b.LinkID, b.Date, b.StartTime)
	if _, taken := s.bookings[key]; taken {
		return &domain.ConflictError{Reason: "slot already booked"}
	}
	s.bookings[key] = *b
	return nil
}

func (s *Store) ListBookings(ctx context.Context, linkID, date string) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Booking
	for _, b := range s.bookings {
		if b.LinkID == linkID && b.Date == date {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

// --- CalendarTokenRepository ---

func (s *Store) SaveCalendarToken(ctx context.Context, userID string, token []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(token))
	copy(cp, token)
	s.tokens[userID] = cp
	return nil
}

func (s *Store) CalendarToken(ctx context.Context, userID string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.tokens[userID]
	if !ok {
		return nil, &domain.NotFoundError{Reason: "calendar not connected"}
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, nil
}
