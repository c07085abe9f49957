package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"schedlink/internal/domain"
)

// CalendarEvent is an external calendar entry shown to an owner next to
// their bookings. It never feeds back into slot generation or booking.
type CalendarEvent struct {
	ID        string    `json:"id"`
	Summary   string    `json:"summary"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

// CalendarService lets an owner connect a Google Calendar (read-only) and
// list its events for a date. Tokens persist per owner in the store.
type CalendarService struct {
	cfg    *oauth2.Config
	tokens domain.CalendarTokenRepository
	now    func() time.Time
}

// NewCalendarService builds the service; it returns nil when the OAuth
// client is not configured, in which case the calendar routes are not
// mounted.
func NewCalendarService(clientID, clientSecret, redirectURL string, tokens domain.CalendarTokenRepository) *CalendarService {
	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil
	}
	return &CalendarService{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{calendar.CalendarReadonlyScope},
			Endpoint:     google.Endpoint,
		},
		tokens: tokens,
		now:    time.Now,
	}
}

// AuthURL returns the consent URL for an owner. The state ties the callback
// back to the owner who initiated the flow.
func (s *CalendarService) AuthURL(userID string) string {
	state := fmt.Sprintf("%s:%d", userID, s.now().Unix())
	return s.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// HandleCallback exchanges the authorization code and stores the resulting
// token for the owner carried in state.
func (s *CalendarService) HandleCallback(ctx context.Context, code, state string) error {
	userID, _, ok := strings.Cut(state, ":")
	if !ok || userID == "" {
		return domain.Validationf("invalid oauth state")
	}
	token, err := s.cfg.Exchange(ctx, code)
	if err != nil {
		return domain.Validationf("failed to exchange authorization code")
	}
	raw, err := json.Marshal(token)
	if err != nil {
		return err
	}
	return s.tokens.SaveCalendarToken(ctx, userID, raw)
}

// EventsForDay lists the owner's primary-calendar events for one date.
func (s *CalendarService) EventsForDay(ctx context.Context, userID, date string) ([]CalendarEvent, error) {
	date, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	raw, err := s.tokens.CalendarToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	var token oauth2.Token
	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, err
	}

	client := s.cfg.Client(ctx, &token)
	srv, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, err
	}

	dayStart, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, err
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	items, err := srv.Events.List("primary").
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(dayStart.Format(time.RFC3339)).
		TimeMax(dayEnd.Format(time.RFC3339)).
		Do()
	if err != nil {
		return nil, err
	}

	var events []CalendarEvent
	for _, item := range items.Items {
		ev := CalendarEvent{ID: item.Id, Summary: item.Summary, Status: item.Status}
		if item.Start != nil {
			ev.StartTime = parseEventTime(item.Start)
		}
		if item.End != nil {
			ev.EndTime = parseEventTime(item.End)
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseEventTime(t *calendar.EventDateTime) time.Time {
	if t.DateTime != "" {
		if parsed, err := time.Parse(time.RFC3339, t.DateTime); err == nil {
			return parsed
		}
	}
	if t.Date != "" {
		if parsed, err := time.Parse(domain.DateLayout, t.Date); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
