package app_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedlink/internal/adapter/memory"
	"schedlink/internal/app"
	"schedlink/internal/domain"
)

func seedLink(t *testing.T, store *memory.Store, slug string) *domain.BookingLink {
	t.Helper()
	l := &domain.BookingLink{
		ID:        "link-" + slug,
		Slug:      slug,
		UserID:    "owner-1",
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.CreateLink(context.Background(), l))
	return l
}

func TestBookSlot_UnknownSlug(t *testing.T) {
	store := memory.New()
	svc := app.NewBookingService(store, store)

	_, err := svc.BookSlot(context.Background(), app.BookSlotRequest{
		Slug: "nope", Date: "2099-01-10", StartTime: "09:00",
		VisitorName: "Ada", VisitorEmail: "ada@example.com",
	})
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestBookSlot_Validation(t *testing.T) {
	store := memory.New()
	seedLink(t, store, "abcd1234")
	svc := app.NewBookingService(store, store)

	tests := []struct {
		name string
		req  app.BookSlotRequest
	}{
		{"bad date", app.BookSlotRequest{Slug: "abcd1234", Date: "tomorrow", StartTime: "09:00", VisitorName: "Ada", VisitorEmail: "a@b.c"}},
		{"bad time", app.BookSlotRequest{Slug: "abcd1234", Date: "2099-01-10", StartTime: "quarter past", VisitorName: "Ada", VisitorEmail: "a@b.c"}},
		{"missing name", app.BookSlotRequest{Slug: "abcd1234", Date: "2099-01-10", StartTime: "09:00", VisitorName: "  ", VisitorEmail: "a@b.c"}},
		{"missing email", app.BookSlotRequest{Slug: "abcd1234", Date: "2099-01-10", StartTime: "09:00", VisitorName: "Ada", VisitorEmail: ""}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.BookSlot(context.Background(), tc.req)
			var validation *domain.ValidationError
			assert.ErrorAs(t, err, &validation)
		})
	}
}

func TestBookSlot_ComputesEndFromFixedDuration(t *testing.T) {
	store := memory.New()
	link := seedLink(t, store, "abcd1234")
	svc := app.NewBookingService(store, store)

	b, err := svc.BookSlot(context.Background(), app.BookSlotRequest{
		Slug: "abcd1234", Date: "2099-01-10", StartTime: "09:00",
		VisitorName: "Ada", VisitorEmail: "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, link.ID, b.LinkID)
	assert.Equal(t, "09:00:00", b.StartTime)
	assert.Equal(t, "09:30:00", b.EndTime)
}

func TestBookSlot_SecondAttemptConflicts(t *testing.T) {
	store := memory.New()
	seedLink(t, store, "abcd1234")
	svc := app.NewBookingService(store, store)
	ctx := context.Background()

	req := app.BookSlotRequest{
		Slug: "abcd1234", Date: "2099-01-10", StartTime: "09:00",
		VisitorName: "Ada", VisitorEmail: "ada@example.com",
	}
	_, err := svc.BookSlot(ctx, req)
	require.NoError(t, err)

	req.VisitorName = "Grace"
	req.VisitorEmail = "grace@example.com"
	_, err = svc.BookSlot(ctx, req)
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)

	// The same start on a different date is a different slot.
	req.Date = "2099-01-11"
	_, err = svc.BookSlot(ctx, req)
	assert.NoError(t, err)
}

// Racing visitors for one slot: exactly one wins, everyone else gets a
// conflict, and the store ends with a single booking row.
func TestBookSlot_ConcurrentAttemptsExactlyOneWinner(t *testing.T) {
	store := memory.New()
	link := seedLink(t, store, "abcd1234")
	svc := app.NewBookingService(store, store)

	const attempts = 32
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.BookSlot(context.Background(), app.BookSlotRequest{
				Slug: "abcd1234", Date: "2099-01-10", StartTime: "09:00",
				VisitorName: "Visitor", VisitorEmail: "visitor@example.com",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var wins, conflicts int
	for err := range errs {
		if err == nil {
			wins++
			continue
		}
		var conflict *domain.ConflictError
		require.ErrorAs(t, err, &conflict)
		conflicts++
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, conflicts)

	rows, err := store.ListBookings(context.Background(), link.ID, "2099-01-10")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

// Full flow: publish a window, list slots, book one, lose the rematch,
// observe the slot gone.
func TestBookingFlow_EndToEnd(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	availSvc := app.NewAvailabilityService(store)
	linkSvc := app.NewLinkService(store, store, store)
	bookSvc := app.NewBookingService(store, store)

	_, err := availSvc.Create(ctx, "owner-1", "2099-01-10", "09:00", "10:00")
	require.NoError(t, err)

	link, err := linkSvc.Create(ctx, "owner-1")
	require.NoError(t, err)

	slots, err := linkSvc.AvailableSlots(ctx, link.Slug, "2099-01-10")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00:00", slots[0].StartTime)
	assert.Equal(t, "09:30:00", slots[1].StartTime)

	_, err = bookSvc.BookSlot(ctx, app.BookSlotRequest{
		Slug: link.Slug, Date: "2099-01-10", StartTime: "09:00",
		VisitorName: "Ada", VisitorEmail: "ada@example.com",
	})
	require.NoError(t, err)

	_, err = bookSvc.BookSlot(ctx, app.BookSlotRequest{
		Slug: link.Slug, Date: "2099-01-10", StartTime: "09:00",
		VisitorName: "Grace", VisitorEmail: "grace@example.com",
	})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)

	slots, err = linkSvc.AvailableSlots(ctx, link.Slug, "2099-01-10")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "09:30:00", slots[0].StartTime)
}
