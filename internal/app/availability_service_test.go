package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedlink/internal/adapter/memory"
	"schedlink/internal/app"
	"schedlink/internal/domain"
)

func TestAvailabilityCreate_Validation(t *testing.T) {
	svc := app.NewAvailabilityService(memory.New())

	tests := []struct {
		name  string
		date  string
		start string
		end   string
	}{
		{"end equals start", "2099-01-10", "09:00", "09:00"},
		{"end before start", "2099-01-10", "10:00", "09:00"},
		{"past date", "2000-01-10", "09:00", "10:00"},
		{"malformed date", "10-01-2099", "09:00", "10:00"},
		{"malformed start", "2099-01-10", "9am", "10:00"},
		{"malformed end", "2099-01-10", "09:00", "ten"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "owner-1", tc.date, tc.start, tc.end)
			var validation *domain.ValidationError
			assert.ErrorAs(t, err, &validation)
		})
	}
}

func TestAvailabilityCreate_NormalizesTimes(t *testing.T) {
	svc := app.NewAvailabilityService(memory.New())

	w, err := svc.Create(context.Background(), "owner-1", "2099-01-10", "09:00", "10:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", w.StartTime)
	assert.Equal(t, "10:00:00", w.EndTime)
	assert.NotEmpty(t, w.ID)
}

func TestAvailabilityCreate_RejectsOverlap(t *testing.T) {
	svc := app.NewAvailabilityService(memory.New())
	ctx := context.Background()

	_, err := svc.Create(ctx, "owner-1", "2099-01-10", "09:00", "10:00")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "owner-1", "2099-01-10", "09:30", "10:30")
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestAvailabilityCreate_AdjacentWindowsDoNotConflict(t *testing.T) {
	svc := app.NewAvailabilityService(memory.New())
	ctx := context.Background()

	_, err := svc.Create(ctx, "owner-1", "2099-01-10", "09:00", "10:00")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-1", "2099-01-10", "10:00", "11:00")
	assert.NoError(t, err)
}

func TestAvailabilityCreate_OverlapScopedToOwnerAndDate(t *testing.T) {
	svc := app.NewAvailabilityService(memory.New())
	ctx := context.Background()

	_, err := svc.Create(ctx, "owner-1", "2099-01-10", "09:00", "10:00")
	require.NoError(t, err)

	// Same interval for another owner and another date both succeed.
	_, err = svc.Create(ctx, "owner-2", "2099-01-10", "09:00", "10:00")
	assert.NoError(t, err)
	_, err = svc.Create(ctx, "owner-1", "2099-01-11", "09:00", "10:00")
	assert.NoError(t, err)
}

func TestAvailabilityList_OrderedByDateThenStart(t *testing.T) {
	svc := app.NewAvailabilityService(memory.New())
	ctx := context.Background()

	for _, w := range [][3]string{
		{"2099-01-11", "09:00", "10:00"},
		{"2099-01-10", "14:00", "15:00"},
		{"2099-01-10", "09:00", "10:00"},
	} {
		_, err := svc.Create(ctx, "owner-1", w[0], w[1], w[2])
		require.NoError(t, err)
	}

	windows, err := svc.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, windows, 3)
	assert.Equal(t, "2099-01-10", windows[0].Date)
	assert.Equal(t, "09:00:00", windows[0].StartTime)
	assert.Equal(t, "2099-01-10", windows[1].Date)
	assert.Equal(t, "14:00:00", windows[1].StartTime)
	assert.Equal(t, "2099-01-11", windows[2].Date)
}

func TestAvailabilityRemove_Idempotent(t *testing.T) {
	svc := app.NewAvailabilityService(memory.New())
	ctx := context.Background()

	w, err := svc.Create(ctx, "owner-1", "2099-01-10", "09:00", "10:00")
	require.NoError(t, err)

	// Not the owner: nothing removed, no error.
	removed, err := svc.Remove(ctx, w.ID, "owner-2")
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = svc.Remove(ctx, w.ID, "owner-1")
	require.NoError(t, err)
	assert.True(t, removed)

	// Second removal of the same id reports false, never errors.
	removed, err = svc.Remove(ctx, w.ID, "owner-1")
	require.NoError(t, err)
	assert.False(t, removed)
}
