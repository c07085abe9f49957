package domain

import "time"

const (
	// DateLayout is the canonical calendar-date form ("2026-01-10").
	DateLayout = "2006-01-02"
	// ClockLayout is the canonical wall-clock form ("09:30:00"). Canonical
	// clock strings compare correctly with plain string comparison.
	ClockLayout = "15:04:05"

	// SlotDuration is the fixed length of every bookable slot. It is a
	// process-wide constant; callers never supply a duration.
	SlotDuration = 30 * time.Minute
)

// ParseDate validates a calendar date and returns its canonical form.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", Validationf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t.Format(DateLayout), nil
}

// ParseClock validates a wall-clock time given as "HH:MM" or "HH:MM:SS" and
// returns its canonical "HH:MM:SS" form.
func ParseClock(s string) (string, error) {
	for _, layout := range []string{ClockLayout, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(ClockLayout), nil
		}
	}
	return "", Validationf("invalid time %q, want HH:MM or HH:MM:SS", s)
}

// ClockTime maps a canonical clock string onto the zero reference day so the
// value can be stepped with time arithmetic.
func ClockTime(s string) (time.Time, error) {
	return time.Parse(ClockLayout, s)
}

// AddToClock shifts a canonical clock string by d and returns the canonical
// result.
func AddToClock(s string, d time.Duration) (string, error) {
	t, err := ClockTime(s)
	if err != nil {
		return "", err
	}
	return t.Add(d).Format(ClockLayout), nil
}
