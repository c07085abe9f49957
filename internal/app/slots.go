package app

import "schedlink/internal/domain"

// GenerateSlots expands availability windows for a single date into the
// ordered list of free fixed-length slots, excluding starts already booked.
// Windows are walked in input order and each window front to back; a slot is
// never synthesized across a window boundary, and a trailing stretch shorter
// than the slot length is dropped. Pure: no I/O, no mutation.
func GenerateSlots(windows []domain.AvailabilityWindow, booked map[string]struct{}) []domain.TimeSlot {
	var slots []domain.TimeSlot
	for _, w := range windows {
		cur, err := domain.ClockTime(w.StartTime)
		if err != nil {
			continue
		}
		end, err := domain.ClockTime(w.EndTime)
		if err != nil {
			continue
		}
		for ; !cur.Add(domain.SlotDuration).After(end); cur = cur.Add(domain.SlotDuration) {
			start := cur.Format(domain.ClockLayout)
			if _, taken := booked[start]; taken {
				continue
			}
			slots = append(slots, domain.TimeSlot{
				StartTime: start,
				EndTime:   cur.Add(domain.SlotDuration).Format(domain.ClockLayout),
				Available: true,
			})
		}
	}
	return slots
}
