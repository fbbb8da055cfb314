package calendar

import (
	"context"
	"log"
	"time"

	"github.com/jonathan/hr-agent/internal/types"
)

// BusinessHours is the slot-search policy: which hours are bookable, the
// start-time granularity, and how many raw slots a single search may return.
type BusinessHours struct {
	OpenHour    int
	CloseHour   int
	StepMinutes int
	MaxSlots    int
	Location    *time.Location
}

// DefaultBusinessHours is the standard interviewing window: Monday through
// Friday, 09:00 to 17:00, 30-minute starts, at most 20 slots per search.
func DefaultBusinessHours(loc *time.Location) BusinessHours {
	return BusinessHours{
		OpenHour:    9,
		CloseHour:   17,
		StepMinutes: 30,
		MaxSlots:    20,
		Location:    loc,
	}
}

// SlotFinder searches the calendar for open interview slots within business
// hours.
type SlotFinder struct {
	client Client
	hours  BusinessHours
	now    func() time.Time
}

// NewSlotFinder creates a SlotFinder over the given calendar backend.
func NewSlotFinder(client Client, hours BusinessHours) *SlotFinder {
	return &SlotFinder{
		client: client,
		hours:  hours,
		now:    time.Now,
	}
}

// FindSlots scans up to 2*daysAhead calendar days starting today, skipping
// weekends, and returns open slots grouped by date in scan order. A slot is
// open when the calendar reports no overlapping events; if that query fails
// the slot is assumed open, since a stale busy block is cheaper to resolve
// than silently hiding real availability. The search stops once
// BusinessHours.MaxSlots slots have been collected.
func (f *SlotFinder) FindSlots(ctx context.Context, durationMinutes, daysAhead int) []types.AvailabilityGroup {
	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(f.hours.StepMinutes) * time.Minute

	today := f.now().In(f.hours.Location)
	startDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, f.hours.Location)

	var slots []types.TimeSlot
scan:
	for i := 0; i < daysAhead*2; i++ {
		day := startDate.AddDate(0, 0, i)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}

		closing := day.Add(time.Duration(f.hours.CloseHour) * time.Hour)
		for start := day.Add(time.Duration(f.hours.OpenHour) * time.Hour); ; start = start.Add(step) {
			end := start.Add(duration)
			if end.After(closing) {
				break
			}
			if len(slots) >= f.hours.MaxSlots {
				break scan
			}
			if !f.isSlotAvailable(ctx, start, end) {
				continue
			}
			slots = append(slots, types.TimeSlot{
				Start:    start,
				End:      end,
				Date:     start.Format("2006-01-02"),
				Time:     start.Format("15:04"),
				Timezone: f.hours.Location.String(),
			})
		}
	}

	log.Printf("Found %d available slots over %d days", len(slots), daysAhead*2)
	return groupSlots(slots)
}

// isSlotAvailable reports whether no calendar event overlaps [start, end).
// Query failures count as available.
func (f *SlotFinder) isSlotAvailable(ctx context.Context, start, end time.Time) bool {
	events, err := f.client.ListEvents(ctx, start, end)
	if err != nil {
		log.Printf("Error checking calendar availability: %v", err)
		return true
	}
	return len(events) == 0
}

// groupSlots collects slot times per date, keeping scan order for both the
// dates and the times within each date.
func groupSlots(slots []types.TimeSlot) []types.AvailabilityGroup {
	groups := make([]types.AvailabilityGroup, 0)
	index := make(map[string]int)

	for _, slot := range slots {
		i, ok := index[slot.Date]
		if !ok {
			i = len(groups)
			index[slot.Date] = i
			groups = append(groups, types.AvailabilityGroup{Date: slot.Date})
		}
		groups[i].Slots = append(groups[i].Slots, slot.Time)
	}
	return groups
}
