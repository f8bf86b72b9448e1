package activity

import (
	"slices"
	"time"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

// ComputeStreaks derives the current and best posting streaks from events.
//
// Events without a timestamp are ignored and events on the same calendar day
// (in loc) count once. The current streak survives a one-day grace period: it
// is non-zero only if the most recent active day is today or yesterday.
func ComputeStreaks(events []*domain.PostingEvent, today time.Time, loc *time.Location) domain.Streaks {
	if loc == nil {
		loc = time.UTC
	}

	seen := make(map[time.Time]struct{}, len(events))
	days := make([]time.Time, 0, len(events))
	for _, e := range events {
		if e == nil || e.PostedAt == nil {
			continue
		}
		d := calendarDay(*e.PostedAt, loc)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	if len(days) == 0 {
		return domain.Streaks{}
	}

	// Most recent first.
	slices.SortFunc(days, func(a, b time.Time) int { return b.Compare(a) })

	current := 0
	if gap := daysBetween(days[0], calendarDay(today, loc)); gap == 0 || gap == 1 {
		current = 1
		for i := 1; i < len(days); i++ {
			if daysBetween(days[i], days[i-1]) != 1 {
				break
			}
			current++
		}
	}

	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i], days[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		best = max(best, run)
	}

	return domain.Streaks{Current: current, Best: max(best, current)}
}
