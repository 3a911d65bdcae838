package scheduler

import (
	"time"

	"github.com/evadimova/skhole/internal/domain"
)

// AvailableDays returns the ordered calendar days eligible for study between
// today and a deadline. The window starts at tomorrow (today may already be
// committed) and stops strictly before the deadline (the deadline itself is
// exam day, not study day). Days whose weekday is blocked are excluded.
//
// An empty result is a valid "no capacity" outcome, not an error.
func AvailableDays(today, deadline time.Time, blocked map[time.Weekday]bool) []time.Time {
	var days []time.Time
	end := domain.DateOf(deadline)
	for d := domain.DateOf(today).AddDate(0, 0, 1); d.Before(end); d = d.AddDate(0, 0, 1) {
		if blocked[d.Weekday()] {
			continue
		}
		days = append(days, d)
	}
	return days
}

// BlockedDaysBetween returns the ordered blocked-weekday dates strictly
// between today and the deadline. These are the candidate slots for
// catch-up sessions: days the regular planner never touches.
func BlockedDaysBetween(today, deadline time.Time, blocked map[time.Weekday]bool) []time.Time {
	var days []time.Time
	end := domain.DateOf(deadline)
	for d := domain.DateOf(today).AddDate(0, 0, 1); d.Before(end); d = d.AddDate(0, 0, 1) {
		if blocked[d.Weekday()] {
			days = append(days, d)
		}
	}
	return days
}
