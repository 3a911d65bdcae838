package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableDays_StartsTomorrowEndsBeforeDeadline(t *testing.T) {
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday
	deadline := today.AddDate(0, 0, 5)

	days := AvailableDays(today, deadline, nil)

	require.Len(t, days, 4)
	assert.Equal(t, today.AddDate(0, 0, 1), days[0], "first eligible day is tomorrow")
	assert.True(t, days[len(days)-1].Before(deadline), "deadline day itself is excluded")
}

func TestAvailableDays_ExcludesBlockedWeekdays(t *testing.T) {
	// Sunday blocked, deadline a Wednesday 10 days out.
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)     // Monday
	deadline := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC) // Wednesday
	blocked := map[time.Weekday]bool{time.Sunday: true}

	days := AvailableDays(today, deadline, blocked)

	require.NotEmpty(t, days)
	for _, d := range days {
		assert.NotEqual(t, time.Sunday, d.Weekday(), "no Sunday in %v", d)
		assert.True(t, d.Before(deadline))
	}
	// Mar 3..10 minus Sunday Mar 8 = 7 days.
	assert.Len(t, days, 7)
}

func TestAvailableDays_DeadlineTomorrow(t *testing.T) {
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	days := AvailableDays(today, today.AddDate(0, 0, 1), nil)
	assert.Empty(t, days, "zero eligible days is a valid result")
}

func TestAvailableDays_DeadlinePassed(t *testing.T) {
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	days := AvailableDays(today, today.AddDate(0, 0, -3), nil)
	assert.Empty(t, days)
}

func TestAvailableDays_IgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2026, 3, 2, 23, 55, 0, 0, time.UTC)
	deadline := time.Date(2026, 3, 5, 1, 0, 0, 0, time.UTC)

	days := AvailableDays(today, deadline, nil)

	require.Len(t, days, 2)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), days[0])
}

func TestBlockedDaysBetween_OnlyBlockedDays(t *testing.T) {
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday
	deadline := today.AddDate(0, 0, 14)
	blocked := map[time.Weekday]bool{time.Saturday: true, time.Sunday: true}

	days := BlockedDaysBetween(today, deadline, blocked)

	require.Len(t, days, 4)
	for _, d := range days {
		wd := d.Weekday()
		assert.True(t, wd == time.Saturday || wd == time.Sunday)
	}
	for i := 1; i < len(days); i++ {
		assert.True(t, days[i-1].Before(days[i]), "days are ordered")
	}
}
