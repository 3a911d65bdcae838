package scheduler

import (
	"time"

	"github.com/evadimova/skhole/internal/domain"
)

// RescheduleMissed moves missed sessions onto today so they are not silently
// lost. A session is missed when it is not completed, dated strictly before
// today, and was actually placed into the calendar (has an hour). Sessions
// sitting unplaced in the holding pool are overdue but never "missed".
//
// Moved sessions keep their planned minutes, amount, and subject/task
// linkage; the hour is cleared so the user re-places them deliberately
// instead of colliding with today's agenda. Returns the full session list
// and the number moved. Running it again the same day moves nothing.
func RescheduleMissed(sessions []domain.PlannedSession, today time.Time) ([]domain.PlannedSession, int) {
	day := domain.DateOf(today)
	moved := 0

	updated := make([]domain.PlannedSession, len(sessions))
	copy(updated, sessions)

	for i := range updated {
		s := &updated[i]
		if s.Completed || !s.Placed() || !domain.DateOf(s.Date).Before(day) {
			continue
		}
		s.Date = day
		s.Hour = nil
		moved++
	}

	return updated, moved
}
