package scheduler

import (
	"math"
	"time"

	"github.com/evadimova/skhole/internal/domain"
)

// SplitTask decomposes one task's estimated duration into a sequence of
// dated sessions, each capped at the daily capacity. Sessions are spread
// evenly across the available days; when the task needs more sessions than
// there are evenly-spaced slots they front-load, and the final available day
// clamps the tail so nothing lands on or past the deadline.
//
// The last session absorbs all amount-rounding drift, so session amounts sum
// exactly to the task amount. Generated sessions carry no ID or timestamps;
// those are assigned at persistence time. Hour starts unset (holding pool).
//
// An empty day list yields an empty result: the caller surfaces "could not
// schedule" to the user.
func SplitTask(task domain.StudyTask, subjectID string, days []time.Time, dailyCapacityMin int) []domain.PlannedSession {
	if len(days) == 0 || dailyCapacityMin <= 0 {
		return nil
	}

	needed := (task.EstimatedMin + dailyCapacityMin - 1) / dailyCapacityMin
	spacing := len(days) / needed
	if spacing < 1 {
		spacing = 1
	}

	sessions := make([]domain.PlannedSession, 0, needed)
	remainingMin := task.EstimatedMin
	remainingAmount := task.Amount

	for i := 0; i < needed; i++ {
		dayIdx := i * spacing
		if dayIdx > len(days)-1 {
			dayIdx = len(days) - 1
		}

		minutes := dailyCapacityMin
		if remainingMin < minutes {
			minutes = remainingMin
		}

		var amount int
		if i == needed-1 {
			amount = remainingAmount
		} else {
			amount = int(math.Round(float64(minutes) / float64(task.EstimatedMin) * float64(task.Amount)))
			if amount > remainingAmount {
				amount = remainingAmount
			}
		}

		sessions = append(sessions, domain.PlannedSession{
			SubjectID:     subjectID,
			TaskID:        task.ID,
			Date:          days[dayIdx],
			PlannedMin:    minutes,
			PlannedAmount: amount,
		})

		remainingMin -= minutes
		remainingAmount -= amount
	}

	return sessions
}
