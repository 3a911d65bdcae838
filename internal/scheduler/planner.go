package scheduler

import (
	"time"

	"github.com/evadimova/skhole/internal/contract"
	"github.com/evadimova/skhole/internal/domain"
)

// PlanAll runs the session generator across every incomplete task that has
// no existing session, per subject, against that subject's own deadline.
// Tasks that already have at least one session anywhere in the existing set
// are skipped, which makes planning idempotent and keeps manual edits intact.
// Subjects with zero eligible days produce no sessions and are flagged
// NoCapacity in the per-subject results.
func PlanAll(
	subjects []domain.Subject,
	tasks []domain.StudyTask,
	existing []domain.PlannedSession,
	settings domain.Settings,
	today time.Time,
) ([]domain.PlannedSession, []contract.SubjectPlanResult) {
	planned := make(map[string]bool, len(existing))
	for _, s := range existing {
		planned[s.TaskID] = true
	}

	tasksBySubject := make(map[string][]domain.StudyTask)
	for _, t := range tasks {
		tasksBySubject[t.SubjectID] = append(tasksBySubject[t.SubjectID], t)
	}

	var generated []domain.PlannedSession
	var results []contract.SubjectPlanResult

	for _, subj := range subjects {
		days := AvailableDays(today, subj.Deadline, settings.BlockedWeekdays)

		result := contract.SubjectPlanResult{
			SubjectID:   subj.ID,
			SubjectName: subj.Name,
		}

		unplanned := 0
		for _, task := range tasksBySubject[subj.ID] {
			if task.Completed || planned[task.ID] {
				continue
			}
			unplanned++

			sessions := SplitTask(task, subj.ID, days, settings.DailyCapacityMin)
			if len(sessions) == 0 {
				continue
			}
			generated = append(generated, sessions...)
			result.TasksPlanned++
			result.SessionsCreated += len(sessions)
		}

		result.NoCapacity = unplanned > 0 && len(days) == 0
		results = append(results, result)
	}

	return generated, results
}
