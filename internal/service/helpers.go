package service

import (
	"time"

	"github.com/evadimova/skhole/internal/domain"
)

// todayOrNow resolves the reference date for a planning run: an explicit
// override when the request carries one, otherwise the current UTC day.
func todayOrNow(override *time.Time) time.Time {
	if override != nil {
		return domain.DateOf(*override)
	}
	return domain.DateOf(time.Now().UTC())
}

// derefSubjects converts a repo result into the value slices the scheduler
// consumes.
func derefSubjects(in []*domain.Subject) []domain.Subject {
	out := make([]domain.Subject, len(in))
	for i, s := range in {
		out[i] = *s
	}
	return out
}

func derefTasks(in []*domain.StudyTask) []domain.StudyTask {
	out := make([]domain.StudyTask, len(in))
	for i, t := range in {
		out[i] = *t
	}
	return out
}

func derefSessions(in []*domain.PlannedSession) []domain.PlannedSession {
	out := make([]domain.PlannedSession, len(in))
	for i, s := range in {
		out[i] = *s
	}
	return out
}
