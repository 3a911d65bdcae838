package scheduler

import (
	"testing"
	"time"

	"github.com/evadimova/skhole/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planFixture() ([]domain.Subject, []domain.StudyTask, domain.Settings, time.Time) {
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday
	subjects := []domain.Subject{
		{ID: "s-1", Name: "Biology", Deadline: today.AddDate(0, 0, 10)},
		{ID: "s-2", Name: "History", Deadline: today.AddDate(0, 0, 14)},
	}
	tasks := []domain.StudyTask{
		{ID: "t-1", SubjectID: "s-1", Unit: domain.UnitPages, Amount: 30, EstimatedMin: 90},
		{ID: "t-2", SubjectID: "s-1", Unit: domain.UnitExercises, Amount: 12, EstimatedMin: 60},
		{ID: "t-3", SubjectID: "s-2", Unit: domain.UnitVideoMin, Amount: 45, EstimatedMin: 70},
	}
	settings := domain.Settings{
		DailyCapacityMin: 60,
		BlockedWeekdays:  map[time.Weekday]bool{time.Sunday: true},
	}
	return subjects, tasks, settings, today
}

func TestPlanAll_PlansEveryUnplannedTask(t *testing.T) {
	subjects, tasks, settings, today := planFixture()

	sessions, results := PlanAll(subjects, tasks, nil, settings, today)

	require.NotEmpty(t, sessions)
	taskIDs := make(map[string]bool)
	for _, s := range sessions {
		taskIDs[s.TaskID] = true
	}
	assert.True(t, taskIDs["t-1"] && taskIDs["t-2"] && taskIDs["t-3"])

	require.Len(t, results, 2)
	assert.Equal(t, 2, results[0].TasksPlanned)
	assert.Equal(t, 1, results[1].TasksPlanned)
	assert.False(t, results[0].NoCapacity)
}

func TestPlanAll_NoSessionOnOrAfterDeadline(t *testing.T) {
	subjects, tasks, settings, today := planFixture()

	sessions, _ := PlanAll(subjects, tasks, nil, settings, today)

	deadlines := map[string]time.Time{"s-1": subjects[0].Deadline, "s-2": subjects[1].Deadline}
	for _, s := range sessions {
		assert.True(t, s.Date.Before(deadlines[s.SubjectID]),
			"session for %s dated %v on/after deadline %v", s.SubjectID, s.Date, deadlines[s.SubjectID])
		assert.NotEqual(t, time.Sunday, s.Date.Weekday())
	}
}

func TestPlanAll_Idempotent(t *testing.T) {
	subjects, tasks, settings, today := planFixture()

	first, _ := PlanAll(subjects, tasks, nil, settings, today)
	second, _ := PlanAll(subjects, tasks, first, settings, today)

	assert.Empty(t, second, "feeding the first run's output back must create nothing")
}

func TestPlanAll_SkipsCompletedTasks(t *testing.T) {
	subjects, tasks, settings, today := planFixture()
	tasks[0].Completed = true

	sessions, _ := PlanAll(subjects, tasks, nil, settings, today)

	for _, s := range sessions {
		assert.NotEqual(t, "t-1", s.TaskID)
	}
}

func TestPlanAll_SkipsTasksWithAnyExistingSession(t *testing.T) {
	subjects, tasks, settings, today := planFixture()
	// A single manually created session anywhere in the set keeps the task
	// out of auto-planning, even a completed one.
	existing := []domain.PlannedSession{
		{ID: "x", SubjectID: "s-1", TaskID: "t-2", Date: today, PlannedMin: 15, Completed: true},
	}

	sessions, _ := PlanAll(subjects, tasks, existing, settings, today)

	for _, s := range sessions {
		assert.NotEqual(t, "t-2", s.TaskID)
	}
}

func TestPlanAll_NoCapacitySubject(t *testing.T) {
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	subjects := []domain.Subject{
		{ID: "s-1", Name: "Cramming", Deadline: today.AddDate(0, 0, 1)}, // deadline tomorrow
	}
	tasks := []domain.StudyTask{
		{ID: "t-1", SubjectID: "s-1", Unit: domain.UnitPages, Amount: 10, EstimatedMin: 60},
	}
	settings := domain.Settings{DailyCapacityMin: 60}

	sessions, results := PlanAll(subjects, tasks, nil, settings, today)

	assert.Empty(t, sessions)
	require.Len(t, results, 1)
	assert.True(t, results[0].NoCapacity)
	assert.Zero(t, results[0].SessionsCreated)
}
