package service

import (
	"context"
	"testing"
	"time"

	"github.com/evadimova/skhole/internal/contract"
	"github.com/evadimova/skhole/internal/domain"
	"github.com/evadimova/skhole/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUpdateScope_ClearsSessionsAndReplans verifies that editing a task's
// workload drops its sessions, and that the next planning run regenerates
// them for the new scope.
func TestUpdateScope_ClearsSessionsAndReplans(t *testing.T) {
	subjects, tasks, sessions, settings, uow := setupRepos(t)
	ctx := context.Background()

	today := domain.DateOf(time.Now().UTC())
	subj := testutil.NewTestSubject("Algebra", testutil.WithDeadline(today.AddDate(0, 0, 14)))
	require.NoError(t, subjects.Create(ctx, subj))

	task := testutil.NewTestTask(subj.ID, "Problem set", testutil.WithWorkload(40, 180))
	require.NoError(t, tasks.Create(ctx, task))

	planSvc := NewPlanService(subjects, tasks, sessions, settings, uow)
	first, err := planSvc.AutoPlan(ctx, contract.PlanRequest{Today: &today})
	require.NoError(t, err)
	require.Greater(t, first.SessionsCreated, 0)

	taskSvc := NewTaskService(tasks, subjects, sessions, uow)
	require.NoError(t, taskSvc.UpdateScope(ctx, task.ID, 80, 360))

	remaining, err := sessions.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining, "scope edit should drop the old plan")

	updated, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, updated.Amount)
	assert.Equal(t, 360, updated.EstimatedMin)

	// Replanning regenerates sessions sized for the new scope.
	second, err := planSvc.AutoPlan(ctx, contract.PlanRequest{Today: &today})
	require.NoError(t, err)
	require.Greater(t, second.SessionsCreated, 0)

	replanned, err := sessions.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	var totalMin, totalAmount int
	for _, s := range replanned {
		totalMin += s.PlannedMin
		totalAmount += s.PlannedAmount
	}
	assert.Equal(t, 360, totalMin)
	assert.Equal(t, 80, totalAmount)
}

func TestUpdateScope_RejectsInvalidWorkload(t *testing.T) {
	subjects, tasks, sessions, _, uow := setupRepos(t)
	ctx := context.Background()

	subj := testutil.NewTestSubject("Physics")
	require.NoError(t, subjects.Create(ctx, subj))
	task := testutil.NewTestTask(subj.ID, "Kinematics")
	require.NoError(t, tasks.Create(ctx, task))

	taskSvc := NewTaskService(tasks, subjects, sessions, uow)
	assert.Error(t, taskSvc.UpdateScope(ctx, task.ID, 0, 60))
	assert.Error(t, taskSvc.UpdateScope(ctx, task.ID, 20, -5))
}

func TestTaskCreate_RequiresExistingSubject(t *testing.T) {
	subjects, tasks, sessions, _, uow := setupRepos(t)
	ctx := context.Background()

	taskSvc := NewTaskService(tasks, subjects, sessions, uow)
	orphan := testutil.NewTestTask("no-such-subject", "Orphan")
	orphan.ID = ""
	assert.Error(t, taskSvc.Create(ctx, orphan))
}

// TestEstimateMinutes_UsesRecordedHistory checks that the estimator prefers
// the student's measured pace over the built-in defaults.
func TestEstimateMinutes_UsesRecordedHistory(t *testing.T) {
	subjects, tasks, sessions, _, uow := setupRepos(t)
	ctx := context.Background()

	subj := testutil.NewTestSubject("Biology")
	require.NoError(t, subjects.Create(ctx, subj))
	task := testutil.NewTestTask(subj.ID, "Cell chapter", testutil.WithUnit(domain.UnitPages))
	require.NoError(t, tasks.Create(ctx, task))

	// 120 recorded minutes over 20 pages: 6 min/page, double the default.
	sess := testutil.NewTestSession(subj.ID, task.ID,
		testutil.WithPlanned(60, 20), testutil.WithActuals(120, 20))
	require.NoError(t, sessions.Create(ctx, sess))

	taskSvc := NewTaskService(tasks, subjects, sessions, uow)
	minutes, err := taskSvc.EstimateMinutes(ctx, domain.UnitPages, 10)
	require.NoError(t, err)
	assert.Equal(t, 60, minutes)
}

// TestEstimateMinutes_DefaultsWithoutHistory falls back to per-unit defaults.
func TestEstimateMinutes_DefaultsWithoutHistory(t *testing.T) {
	subjects, tasks, sessions, _, uow := setupRepos(t)
	ctx := context.Background()

	taskSvc := NewTaskService(tasks, subjects, sessions, uow)

	minutes, err := taskSvc.EstimateMinutes(ctx, domain.UnitPages, 10)
	require.NoError(t, err)
	assert.Equal(t, 30, minutes) // 3.0 min/page default

	minutes, err = taskSvc.EstimateMinutes(ctx, domain.UnitExercises, 4)
	require.NoError(t, err)
	assert.Equal(t, 20, minutes) // 5.0 min/exercise default

	_, err = taskSvc.EstimateMinutes(ctx, domain.Unit("chapters"), 2)
	assert.Error(t, err)
}
