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

// TestRescheduleMissed_MovesAndPersists sweeps a missed placed session onto
// today and leaves everything else untouched.
func TestRescheduleMissed_MovesAndPersists(t *testing.T) {
	subjects, tasks, sessions, _, uow := setupRepos(t)
	ctx := context.Background()

	today := domain.DateOf(time.Now().UTC())
	subj := testutil.NewTestSubject("Spanish", testutil.WithDeadline(today.AddDate(0, 0, 14)))
	require.NoError(t, subjects.Create(ctx, subj))
	task := testutil.NewTestTask(subj.ID, "Vocabulary")
	require.NoError(t, tasks.Create(ctx, task))

	missed := testutil.NewTestSession(subj.ID, task.ID,
		testutil.WithDate(today.AddDate(0, 0, -2)),
		testutil.WithHour(18))
	unplaced := testutil.NewTestSession(subj.ID, task.ID,
		testutil.WithDate(today.AddDate(0, 0, -2)))
	done := testutil.NewTestSession(subj.ID, task.ID,
		testutil.WithDate(today.AddDate(0, 0, -1)),
		testutil.WithHour(9),
		testutil.WithActuals(60, 20))
	future := testutil.NewTestSession(subj.ID, task.ID,
		testutil.WithDate(today.AddDate(0, 0, 3)),
		testutil.WithHour(10))
	for _, s := range []*domain.PlannedSession{missed, unplaced, done, future} {
		require.NoError(t, sessions.Create(ctx, s))
	}

	svc := NewRescheduleService(subjects, sessions, uow)
	resp, err := svc.RescheduleMissed(ctx, contract.RescheduleRequest{Today: &today})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.RescheduledCount)
	require.Len(t, resp.Rescheduled, 1)
	assert.Equal(t, missed.ID, resp.Rescheduled[0].SessionID)
	assert.Equal(t, subj.Name, resp.Rescheduled[0].SubjectName)
	assert.True(t, domain.SameDay(today.AddDate(0, 0, -2), resp.Rescheduled[0].FromDate))

	got, err := sessions.GetByID(ctx, missed.ID)
	require.NoError(t, err)
	assert.True(t, domain.SameDay(today, got.Date))
	assert.Nil(t, got.Hour, "moved sessions return to the holding pool")

	// The unplaced, completed, and future sessions keep their dates.
	for _, id := range []string{unplaced.ID, done.ID, future.ID} {
		s, err := sessions.GetByID(ctx, id)
		require.NoError(t, err)
		assert.False(t, domain.SameDay(today, s.Date))
	}
}

func TestRescheduleMissed_SecondRunMovesNothing(t *testing.T) {
	subjects, tasks, sessions, _, uow := setupRepos(t)
	ctx := context.Background()

	today := domain.DateOf(time.Now().UTC())
	subj := testutil.NewTestSubject("Spanish", testutil.WithDeadline(today.AddDate(0, 0, 14)))
	require.NoError(t, subjects.Create(ctx, subj))
	task := testutil.NewTestTask(subj.ID, "Vocabulary")
	require.NoError(t, tasks.Create(ctx, task))
	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession(subj.ID, task.ID,
		testutil.WithDate(today.AddDate(0, 0, -1)),
		testutil.WithHour(18))))

	svc := NewRescheduleService(subjects, sessions, uow)

	first, err := svc.RescheduleMissed(ctx, contract.RescheduleRequest{Today: &today})
	require.NoError(t, err)
	assert.Equal(t, 1, first.RescheduledCount)

	second, err := svc.RescheduleMissed(ctx, contract.RescheduleRequest{Today: &today})
	require.NoError(t, err)
	assert.Zero(t, second.RescheduledCount)
	assert.Empty(t, second.Rescheduled)
}
