package repository

import (
	"context"
	"testing"

	"github.com/evadimova/skhole/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCascadeDelete_SubjectToTasksAndSessions verifies that deleting a
// subject removes its tasks and every session referencing them.
func TestCascadeDelete_SubjectToTasksAndSessions(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	subjRepo := NewSQLiteSubjectRepo(db)
	taskRepo := NewSQLiteTaskRepo(db)
	sessRepo := NewSQLiteSessionRepo(db)

	subj := testutil.NewTestSubject("Doomed")
	require.NoError(t, subjRepo.Create(ctx, subj))
	task := testutil.NewTestTask(subj.ID, "task")
	require.NoError(t, taskRepo.Create(ctx, task))
	sess := testutil.NewTestSession(subj.ID, task.ID)
	require.NoError(t, sessRepo.Create(ctx, sess))

	require.NoError(t, subjRepo.Delete(ctx, subj.ID))

	_, err := taskRepo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound, "task should cascade with its subject")
	_, err = sessRepo.GetByID(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound, "session should cascade with its subject")
}

// TestCascadeDelete_TaskToSessions verifies study_tasks -> planned_sessions
// cascade while the subject survives.
func TestCascadeDelete_TaskToSessions(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	subjRepo := NewSQLiteSubjectRepo(db)
	taskRepo := NewSQLiteTaskRepo(db)
	sessRepo := NewSQLiteSessionRepo(db)

	subj := testutil.NewTestSubject("Survivor")
	require.NoError(t, subjRepo.Create(ctx, subj))
	task := testutil.NewTestTask(subj.ID, "task")
	require.NoError(t, taskRepo.Create(ctx, task))
	sess := testutil.NewTestSession(subj.ID, task.ID)
	require.NoError(t, sessRepo.Create(ctx, sess))

	require.NoError(t, taskRepo.Delete(ctx, task.ID))

	_, err := sessRepo.GetByID(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = subjRepo.GetByID(ctx, subj.ID)
	assert.NoError(t, err, "subject must survive task deletion")
}
