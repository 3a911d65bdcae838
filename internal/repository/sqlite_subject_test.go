package repository

import (
	"context"
	"testing"
	"time"

	"github.com/evadimova/skhole/internal/domain"
	"github.com/evadimova/skhole/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	deadline := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	subj := testutil.NewTestSubject("Physics", testutil.WithDeadline(deadline), testutil.WithColor("#fb4934"))
	require.NoError(t, repo.Create(ctx, subj))

	fetched, err := repo.GetByID(ctx, subj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Physics", fetched.Name)
	assert.Equal(t, "#fb4934", fetched.Color)
	assert.Equal(t, deadline, fetched.Deadline)
}

func TestSubjectRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubjectRepo_List_OrderedByDeadline(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	later := testutil.NewTestSubject("Zoology", testutil.WithDeadline(base.AddDate(0, 1, 0)))
	sooner := testutil.NewTestSubject("Algebra", testutil.WithDeadline(base))
	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, sooner))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, sooner.ID, list[0].ID)
	assert.Equal(t, later.ID, list[1].ID)
}

func TestSubjectRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	subj := testutil.NewTestSubject("Chemistry")
	require.NoError(t, repo.Create(ctx, subj))

	subj.Name = "Organic Chemistry"
	subj.Deadline = domain.DateOf(time.Now().UTC()).AddDate(0, 2, 0)
	require.NoError(t, repo.Update(ctx, subj))

	fetched, err := repo.GetByID(ctx, subj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Organic Chemistry", fetched.Name)
	assert.Equal(t, subj.Deadline, fetched.Deadline)
}

func TestSubjectRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	subj := testutil.NewTestSubject("Drop me")
	require.NoError(t, repo.Create(ctx, subj))
	require.NoError(t, repo.Delete(ctx, subj.ID))

	_, err := repo.GetByID(ctx, subj.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
