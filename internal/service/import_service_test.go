package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportFile_PersistsSubjectAndTasks(t *testing.T) {
	subjects, tasks, _, _, uow := setupRepos(t)
	ctx := context.Background()

	path := writeImportFile(t, `{
		"subject": {"name": "Greek", "deadline": "2027-06-01"},
		"tasks": [
			{"description": "Read chapter 1", "unit": "pages", "amount": 30, "estimated_min": 90},
			{"description": "Exercises 1-10", "unit": "exercises", "amount": 10}
		]
	}`)

	svc := NewImportService(uow)
	subj, taskCount, err := svc.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "Greek", subj.Name)
	assert.Equal(t, 2, taskCount)

	persisted, err := subjects.GetByID(ctx, subj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Greek", persisted.Name)

	persistedTasks, err := tasks.ListBySubject(ctx, subj.ID)
	require.NoError(t, err)
	assert.Len(t, persistedTasks, 2)
}

func TestImportFile_RollsBackOnInvalidFile(t *testing.T) {
	subjects, _, _, _, uow := setupRepos(t)
	ctx := context.Background()

	path := writeImportFile(t, `{
		"subject": {"name": "", "deadline": "bad-date"},
		"tasks": []
	}`)

	svc := NewImportService(uow)
	_, _, err := svc.ImportFile(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid import file")

	all, err := subjects.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestImportFile_MissingFile(t *testing.T) {
	_, _, _, _, uow := setupRepos(t)

	svc := NewImportService(uow)
	_, _, err := svc.ImportFile(context.Background(), "/nonexistent/plan.json")
	assert.Error(t, err)
}
