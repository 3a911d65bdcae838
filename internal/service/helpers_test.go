package service

import (
	"testing"

	"github.com/evadimova/skhole/internal/db"
	"github.com/evadimova/skhole/internal/repository"
	"github.com/evadimova/skhole/internal/testutil"
)

// setupRepos wires the full repository set over a fresh in-memory database.
func setupRepos(t *testing.T) (
	repository.SubjectRepo,
	repository.TaskRepo,
	repository.SessionRepo,
	repository.SettingsRepo,
	db.UnitOfWork,
) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteSubjectRepo(database),
		repository.NewSQLiteTaskRepo(database),
		repository.NewSQLiteSessionRepo(database),
		repository.NewSQLiteSettingsRepo(database),
		testutil.NewTestUoW(database)
}
