package service

import (
	"context"
	"time"

	"github.com/evadimova/skhole/internal/contract"
	"github.com/evadimova/skhole/internal/db"
	"github.com/evadimova/skhole/internal/domain"
	"github.com/evadimova/skhole/internal/repository"
	"github.com/evadimova/skhole/internal/scheduler"
	"github.com/google/uuid"
)

type planService struct {
	subjects repository.SubjectRepo
	tasks    repository.TaskRepo
	sessions repository.SessionRepo
	settings repository.SettingsRepo
	uow      db.UnitOfWork
}

func NewPlanService(
	subjects repository.SubjectRepo,
	tasks repository.TaskRepo,
	sessions repository.SessionRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
) PlanService {
	return &planService{
		subjects: subjects,
		tasks:    tasks,
		sessions: sessions,
		settings: settings,
		uow:      uow,
	}
}

// AutoPlan generates sessions for every incomplete task that has none yet
// and persists the whole batch atomically. Tasks that already carry sessions
// are left alone, so running it repeatedly is safe.
func (s *planService) AutoPlan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error) {
	today := todayOrNow(req.Today)

	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	generated, results := scheduler.PlanAll(
		derefSubjects(subjects),
		derefTasks(tasks),
		derefSessions(existing),
		*settings,
		today,
	)

	now := time.Now().UTC()
	toCreate := make([]*domain.PlannedSession, len(generated))
	for i := range generated {
		sess := generated[i]
		sess.ID = uuid.New().String()
		sess.CreatedAt = now
		sess.UpdatedAt = now
		toCreate[i] = &sess
	}

	if len(toCreate) > 0 {
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.NewSQLiteSessionRepo(tx).CreateBatch(ctx, toCreate)
		})
		if err != nil {
			return nil, err
		}
	}

	return &contract.PlanResponse{
		GeneratedAt:     now,
		SessionsCreated: len(toCreate),
		Subjects:        results,
	}, nil
}
