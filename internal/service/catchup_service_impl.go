package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/evadimova/skhole/internal/contract"
	"github.com/evadimova/skhole/internal/db"
	"github.com/evadimova/skhole/internal/domain"
	"github.com/evadimova/skhole/internal/repository"
	"github.com/evadimova/skhole/internal/scheduler"
	"github.com/google/uuid"
)

type catchUpService struct {
	subjects repository.SubjectRepo
	tasks    repository.TaskRepo
	sessions repository.SessionRepo
	settings repository.SettingsRepo
	uow      db.UnitOfWork
	pick     scheduler.CatchUpDayPicker
}

func NewCatchUpService(
	subjects repository.SubjectRepo,
	tasks repository.TaskRepo,
	sessions repository.SessionRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
) CatchUpService {
	return &catchUpService{
		subjects: subjects,
		tasks:    tasks,
		sessions: sessions,
		settings: settings,
		uow:      uow,
		pick:     scheduler.DefaultCatchUpDays,
	}
}

func (s *catchUpService) Detect(ctx context.Context, req contract.CatchUpRequest) (*contract.CatchUpResponse, error) {
	today := todayOrNow(req.Today)

	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	suggestions := scheduler.DetectCatchUp(
		derefSubjects(subjects),
		derefSessions(sessions),
		*settings,
		today,
		s.pick,
	)

	return &contract.CatchUpResponse{
		GeneratedAt: time.Now().UTC(),
		Suggestions: suggestions,
	}, nil
}

// Accept turns a suggestion into real sessions, attached to the subject's
// first incomplete task. The amount on each extra session is sized at the
// task's own minutes-per-amount rate so progress tracking stays coherent.
// Returns the number of sessions created.
func (s *catchUpService) Accept(ctx context.Context, suggestion contract.CatchUpSuggestion) (int, error) {
	tasks, err := s.tasks.ListBySubject(ctx, suggestion.SubjectID)
	if err != nil {
		return 0, err
	}

	var target *domain.StudyTask
	for _, t := range tasks {
		if !t.Completed {
			target = t
			break
		}
	}
	if target == nil {
		return 0, fmt.Errorf("subject %s has no incomplete task to attach catch-up sessions to", suggestion.SubjectID)
	}

	amountPerMin := float64(target.Amount) / float64(target.EstimatedMin)
	now := time.Now().UTC()

	toCreate := make([]*domain.PlannedSession, 0, len(suggestion.Proposals))
	for _, p := range suggestion.Proposals {
		amount := int(math.Round(amountPerMin * float64(p.Minutes)))
		if amount < 1 {
			amount = 1
		}
		toCreate = append(toCreate, &domain.PlannedSession{
			ID:            uuid.New().String(),
			SubjectID:     suggestion.SubjectID,
			TaskID:        target.ID,
			Date:          domain.DateOf(p.Date),
			PlannedMin:    p.Minutes,
			PlannedAmount: amount,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	if len(toCreate) == 0 {
		return 0, nil
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSessionRepo(tx).CreateBatch(ctx, toCreate)
	})
	if err != nil {
		return 0, err
	}
	return len(toCreate), nil
}
