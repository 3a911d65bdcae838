package service

import (
	"context"
	"time"

	"github.com/evadimova/skhole/internal/contract"
	"github.com/evadimova/skhole/internal/db"
	"github.com/evadimova/skhole/internal/domain"
	"github.com/evadimova/skhole/internal/repository"
	"github.com/evadimova/skhole/internal/scheduler"
)

type rescheduleService struct {
	subjects repository.SubjectRepo
	sessions repository.SessionRepo
	uow      db.UnitOfWork
}

func NewRescheduleService(subjects repository.SubjectRepo, sessions repository.SessionRepo, uow db.UnitOfWork) RescheduleService {
	return &rescheduleService{subjects: subjects, sessions: sessions, uow: uow}
}

// RescheduleMissed sweeps incomplete, placed sessions dated before today onto
// today's holding pool and persists the moves atomically. Running it twice
// the same day is a no-op the second time.
func (s *rescheduleService) RescheduleMissed(ctx context.Context, req contract.RescheduleRequest) (*contract.RescheduleResponse, error) {
	today := todayOrNow(req.Today)

	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(subjects))
	for _, subj := range subjects {
		names[subj.ID] = subj.Name
	}

	before := derefSessions(sessions)
	updated, movedCount := scheduler.RescheduleMissed(before, today)

	resp := &contract.RescheduleResponse{
		GeneratedAt:      time.Now().UTC(),
		RescheduledCount: movedCount,
	}
	if movedCount == 0 {
		return resp, nil
	}

	var moved []*domain.PlannedSession
	for i := range updated {
		if domain.SameDay(updated[i].Date, before[i].Date) && updated[i].Hour == before[i].Hour {
			continue
		}
		sess := updated[i]
		sess.UpdatedAt = resp.GeneratedAt
		moved = append(moved, &sess)

		resp.Rescheduled = append(resp.Rescheduled, contract.RescheduledSession{
			SessionID:   sess.ID,
			SubjectName: names[sess.SubjectID],
			FromDate:    before[i].Date,
			PlannedMin:  sess.PlannedMin,
		})
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		for _, m := range moved {
			if err := txSessions.Update(ctx, m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
