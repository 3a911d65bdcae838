package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/evadimova/skhole/internal/db"
	"github.com/evadimova/skhole/internal/domain"
	"github.com/evadimova/skhole/internal/repository"
	"github.com/evadimova/skhole/internal/scheduler"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	subjects repository.SubjectRepo
	sessions repository.SessionRepo
	uow      db.UnitOfWork
}

func NewTaskService(tasks repository.TaskRepo, subjects repository.SubjectRepo, sessions repository.SessionRepo, uow db.UnitOfWork) TaskService {
	return &taskService{tasks: tasks, subjects: subjects, sessions: sessions, uow: uow}
}

func (s *taskService) Create(ctx context.Context, t *domain.StudyTask) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := t.Validate(); err != nil {
		return err
	}
	// Fail fast on a dangling subject reference rather than on the FK.
	if _, err := s.subjects.GetByID(ctx, t.SubjectID); err != nil {
		return fmt.Errorf("task subject: %w", err)
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.StudyTask, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListBySubject(ctx context.Context, subjectID string) ([]*domain.StudyTask, error) {
	return s.tasks.ListBySubject(ctx, subjectID)
}

func (s *taskService) ListAll(ctx context.Context) ([]*domain.StudyTask, error) {
	return s.tasks.ListAll(ctx)
}

// UpdateScope changes the task's workload and drops its sessions in the same
// transaction. The old plan was sized for the old scope; the next auto-plan
// run sees a session-less task and regenerates it.
func (s *taskService) UpdateScope(ctx context.Context, id string, amount, estimatedMin int) error {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	task.Amount = amount
	task.EstimatedMin = estimatedMin
	task.UpdatedAt = time.Now().UTC()
	if err := task.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)

		if err := txTasks.Update(ctx, task); err != nil {
			return err
		}
		return txSessions.DeleteByTask(ctx, id)
	})
}

func (s *taskService) SetCompleted(ctx context.Context, id string, completed bool) error {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	task.Completed = completed
	task.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, task)
}

// Delete removes the task; its sessions cascade via foreign keys.
func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

// EstimateMinutes predicts how long a workload takes at the student's
// measured pace, falling back to per-unit defaults without history.
func (s *taskService) EstimateMinutes(ctx context.Context, unit domain.Unit, amount int) (int, error) {
	if !domain.ValidUnits[unit] {
		return 0, fmt.Errorf("unknown unit %q", unit)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %d", amount)
	}

	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	history := scheduler.BuildHistory(derefTasks(tasks), derefSessions(sessions))
	rate := scheduler.EstimateMinutesPerUnit(history, unit)
	minutes := int(math.Ceil(rate * float64(amount)))
	if minutes < 1 {
		minutes = 1
	}
	return minutes, nil
}
