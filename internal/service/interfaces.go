package service

import (
	"context"

	"github.com/evadimova/skhole/internal/contract"
	"github.com/evadimova/skhole/internal/domain"
)

type SubjectService interface {
	Create(ctx context.Context, s *domain.Subject) error
	GetByID(ctx context.Context, id string) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
	Update(ctx context.Context, s *domain.Subject) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.StudyTask) error
	GetByID(ctx context.Context, id string) (*domain.StudyTask, error)
	ListBySubject(ctx context.Context, subjectID string) ([]*domain.StudyTask, error)
	ListAll(ctx context.Context) ([]*domain.StudyTask, error)
	// UpdateScope edits a task's workload and clears its sessions in the
	// same transaction, so the next planning run regenerates them.
	UpdateScope(ctx context.Context, id string, amount, estimatedMin int) error
	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error
	// EstimateMinutes predicts a task duration from recorded history for
	// the given unit and amount.
	EstimateMinutes(ctx context.Context, unit domain.Unit, amount int) (int, error)
}

type ImportService interface {
	// ImportFile loads a subject-and-tasks JSON file and persists it
	// atomically. Returns the created subject and task count.
	ImportFile(ctx context.Context, path string) (*domain.Subject, int, error)
}

type SessionService interface {
	GetByID(ctx context.Context, id string) (*domain.PlannedSession, error)
	ListAll(ctx context.Context) ([]*domain.PlannedSession, error)
	ListBySubject(ctx context.Context, subjectID string) ([]*domain.PlannedSession, error)
	// RecordResult marks a session completed with measured duration,
	// amount, and an optional 1-5 quality rating.
	RecordResult(ctx context.Context, id string, actualMin, actualAmount int, rating *int) error
	// Move reassigns a session's date and hour; a nil hour returns it to
	// the holding pool.
	Move(ctx context.Context, id string, date string, hour *int) error
	Delete(ctx context.Context, id string) error
}

type PlanService interface {
	AutoPlan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}

type CatchUpService interface {
	Detect(ctx context.Context, req contract.CatchUpRequest) (*contract.CatchUpResponse, error)
	// Accept materializes one suggestion as real sessions. This is the
	// explicit user action; Detect alone never mutates state.
	Accept(ctx context.Context, suggestion contract.CatchUpSuggestion) (int, error)
}

type RescheduleService interface {
	RescheduleMissed(ctx context.Context, req contract.RescheduleRequest) (*contract.RescheduleResponse, error)
}

type StatusService interface {
	GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, s *domain.Settings) error
}
