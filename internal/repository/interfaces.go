package repository

import (
	"context"
	"errors"

	"github.com/evadimova/skhole/internal/domain"
)

// ErrNotFound is returned (wrapped) when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type SubjectRepo interface {
	Create(ctx context.Context, s *domain.Subject) error
	GetByID(ctx context.Context, id string) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
	Update(ctx context.Context, s *domain.Subject) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.StudyTask) error
	GetByID(ctx context.Context, id string) (*domain.StudyTask, error)
	ListBySubject(ctx context.Context, subjectID string) ([]*domain.StudyTask, error)
	ListAll(ctx context.Context) ([]*domain.StudyTask, error)
	Update(ctx context.Context, t *domain.StudyTask) error
	Delete(ctx context.Context, id string) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.PlannedSession) error
	CreateBatch(ctx context.Context, sessions []*domain.PlannedSession) error
	GetByID(ctx context.Context, id string) (*domain.PlannedSession, error)
	ListAll(ctx context.Context) ([]*domain.PlannedSession, error)
	ListBySubject(ctx context.Context, subjectID string) ([]*domain.PlannedSession, error)
	ListByTask(ctx context.Context, taskID string) ([]*domain.PlannedSession, error)
	Update(ctx context.Context, s *domain.PlannedSession) error
	Delete(ctx context.Context, id string) error
	DeleteByTask(ctx context.Context, taskID string) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}
