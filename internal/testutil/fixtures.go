package testutil

import (
	"time"

	"github.com/evadimova/skhole/internal/domain"
	"github.com/google/uuid"
)

// Subject options
type SubjectOption func(*domain.Subject)

func WithDeadline(d time.Time) SubjectOption {
	return func(s *domain.Subject) {
		s.Deadline = domain.DateOf(d)
	}
}

func WithColor(c string) SubjectOption {
	return func(s *domain.Subject) {
		s.Color = c
	}
}

func NewTestSubject(name string, opts ...SubjectOption) *domain.Subject {
	now := time.Now().UTC()
	s := &domain.Subject{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     "#83a598",
		Deadline:  domain.DateOf(now).AddDate(0, 0, 14),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Task options
type TaskOption func(*domain.StudyTask)

func WithUnit(u domain.Unit) TaskOption {
	return func(t *domain.StudyTask) {
		t.Unit = u
	}
}

func WithWorkload(amount, estimatedMin int) TaskOption {
	return func(t *domain.StudyTask) {
		t.Amount = amount
		t.EstimatedMin = estimatedMin
	}
}

func WithTaskCompleted() TaskOption {
	return func(t *domain.StudyTask) {
		t.Completed = true
	}
}

func NewTestTask(subjectID, description string, opts ...TaskOption) *domain.StudyTask {
	now := time.Now().UTC()
	t := &domain.StudyTask{
		ID:           uuid.New().String(),
		SubjectID:    subjectID,
		Description:  description,
		Unit:         domain.UnitPages,
		Amount:       30,
		EstimatedMin: 90,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Session options
type SessionOption func(*domain.PlannedSession)

func WithDate(d time.Time) SessionOption {
	return func(s *domain.PlannedSession) {
		s.Date = domain.DateOf(d)
	}
}

func WithHour(h int) SessionOption {
	return func(s *domain.PlannedSession) {
		s.Hour = &h
	}
}

func WithPlanned(minutes, amount int) SessionOption {
	return func(s *domain.PlannedSession) {
		s.PlannedMin = minutes
		s.PlannedAmount = amount
	}
}

// WithActuals marks the session completed with the given measured results.
func WithActuals(minutes, amount int) SessionOption {
	return func(s *domain.PlannedSession) {
		s.Completed = true
		s.ActualMin = &minutes
		s.ActualAmount = &amount
	}
}

func NewTestSession(subjectID, taskID string, opts ...SessionOption) *domain.PlannedSession {
	now := time.Now().UTC()
	s := &domain.PlannedSession{
		ID:            uuid.New().String(),
		SubjectID:     subjectID,
		TaskID:        taskID,
		Date:          domain.DateOf(now).AddDate(0, 0, 1),
		PlannedMin:    60,
		PlannedAmount: 20,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
