package service

import (
	"context"
	"time"

	"github.com/evadimova/skhole/internal/domain"
	"github.com/evadimova/skhole/internal/repository"
	"github.com/google/uuid"
)

type subjectService struct {
	subjects repository.SubjectRepo
}

func NewSubjectService(subjects repository.SubjectRepo) SubjectService {
	return &subjectService{subjects: subjects}
}

func (s *subjectService) Create(ctx context.Context, subj *domain.Subject) error {
	if subj.ID == "" {
		subj.ID = uuid.New().String()
	}
	subj.Deadline = domain.DateOf(subj.Deadline)
	now := time.Now().UTC()
	subj.CreatedAt = now
	subj.UpdatedAt = now

	if err := subj.Validate(); err != nil {
		return err
	}
	return s.subjects.Create(ctx, subj)
}

func (s *subjectService) GetByID(ctx context.Context, id string) (*domain.Subject, error) {
	return s.subjects.GetByID(ctx, id)
}

func (s *subjectService) List(ctx context.Context) ([]*domain.Subject, error) {
	return s.subjects.List(ctx)
}

func (s *subjectService) Update(ctx context.Context, subj *domain.Subject) error {
	subj.Deadline = domain.DateOf(subj.Deadline)
	subj.UpdatedAt = time.Now().UTC()
	if err := subj.Validate(); err != nil {
		return err
	}
	return s.subjects.Update(ctx, subj)
}

// Delete removes the subject; tasks and sessions go with it (FK cascade).
func (s *subjectService) Delete(ctx context.Context, id string) error {
	return s.subjects.Delete(ctx, id)
}
