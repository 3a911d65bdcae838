package service

import (
	"context"
	"fmt"
	"time"

	"github.com/evadimova/skhole/internal/domain"
	"github.com/evadimova/skhole/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
}

func NewSessionService(sessions repository.SessionRepo) SessionService {
	return &sessionService{sessions: sessions}
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.PlannedSession, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) ListAll(ctx context.Context) ([]*domain.PlannedSession, error) {
	return s.sessions.ListAll(ctx)
}

func (s *sessionService) ListBySubject(ctx context.Context, subjectID string) ([]*domain.PlannedSession, error) {
	return s.sessions.ListBySubject(ctx, subjectID)
}

func (s *sessionService) RecordResult(ctx context.Context, id string, actualMin, actualAmount int, rating *int) error {
	if actualMin <= 0 {
		return fmt.Errorf("actual minutes must be positive, got %d", actualMin)
	}
	if actualAmount < 0 {
		return fmt.Errorf("actual amount must not be negative, got %d", actualAmount)
	}

	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	sess.Completed = true
	sess.ActualMin = &actualMin
	sess.ActualAmount = &actualAmount
	sess.Rating = rating
	sess.UpdatedAt = time.Now().UTC()

	if err := sess.Validate(); err != nil {
		return err
	}
	return s.sessions.Update(ctx, sess)
}

func (s *sessionService) Move(ctx context.Context, id string, date string, hour *int) error {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	sess.Date = domain.DateOf(day)
	sess.Hour = hour
	sess.UpdatedAt = time.Now().UTC()

	if err := sess.Validate(); err != nil {
		return err
	}
	return s.sessions.Update(ctx, sess)
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}
