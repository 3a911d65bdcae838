package domain

import (
	"fmt"
	"time"
)

// PlannedSession is a scheduled or completed block of study time tied to one
// task. A nil Hour means the session sits in the holding pool for its date,
// awaiting manual placement. Actual fields are populated once the session
// has been run.
type PlannedSession struct {
	ID            string
	SubjectID     string // denormalized for query convenience
	TaskID        string
	Date          time.Time
	Hour          *int // 0-23, nil = holding pool
	PlannedMin    int
	PlannedAmount int // in the task's unit
	Completed     bool
	ActualMin     *int
	ActualAmount  *int
	Rating        *int // 1-5 self-assessed quality
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks session invariants.
func (s *PlannedSession) Validate() error {
	if s.SubjectID == "" || s.TaskID == "" {
		return fmt.Errorf("session: subject and task IDs are required")
	}
	if s.Date.IsZero() {
		return fmt.Errorf("session: date is required")
	}
	if s.Hour != nil && (*s.Hour < 0 || *s.Hour > 23) {
		return fmt.Errorf("session: hour %d out of range", *s.Hour)
	}
	if s.PlannedMin <= 0 {
		return fmt.Errorf("session: planned minutes must be positive, got %d", s.PlannedMin)
	}
	if s.Rating != nil && (*s.Rating < 1 || *s.Rating > 5) {
		return fmt.Errorf("session: rating %d out of range", *s.Rating)
	}
	return nil
}

// Placed reports whether the session has an hour-of-day assignment.
func (s *PlannedSession) Placed() bool {
	return s.Hour != nil
}
