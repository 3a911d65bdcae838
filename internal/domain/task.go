package domain

import (
	"fmt"
	"time"
)

// StudyTask is a discrete unit of required work within a subject, measured
// in one of the closed set of workload units.
type StudyTask struct {
	ID           string
	SubjectID    string
	Description  string
	Unit         Unit
	Amount       int // total workload in Unit, > 0
	EstimatedMin int // estimated total duration in minutes, > 0
	Completed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks task invariants. Violations are caller contract errors,
// not schedulable states.
func (t *StudyTask) Validate() error {
	if t.SubjectID == "" {
		return fmt.Errorf("task %q: subject ID is required", t.Description)
	}
	if !ValidUnits[t.Unit] {
		return fmt.Errorf("task %q: unknown unit %q", t.Description, t.Unit)
	}
	if t.Amount <= 0 {
		return fmt.Errorf("task %q: amount must be positive, got %d", t.Description, t.Amount)
	}
	if t.EstimatedMin <= 0 {
		return fmt.Errorf("task %q: estimated minutes must be positive, got %d", t.Description, t.EstimatedMin)
	}
	return nil
}
