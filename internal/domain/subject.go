package domain

import (
	"fmt"
	"time"
)

// Subject is a course or topic with a single deadline. Deleting a subject
// cascades to its tasks and their sessions.
type Subject struct {
	ID        string
	Name      string
	Color     string // decorative only
	Deadline  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks subject invariants.
func (s *Subject) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("subject name is required")
	}
	if s.Deadline.IsZero() {
		return fmt.Errorf("subject %q: deadline is required", s.Name)
	}
	return nil
}

// DaysLeft returns the number of whole days between today and the deadline.
// Negative when the deadline has passed.
func (s *Subject) DaysLeft(today time.Time) int {
	return int(DateOf(s.Deadline).Sub(DateOf(today)).Hours() / 24)
}
