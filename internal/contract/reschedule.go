package contract

import "time"

// RescheduleRequest asks for a missed-session sweep. The caller decides the
// cadence (at most once per calendar day); the core stays stateless.
type RescheduleRequest struct {
	Today *time.Time
}

// RescheduledSession describes one session moved by the sweep.
type RescheduledSession struct {
	SessionID   string
	SubjectName string
	FromDate    time.Time
	PlannedMin  int
}

// RescheduleResponse reports the outcome of one sweep.
type RescheduleResponse struct {
	GeneratedAt      time.Time
	RescheduledCount int
	Rescheduled      []RescheduledSession
}
