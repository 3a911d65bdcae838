package contract

import "time"

// StatusRequest asks for a per-subject progress overview.
type StatusRequest struct {
	Today *time.Time
}

// SubjectStatus is one subject's planned-versus-actual snapshot.
type SubjectStatus struct {
	SubjectID    string
	SubjectName  string
	Deadline     time.Time
	DaysLeft     int
	TasksTotal   int
	TasksDone    int
	PlannedMin   int
	CompletedMin int
	PendingMin   int
	// PaceRatio is actualRate/plannedRate over completed sessions;
	// zero when there is not enough history to assess.
	PaceRatio float64
	Behind    bool
}

// StatusResponse is the overview across all subjects.
type StatusResponse struct {
	GeneratedAt time.Time
	Subjects    []SubjectStatus
}
