package contract

import "time"

// PlanRequest asks the planner to (re)generate sessions for every incomplete,
// still-unplanned task. Today overrides the reference date for tests and
// replays; nil means the current date.
type PlanRequest struct {
	Today *time.Time
}

// SubjectPlanResult reports the planning outcome for one subject.
type SubjectPlanResult struct {
	SubjectID       string
	SubjectName     string
	SessionsCreated int
	TasksPlanned    int
	// NoCapacity is set when the subject had unplanned tasks but zero
	// eligible study days before its deadline.
	NoCapacity bool
}

// PlanResponse summarizes one auto-planning run.
type PlanResponse struct {
	GeneratedAt     time.Time
	SessionsCreated int
	Subjects        []SubjectPlanResult
}
