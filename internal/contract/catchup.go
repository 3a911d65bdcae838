package contract

import "time"

// CatchUpRequest asks the detector to assess every subject's pace.
type CatchUpRequest struct {
	Today *time.Time
}

// CatchUpProposal is one suggested extra session on an otherwise blocked day.
type CatchUpProposal struct {
	Date    time.Time
	Minutes int
}

// CatchUpSuggestion names a subject that is measurably behind plan, the total
// time shortfall, and the proposed extra sessions to close it. Suggestions
// are advisory: nothing is persisted until one is explicitly accepted.
type CatchUpSuggestion struct {
	SubjectID     string
	SubjectName   string
	MinutesBehind int
	Proposals     []CatchUpProposal
}

// CatchUpResponse is the advisory output of one detection run.
type CatchUpResponse struct {
	GeneratedAt time.Time
	Suggestions []CatchUpSuggestion
}
