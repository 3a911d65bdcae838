package scheduler

import (
	"math"
	"time"

	"github.com/evadimova/skhole/internal/contract"
	"github.com/evadimova/skhole/internal/domain"
)

// behindThreshold marks a subject as behind when the measured pace drops
// under 90% of the planned pace.
const behindThreshold = 0.9

// CatchUpDayPicker selects the dates that receive extra catch-up sessions
// for one subject. The shortfall math stays the same regardless of policy.
type CatchUpDayPicker func(today, deadline time.Time, settings domain.Settings) []time.Time

// DefaultCatchUpDays proposes the subject's normally-blocked days between
// today and the deadline, earliest first.
func DefaultCatchUpDays(today, deadline time.Time, settings domain.Settings) []time.Time {
	return BlockedDaysBetween(today, deadline, settings.BlockedWeekdays)
}

// SubjectPace is the planned-versus-actual rate comparison for one subject.
// Rates are in amount per minute, pooled across sessions so long sessions
// weigh more. Assessable is false when either pool is empty or zero.
type SubjectPace struct {
	PlannedRate float64
	ActualRate  float64
	Assessable  bool
}

// ComputePace pools a subject's sessions dated up to today into planned and
// actual rates. Only completed sessions with both actuals recorded feed the
// actual pool.
func ComputePace(sessions []domain.PlannedSession, today time.Time) SubjectPace {
	var plannedMin, plannedAmount int
	var actualMin, actualAmount int
	end := domain.DateOf(today)

	for _, s := range sessions {
		if domain.DateOf(s.Date).After(end) {
			continue
		}
		plannedMin += s.PlannedMin
		plannedAmount += s.PlannedAmount
		if s.Completed && s.ActualMin != nil && s.ActualAmount != nil {
			actualMin += *s.ActualMin
			actualAmount += *s.ActualAmount
		}
	}

	if plannedMin == 0 || plannedAmount == 0 || actualMin == 0 || actualAmount == 0 {
		return SubjectPace{}
	}
	return SubjectPace{
		PlannedRate: float64(plannedAmount) / float64(plannedMin),
		ActualRate:  float64(actualAmount) / float64(actualMin),
		Assessable:  true,
	}
}

// DetectCatchUp compares each subject's planned pace against its measured
// pace and, for subjects running measurably slow, proposes extra sessions on
// otherwise blocked days sized to close the gap before the deadline. A nil
// picker uses DefaultCatchUpDays.
//
// Subjects without enough history are skipped: "cannot assess" is not
// "behind". The detector never mutates state; accepting a suggestion is a
// separate, explicit action.
func DetectCatchUp(
	subjects []domain.Subject,
	sessions []domain.PlannedSession,
	settings domain.Settings,
	today time.Time,
	pick CatchUpDayPicker,
) []contract.CatchUpSuggestion {
	if pick == nil {
		pick = DefaultCatchUpDays
	}

	bySubject := make(map[string][]domain.PlannedSession)
	for _, s := range sessions {
		bySubject[s.SubjectID] = append(bySubject[s.SubjectID], s)
	}

	var suggestions []contract.CatchUpSuggestion
	for _, subj := range subjects {
		subjSessions := bySubject[subj.ID]

		pace := ComputePace(subjSessions, today)
		if !pace.Assessable {
			continue
		}
		if pace.ActualRate/pace.PlannedRate >= behindThreshold {
			continue
		}

		var remainingPlannedMin int
		for _, s := range subjSessions {
			if !s.Completed {
				remainingPlannedMin += s.PlannedMin
			}
		}

		// Extra time to finish the remaining workload at the measured
		// (slower) rate instead of the planned one.
		minutesBehind := int(math.Round(float64(remainingPlannedMin) * (pace.PlannedRate/pace.ActualRate - 1)))
		if minutesBehind <= 0 {
			continue
		}

		var proposals []contract.CatchUpProposal
		shortfall := minutesBehind
		for _, day := range pick(today, subj.Deadline, settings) {
			if shortfall <= 0 {
				break
			}
			minutes := settings.DailyCapacityMin
			if shortfall < minutes {
				minutes = shortfall
			}
			proposals = append(proposals, contract.CatchUpProposal{Date: day, Minutes: minutes})
			shortfall -= minutes
		}
		if len(proposals) == 0 {
			continue
		}

		suggestions = append(suggestions, contract.CatchUpSuggestion{
			SubjectID:     subj.ID,
			SubjectName:   subj.Name,
			MinutesBehind: minutesBehind,
			Proposals:     proposals,
		})
	}

	return suggestions
}
