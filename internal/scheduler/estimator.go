package scheduler

import "github.com/evadimova/skhole/internal/domain"

// HistoryRecord is one completed session's measured throughput, tagged with
// its task's unit.
type HistoryRecord struct {
	Unit         domain.Unit
	ActualMin    int
	ActualAmount int
}

// BuildHistory assembles throughput records from completed sessions. The
// unit comes from the owning task; sessions of unknown tasks or without
// both actuals recorded are dropped.
func BuildHistory(tasks []domain.StudyTask, sessions []domain.PlannedSession) []HistoryRecord {
	unitByTask := make(map[string]domain.Unit, len(tasks))
	for _, t := range tasks {
		unitByTask[t.ID] = t.Unit
	}

	var history []HistoryRecord
	for _, s := range sessions {
		if !s.Completed || s.ActualMin == nil || s.ActualAmount == nil {
			continue
		}
		unit, ok := unitByTask[s.TaskID]
		if !ok {
			continue
		}
		history = append(history, HistoryRecord{
			Unit:         unit,
			ActualMin:    *s.ActualMin,
			ActualAmount: *s.ActualAmount,
		})
	}
	return history
}

// EstimateMinutesPerUnit converts session history into an expected
// minutes-per-unit rate for one unit. The pool is summed, not averaged
// per session, so longer sessions weigh proportionally more. Records with
// a zero duration or amount are excluded to avoid division artifacts.
// With no usable history the per-unit default rate applies.
func EstimateMinutesPerUnit(history []HistoryRecord, unit domain.Unit) float64 {
	var totalMin, totalAmount int
	for _, h := range history {
		if h.Unit != unit || h.ActualMin <= 0 || h.ActualAmount <= 0 {
			continue
		}
		totalMin += h.ActualMin
		totalAmount += h.ActualAmount
	}

	if totalMin == 0 || totalAmount == 0 {
		if rate, ok := domain.DefaultMinutesPerUnit[unit]; ok {
			return rate
		}
		return 1
	}
	return float64(totalMin) / float64(totalAmount)
}
