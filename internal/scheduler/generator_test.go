package scheduler

import (
	"testing"
	"time"

	"github.com/evadimova/skhole/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDays(start time.Time, n int) []time.Time {
	days := make([]time.Time, n)
	for i := range days {
		days[i] = domain.DateOf(start).AddDate(0, 0, i)
	}
	return days
}

func TestSplitTask_TwoSessionSplit(t *testing.T) {
	// "Chapter 3": 30 pages, 90 min estimate, 60 min/day cap, 5 available
	// days => exactly two sessions, 60min/20p then 30min/10p.
	task := domain.StudyTask{ID: "t-1", Unit: domain.UnitPages, Amount: 30, EstimatedMin: 90}
	days := testDays(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), 5)

	sessions := SplitTask(task, "s-1", days, 60)

	require.Len(t, sessions, 2)
	assert.Equal(t, 60, sessions[0].PlannedMin)
	assert.Equal(t, 20, sessions[0].PlannedAmount)
	assert.Equal(t, days[0], sessions[0].Date)
	assert.Equal(t, 30, sessions[1].PlannedMin)
	assert.Equal(t, 10, sessions[1].PlannedAmount)
	// spacing = floor(5/2) = 2
	assert.Equal(t, days[2], sessions[1].Date)
}

func TestSplitTask_EmptyDays(t *testing.T) {
	task := domain.StudyTask{ID: "t-1", Unit: domain.UnitPages, Amount: 10, EstimatedMin: 60}
	assert.Empty(t, SplitTask(task, "s-1", nil, 60))
}

func TestSplitTask_SingleSessionFits(t *testing.T) {
	task := domain.StudyTask{ID: "t-1", Unit: domain.UnitExercises, Amount: 8, EstimatedMin: 45}
	days := testDays(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), 3)

	sessions := SplitTask(task, "s-1", days, 60)

	require.Len(t, sessions, 1)
	assert.Equal(t, 45, sessions[0].PlannedMin)
	assert.Equal(t, 8, sessions[0].PlannedAmount)
	assert.Equal(t, days[0], sessions[0].Date)
}

func TestSplitTask_MoreSessionsThanDays_ClampsToLastDay(t *testing.T) {
	// 300 min at 60/day needs 5 sessions but only 2 days exist: the tail
	// piles onto the final day rather than past the deadline.
	task := domain.StudyTask{ID: "t-1", Unit: domain.UnitPages, Amount: 50, EstimatedMin: 300}
	days := testDays(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), 2)

	sessions := SplitTask(task, "s-1", days, 60)

	require.Len(t, sessions, 5)
	for _, s := range sessions {
		assert.False(t, s.Date.After(days[1]), "session on %v beyond last available day", s.Date)
	}
	assert.Equal(t, days[0], sessions[0].Date)
	assert.Equal(t, days[1], sessions[1].Date)
	assert.Equal(t, days[1], sessions[4].Date)
}

func TestSplitTask_MinutesNeverExceedEstimateOrCapacity(t *testing.T) {
	task := domain.StudyTask{ID: "t-1", Unit: domain.UnitVideoMin, Amount: 100, EstimatedMin: 150}
	days := testDays(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), 10)

	sessions := SplitTask(task, "s-1", days, 40)

	total := 0
	for _, s := range sessions {
		assert.LessOrEqual(t, s.PlannedMin, 40)
		assert.Greater(t, s.PlannedMin, 0)
		total += s.PlannedMin
	}
	assert.Equal(t, 150, total)
}

func TestSplitTask_LastSessionAbsorbsAmountDrift(t *testing.T) {
	// 7 units over 100 min at 30/day: per-session rounding would drift, the
	// final session settles the remainder so amounts sum exactly.
	task := domain.StudyTask{ID: "t-1", Unit: domain.UnitExercises, Amount: 7, EstimatedMin: 100}
	days := testDays(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), 8)

	sessions := SplitTask(task, "s-1", days, 30)

	totalAmount := 0
	for _, s := range sessions {
		totalAmount += s.PlannedAmount
	}
	assert.Equal(t, 7, totalAmount)
}

func TestSplitTask_SessionsStartUnplacedAndIncomplete(t *testing.T) {
	task := domain.StudyTask{ID: "t-9", Unit: domain.UnitPages, Amount: 20, EstimatedMin: 120}
	days := testDays(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), 4)

	for _, s := range SplitTask(task, "s-7", days, 60) {
		assert.Nil(t, s.Hour, "new sessions sit in the holding pool")
		assert.False(t, s.Completed)
		assert.Equal(t, "s-7", s.SubjectID)
		assert.Equal(t, "t-9", s.TaskID)
	}
}
