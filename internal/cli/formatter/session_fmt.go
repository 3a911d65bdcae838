package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/evadimova/skhole/internal/domain"
)

// FormatSessionList renders sessions grouped by date, earliest first, with
// placed sessions ordered by hour ahead of the holding pool.
func FormatSessionList(sessions []*domain.PlannedSession, subjectNames map[string]string) string {
	if len(sessions) == 0 {
		return Dim("No sessions.")
	}

	sorted := make([]*domain.PlannedSession, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !domain.SameDay(sorted[i].Date, sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		hi, hj := 24, 24 // unplaced sorts last within the day
		if sorted[i].Hour != nil {
			hi = *sorted[i].Hour
		}
		if sorted[j].Hour != nil {
			hj = *sorted[j].Hour
		}
		return hi < hj
	})

	var b strings.Builder
	var currentDay time.Time

	for _, s := range sorted {
		if !domain.SameDay(s.Date, currentDay) {
			currentDay = s.Date
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(Header(fmt.Sprintf("%s  %s",
				currentDay.Format("Mon 2006-01-02"), RelativeDate(currentDay))))
			b.WriteString("\n")
		}
		b.WriteString(formatSessionLine(s, subjectNames[s.SubjectID]))
		b.WriteString("\n")
	}

	return b.String()
}

func formatSessionLine(s *domain.PlannedSession, subjectName string) string {
	slot := Dim("--:--")
	if s.Hour != nil {
		slot = StyleBlue.Render(fmt.Sprintf("%02d:00", *s.Hour))
	}

	mark := Dim("○")
	if s.Completed {
		mark = StyleGreen.Render("●")
	}

	line := fmt.Sprintf("  %s %s  %s  %s  %s",
		mark, slot, ShortID(s.ID), Bold(subjectName), FormatMinutes(s.PlannedMin))

	if s.Completed && s.ActualMin != nil {
		line += Dim(fmt.Sprintf("  (spent %s)", FormatMinutes(*s.ActualMin)))
	}
	return line
}
