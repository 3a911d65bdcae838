package formatter

import (
	"fmt"
	"strings"

	"github.com/evadimova/skhole/internal/contract"
	"github.com/evadimova/skhole/internal/domain"
)

// FormatReschedule renders the outcome of a missed-session sweep.
func FormatReschedule(resp *contract.RescheduleResponse) string {
	if resp.RescheduledCount == 0 {
		return Dim("No missed sessions.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Moved %s to today's holding pool:\n",
		Bold(fmt.Sprintf("%d session(s)", resp.RescheduledCount))))

	for _, r := range resp.Rescheduled {
		b.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
			ShortID(r.SessionID),
			Bold(r.SubjectName),
			FormatMinutes(r.PlannedMin),
			Dim(fmt.Sprintf("was %s", r.FromDate.Format(domain.DateLayout)))))
	}

	return b.String()
}
