package formatter

import (
	"fmt"
	"strings"

	"github.com/evadimova/skhole/internal/contract"
)

// FormatPlanResult renders the outcome of one auto-planning run.
func FormatPlanResult(resp *contract.PlanResponse) string {
	var b strings.Builder

	if resp.SessionsCreated == 0 {
		b.WriteString(Dim("Nothing to plan: every task is either completed or already scheduled.\n"))
	} else {
		b.WriteString(fmt.Sprintf("Planned %s across %d subject(s).\n",
			Bold(fmt.Sprintf("%d session(s)", resp.SessionsCreated)), len(resp.Subjects)))
	}

	for _, s := range resp.Subjects {
		switch {
		case s.NoCapacity:
			b.WriteString(StyleRed.Render(
				fmt.Sprintf("  %s: no study days left before the deadline", s.SubjectName)))
			b.WriteString("\n")
		case s.SessionsCreated > 0:
			b.WriteString(fmt.Sprintf("  %s: %d session(s) for %d task(s)\n",
				Bold(s.SubjectName), s.SessionsCreated, s.TasksPlanned))
		}
	}

	return b.String()
}
