package formatter

import (
	"fmt"
	"strings"

	"github.com/evadimova/skhole/internal/contract"
)

const statusProgressBarWidth = 10

// FormatStatus formats a StatusResponse into a styled dashboard.
func FormatStatus(resp *contract.StatusResponse) string {
	if len(resp.Subjects) == 0 {
		return Dim("No subjects yet. Add one with: skhole subject add")
	}

	headers := []string{"SUBJECT", "TASKS", "PROGRESS", "PACE", "DEADLINE"}
	rows := make([][]string, 0, len(resp.Subjects))

	behind := 0
	for _, s := range resp.Subjects {
		var pct float64
		if s.PlannedMin > 0 {
			pct = float64(s.PlannedMin-s.PendingMin) / float64(s.PlannedMin)
		}
		if s.Behind {
			behind++
		}

		rows = append(rows, []string{
			Bold(s.SubjectName),
			fmt.Sprintf("%d/%d", s.TasksDone, s.TasksTotal),
			RenderProgress(pct, statusProgressBarWidth),
			PaceIndicator(s.PaceRatio),
			RelativeDateStyled(s.Deadline),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	if behind > 0 {
		b.WriteString(StyleRed.Render(fmt.Sprintf("%d subject(s) behind plan", behind)))
		b.WriteString(Dim(" — run 'skhole catchup' for suggestions") + "\n")
	} else {
		b.WriteString(StyleGreen.Render("Everything on pace") + "\n")
	}

	return RenderBox("Status", b.String())
}
