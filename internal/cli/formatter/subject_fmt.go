package formatter

import (
	"fmt"
	"strings"

	"github.com/evadimova/skhole/internal/domain"
)

// FormatSubjectList renders subjects as a table ordered as given.
func FormatSubjectList(subjects []*domain.Subject) string {
	headers := []string{"ID", "NAME", "DEADLINE", ""}
	rows := make([][]string, 0, len(subjects))

	for _, s := range subjects {
		rows = append(rows, []string{
			ShortID(s.ID),
			Bold(s.Name),
			s.Deadline.Format(domain.DateLayout),
			RelativeDateStyled(s.Deadline),
		})
	}

	return RenderTable(headers, rows)
}

// FormatSubjectDetail renders one subject with its tasks.
func FormatSubjectDetail(subject *domain.Subject, tasks []*domain.StudyTask) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(subject.Name), Dim(subject.ID)))
	b.WriteString(fmt.Sprintf("Deadline: %s (%s)\n",
		subject.Deadline.Format(domain.DateLayout), RelativeDate(subject.Deadline)))

	if len(tasks) == 0 {
		b.WriteString(Dim("\nNo tasks yet.\n"))
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(FormatTaskList(tasks))
	return b.String()
}

// FormatTaskList renders tasks as a table.
func FormatTaskList(tasks []*domain.StudyTask) string {
	headers := []string{"ID", "TASK", "WORKLOAD", "EST", "DONE"}
	rows := make([][]string, 0, len(tasks))

	for _, t := range tasks {
		done := Dim("–")
		if t.Completed {
			done = StyleGreen.Render("✓")
		}
		rows = append(rows, []string{
			ShortID(t.ID),
			t.Description,
			FormatWorkload(t.Amount, t.Unit),
			FormatMinutes(t.EstimatedMin),
			done,
		})
	}

	return RenderTable(headers, rows)
}
