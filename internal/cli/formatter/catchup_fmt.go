package formatter

import (
	"fmt"
	"strings"

	"github.com/evadimova/skhole/internal/contract"
	"github.com/evadimova/skhole/internal/domain"
)

// FormatCatchUp renders catch-up suggestions, numbered so one can be picked
// for acceptance.
func FormatCatchUp(resp *contract.CatchUpResponse) string {
	if len(resp.Suggestions) == 0 {
		return StyleGreen.Render("All subjects are on pace.")
	}

	var b strings.Builder
	for i, sug := range resp.Suggestions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s %s is %s behind plan\n",
			StyleYellow.Render(fmt.Sprintf("[%d]", i+1)),
			Bold(sug.SubjectName),
			StyleRed.Render(FormatMinutes(sug.MinutesBehind))))

		for _, p := range sug.Proposals {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				p.Date.Format("Mon"),
				p.Date.Format(domain.DateLayout),
				FormatMinutes(p.Minutes)))
		}
	}

	b.WriteString("\n")
	b.WriteString(Dim("Accept a suggestion with: skhole catchup --accept <n>"))
	return b.String()
}
