package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dayweave/internal/app"
)

// FormatStatus formats a learning status response into a styled CLI view.
func FormatStatus(resp *app.StatusResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n", PhaseBadge(resp.Phase), Dim(resp.UserID)))

	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n\n",
		Dim("Tasks seen:"), Bold(fmt.Sprintf("%d", resp.TasksSeen)),
		Dim("Completed:"), Bold(fmt.Sprintf("%d", resp.TasksCompleted)),
		Dim("Days active:"), Bold(fmt.Sprintf("%d", resp.DaysActive)),
	))

	b.WriteString(Header("Categories"))
	b.WriteString("\n")

	for _, cs := range resp.Categories {
		label := Capitalize(string(cs.Category))
		b.WriteString(fmt.Sprintf("%-14s %s  %s  %s\n",
			StyleFg.Render(label),
			RenderRate(cs.CompletionRate, 10),
			FrictionBadge(cs.FrictionLevel),
			Dim(fmt.Sprintf("weight %.1f", cs.PriorityWeight)),
		))
		if cs.SeenCount > 0 {
			b.WriteString(fmt.Sprintf("  %s\n", Dim(fmt.Sprintf(
				"seen %d, completed %d, satisfaction %.1f",
				cs.SeenCount, cs.CompletedCount, cs.AvgSatisfaction,
			))))
		}
	}

	return RenderBox("Learning Status", b.String())
}
