package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dayweave/internal/app"
)

// FormatPlan formats an assembled day plan into a styled CLI view.
func FormatPlan(resp *app.AssembleResponse) string {
	var b strings.Builder

	b.WriteString(PhaseBadge(resp.Phase))
	if resp.Plan.Date != "" {
		b.WriteString("  " + Dim(resp.Plan.Date))
	}
	b.WriteString("\n\n")

	if len(resp.Plan.Blocks) == 0 {
		b.WriteString(Dim("Empty plan."))
		b.WriteString("\n")
	}

	for i, block := range resp.Plan.Blocks {
		header := block.Name
		if header == "" {
			header = fmt.Sprintf("Block %d", i+1)
		}
		b.WriteString(Header(header))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s  %s\n",
			TimeRange(block.StartTime, block.EndTime),
			ZoneBadge(block.Zone),
		))

		for _, task := range block.Tasks {
			b.WriteString(fmt.Sprintf("  %s %s  %s %s\n",
				StyleBlue.Render("•"),
				StyleFg.Render(task.Title),
				TimeRange(task.StartTime, task.EndTime),
				SourceBadge(task.Source),
			))
			if task.Category != "" {
				b.WriteString(fmt.Sprintf("    %s\n", Dim(fmt.Sprintf("Category: %s", task.Category))))
			}
			if task.TemplateID != "" {
				line := fmt.Sprintf("    %s %s", Dim("Template:"), TruncID(task.TemplateID))
				if task.VariationGroup != "" {
					line += " " + Dim(fmt.Sprintf("(%s)", task.VariationGroup))
				}
				if task.Score != nil {
					line += " " + Dim(fmt.Sprintf("score %.2f", *task.Score))
				}
				b.WriteString(line + "\n")
			}
			for _, reason := range task.Reasons {
				b.WriteString(fmt.Sprintf("    %s %s\n",
					StyleYellow.Render("REASON:"),
					Dim(reason.Message),
				))
			}
		}

		if i < len(resp.Plan.Blocks)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(
		"%s  %s  %s  %s\n",
		StyleGreen.Render(fmt.Sprintf("Personalized: %d", resp.Stats.Replaced)),
		StyleDim.Render(fmt.Sprintf("Kept: %d", resp.Stats.KeptOriginal)),
		failedLabel(resp.Stats.Failed),
		StyleDim.Render(fmt.Sprintf("Total: %d", resp.Stats.TotalTasks)),
	))

	return RenderBox("Daily Plan", b.String())
}

func failedLabel(n int) string {
	if n > 0 {
		return StyleRed.Render(fmt.Sprintf("Failed: %d", n))
	}
	return StyleDim.Render("Failed: 0")
}
