package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/dayweave/internal/app"
	"github.com/alexanderramin/dayweave/internal/domain"
)

func TestFormatPlan_ShowsProvenanceAndStats(t *testing.T) {
	score := 0.73
	resp := &app.AssembleResponse{
		GeneratedAt: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
		UserID:      "user-1",
		Phase:       domain.PhaseEstablishment,
		Plan: app.AssembledPlan{
			Date: "2025-06-02",
			Blocks: []app.PlanBlock{
				{
					Name: "Morning", StartTime: "09:00", EndTime: "12:00", Zone: domain.ZonePeak,
					Tasks: []app.PlanTask{
						{
							Title: "Pomodoro focus block", StartTime: "09:00", EndTime: "09:50",
							Category: domain.CategoryWork, Source: domain.SourceLibrary,
							TemplateID: "wk-pomodoro-01", Score: &score,
							Reasons: []app.SelectionReason{
								{Code: app.ReasonFavorite, Message: "Established favorite"},
							},
						},
						{
							Title: "Mystery errand", Source: domain.SourceOriginal,
						},
					},
				},
			},
		},
		Stats: app.AssemblyStats{TotalTasks: 2, Replaced: 1, KeptOriginal: 1},
	}

	out := FormatPlan(resp)
	assert.Contains(t, out, "Pomodoro focus block")
	assert.Contains(t, out, "Mystery errand")
	assert.Contains(t, out, "MORNING")
	assert.Contains(t, out, "Established favorite")
	assert.Contains(t, out, "score 0.73")
	assert.Contains(t, out, "Personalized: 1")
	assert.Contains(t, out, "Kept: 1")
	assert.Contains(t, out, "ESTABLISHMENT")
}

func TestFormatPlan_EmptyPlan(t *testing.T) {
	out := FormatPlan(&app.AssembleResponse{Phase: domain.PhaseDiscovery})
	assert.Contains(t, out, "Empty plan.")
	assert.Contains(t, out, "DISCOVERY")
}
