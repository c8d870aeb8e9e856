package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/dayweave/internal/app"
	"github.com/alexanderramin/dayweave/internal/domain"
)

func planViewFixture() *app.AssembleResponse {
	return &app.AssembleResponse{
		Phase: domain.PhaseDiscovery,
		Plan: app.AssembledPlan{
			Date: "2025-06-02",
			Blocks: []app.PlanBlock{
				{
					Name: "Morning",
					Tasks: []app.PlanTask{
						{Title: "Pomodoro focus block", Source: domain.SourceLibrary,
							Reasons: []app.SelectionReason{{Code: app.ReasonUntriedBonus, Message: "Discovery phase: untried template"}}},
						{Title: "Drink water", Source: domain.SourceLibrary},
					},
				},
				{
					Name:  "Evening",
					Tasks: []app.PlanTask{{Title: "Evening stretch", Source: domain.SourceOriginal}},
				},
			},
		},
	}
}

func sized(m planViewModel) planViewModel {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(planViewModel)
}

func TestPlanViewFlattensTasks(t *testing.T) {
	m := newPlanViewModel(planViewFixture())
	require.Len(t, m.tasks, 3)
	assert.Equal(t, taskRef{block: 0, task: 0}, m.tasks[0])
	assert.Equal(t, taskRef{block: 1, task: 0}, m.tasks[2])
}

func TestPlanViewCursorNavigation(t *testing.T) {
	m := sized(newPlanViewModel(planViewFixture()))

	down := tea.KeyMsg{Type: tea.KeyDown}
	updated, _ := m.Update(down)
	m = updated.(planViewModel)
	assert.Equal(t, 1, m.cursor)

	updated, _ = m.Update(down)
	m = updated.(planViewModel)
	updated, _ = m.Update(down)
	m = updated.(planViewModel)
	assert.Equal(t, 2, m.cursor, "cursor stops at the last task")

	up := tea.KeyMsg{Type: tea.KeyUp}
	updated, _ = m.Update(up)
	m = updated.(planViewModel)
	assert.Equal(t, 1, m.cursor)
}

func TestPlanViewShowsReasonsForSelectedTask(t *testing.T) {
	m := sized(newPlanViewModel(planViewFixture()))

	out := m.renderPlan()
	assert.Contains(t, out, "Pomodoro focus block")
	assert.Contains(t, out, "Discovery phase: untried template")

	// Moving off the first task collapses its reasons.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(planViewModel)
	assert.NotContains(t, m.renderPlan(), "Discovery phase: untried template")
}

func TestPlanViewQuits(t *testing.T) {
	m := sized(newPlanViewModel(planViewFixture()))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
