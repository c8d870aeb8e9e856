package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/dayweave/internal/app"
	"github.com/alexanderramin/dayweave/internal/cli/formatter"
)

// taskRef addresses one task inside the assembled plan.
type taskRef struct {
	block int
	task  int
}

type planViewKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func defaultPlanViewKeyMap() planViewKeyMap {
	return planViewKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous task"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next task"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// planViewModel is a small bubbletea model for browsing an assembled plan
// task by task, with the selected task's selection reasons expanded.
type planViewModel struct {
	resp   *app.AssembleResponse
	tasks  []taskRef
	keys   planViewKeyMap
	cursor int
	vp     viewport.Model
	ready  bool
}

func newPlanViewModel(resp *app.AssembleResponse) planViewModel {
	var tasks []taskRef
	for bi, block := range resp.Plan.Blocks {
		for ti := range block.Tasks {
			tasks = append(tasks, taskRef{block: bi, task: ti})
		}
	}
	return planViewModel{
		resp:  resp,
		tasks: tasks,
		keys:  defaultPlanViewKeyMap(),
	}
}

func (m planViewModel) Init() tea.Cmd { return nil }

func (m planViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp = viewport.New(msg.Width, msg.Height-2)
		m.vp.SetContent(m.renderPlan())
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		}
		if m.ready {
			m.vp.SetContent(m.renderPlan())
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m planViewModel) View() string {
	if !m.ready {
		return formatter.Dim("Loading plan...")
	}
	help := formatter.Dim("↑/↓ move · q quit")
	return m.vp.View() + "\n" + help
}

func (m planViewModel) renderPlan() string {
	var b strings.Builder

	b.WriteString(formatter.PhaseBadge(m.resp.Phase))
	if m.resp.Plan.Date != "" {
		b.WriteString("  " + formatter.Dim(m.resp.Plan.Date))
	}
	b.WriteString("\n\n")

	idx := 0
	for _, block := range m.resp.Plan.Blocks {
		b.WriteString(formatter.Header(block.Name))
		b.WriteString("\n")

		for _, task := range block.Tasks {
			selected := idx < len(m.tasks) && idx == m.cursor
			marker := "  "
			title := formatter.StyleFg.Render(task.Title)
			if selected {
				marker = formatter.StyleHeader.Render("› ")
				title = formatter.Bold(task.Title)
			}
			b.WriteString(fmt.Sprintf("%s%s  %s %s\n",
				marker,
				title,
				formatter.TimeRange(task.StartTime, task.EndTime),
				formatter.SourceBadge(task.Source),
			))
			if selected {
				if task.Category != "" {
					b.WriteString(fmt.Sprintf("    %s\n",
						formatter.Dim(fmt.Sprintf("Category: %s", task.Category))))
				}
				for _, reason := range task.Reasons {
					b.WriteString(fmt.Sprintf("    %s %s\n",
						formatter.StyleYellow.Render("REASON:"),
						formatter.Dim(reason.Message),
					))
				}
			}
			idx++
		}
		b.WriteString("\n")
	}

	return b.String()
}

// runPlanView opens the interactive plan browser.
func runPlanView(resp *app.AssembleResponse) error {
	p := tea.NewProgram(newPlanViewModel(resp), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
