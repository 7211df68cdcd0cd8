package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmalmgren/tempus/internal/cli/formatter"
	"github.com/jmalmgren/tempus/internal/domain"
	"github.com/jmalmgren/tempus/internal/service"
)

type timelineKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

var timelineKeys = timelineKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// timelineModel is the full-screen timeline browser: a cursor over the
// report rows with a detail pane for the selected task.
type timelineModel struct {
	report *service.TimelineReport
	now    time.Time
	cursor int
	width  int
	height int
}

func newTimelineModel(report *service.TimelineReport, now time.Time) *timelineModel {
	return &timelineModel{report: report, now: now}
}

func (m *timelineModel) Init() tea.Cmd {
	return nil
}

func (m *timelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, timelineKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, timelineKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, timelineKeys.Down):
			if m.cursor < len(m.report.Rows)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m *timelineModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Timeline"))
	b.WriteString("\n\n")

	for i, row := range m.report.Rows {
		line := m.rowLine(row)
		if i == m.cursor {
			b.WriteString(lipgloss.NewStyle().Foreground(formatter.ColorHeader).Render("▸ "))
			b.WriteString(line)
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.detailPane())
	b.WriteString("\n")
	b.WriteString(formatter.Dim("↑/↓ move · q quit"))

	return b.String()
}

func (m *timelineModel) rowLine(row service.TimelineRow) string {
	t := row.Task

	marker := formatter.Dim("done")
	if t.Status != domain.TaskCompleted {
		marker = formatter.FeasibilityMarker(row.Feasible)
	}

	return fmt.Sprintf("%s  %s  %s",
		formatter.Bold(t.Description),
		formatter.Dim("due "+formatter.FormatDate(t.Deadline)),
		marker,
	)
}

func (m *timelineModel) detailPane() string {
	if m.cursor >= len(m.report.Rows) {
		return ""
	}
	row := m.report.Rows[m.cursor]
	t := row.Task

	var lines []string
	lines = append(lines, fmt.Sprintf("%s %s", formatter.Dim("Category "), t.CategoryName))
	lines = append(lines, fmt.Sprintf("%s %s", formatter.Dim("Status   "), formatter.StatusPill(t.Status)))
	lines = append(lines, fmt.Sprintf("%s %s", formatter.Dim("Window   "),
		formatter.FormatDate(t.Start)+" → "+formatter.FormatDate(t.Deadline)))
	lines = append(lines, fmt.Sprintf("%s %s", formatter.Dim("Hours    "),
		formatter.FormatHoursPair(t.ActualHours, t.EstimatedHours)))

	if t.Status != domain.TaskCompleted && row.PossibleFinish != nil {
		finish := formatter.FormatDate(*row.PossibleFinish)
		if row.Feasible {
			lines = append(lines, fmt.Sprintf("%s %s", formatter.Dim("Finish   "), formatter.StyleGreen.Render(finish)))
		} else {
			lines = append(lines, fmt.Sprintf("%s %s", formatter.Dim("Finish   "), formatter.StyleRed.Render(finish+" (past deadline)")))
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorDim).
		Padding(0, 2)

	return box.Render(strings.Join(lines, "\n"))
}
