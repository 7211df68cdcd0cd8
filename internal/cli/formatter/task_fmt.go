package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmalmgren/tempus/internal/domain"
)

// FormatTaskList formats tasks as a table sorted the way the repository
// returns them (deadline ascending).
func FormatTaskList(tasks []*domain.Task, now time.Time) string {
	headers := []string{"ID", "DESCRIPTION", "CATEGORY", "STATUS", "LOGGED", "DEADLINE"}
	rows := make([][]string, 0, len(tasks))

	for _, t := range tasks {
		deadline := FormatDate(t.Deadline)
		if t.Status != domain.TaskCompleted {
			deadline = fmt.Sprintf("%s (%s)", FormatDate(t.Deadline), RelativeDateFrom(t.Deadline, now))
		}
		rows = append(rows, []string{
			Dim(shortID(t.ID)),
			Bold(t.Description),
			t.CategoryName,
			StatusPill(t.Status),
			FormatHoursPair(t.ActualHours, t.EstimatedHours),
			deadline,
		})
	}

	return RenderTable(headers, rows)
}

// FormatTaskDetail formats a single task as a labeled block.
func FormatTaskDetail(t *domain.Task, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header(t.Description))
	b.WriteString("\n\n")

	write := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(fmt.Sprintf("%-11s", label)), value))
	}

	write("ID", t.ID)
	write("Category", t.CategoryName)
	write("Status", StatusPill(t.Status))
	write("Start", FormatDate(t.Start))
	if t.Status == domain.TaskCompleted {
		write("Deadline", FormatDate(t.Deadline))
	} else {
		write("Deadline", fmt.Sprintf("%s (%s)", FormatDate(t.Deadline), RelativeDateFrom(t.Deadline, now)))
	}
	write("Estimated", FormatHours(t.EstimatedHours))
	write("Logged", FormatHours(t.ActualHours))

	left := t.HoursLeft()
	switch {
	case left < 0:
		write("Remaining", StyleRed.Render(fmt.Sprintf("%dh over estimate", -left)))
	case left == 0:
		write("Remaining", StyleGreen.Render("0h"))
	default:
		write("Remaining", FormatHours(left))
	}

	return b.String()
}

// shortID returns the first UUID segment, enough to disambiguate in a
// personal task set.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
